// Package fixture serves the built-in placeholder data.
package fixture

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

type Source struct{}

func New() *Source {
	return &Source{}
}

func (s *Source) Products(_ context.Context) ([]product.Product, error) {
	return slices.Clone(products), nil
}

func (s *Source) Sales(_ context.Context) ([]sale.Sale, error) {
	return slices.Clone(sales), nil
}

func (s *Source) Expenses(_ context.Context) ([]expense.Expense, error) {
	return slices.Clone(expenses), nil
}

func (s *Source) Payments(_ context.Context) ([]payment.Payment, error) {
	return slices.Clone(payments), nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func datetime(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}

	return t
}

var products = []product.Product{
	{ID: 1, Name: "Smartwatch Fitness Pro Max", Category: "Tecnologia", Ranking: 1, Commission: dec("15.5"), EstimatedProfit: dec("85.20"), NetProfit: dec("68.15"), Trend: product.TrendUp, AffiliateLink: "https://example.com/affiliate/product1", Rating: 4.8},
	{ID: 2, Name: "Kit Skincare Premium Completo", Category: "Beleza", Ranking: 2, Commission: dec("22.0"), EstimatedProfit: dec("120.50"), NetProfit: dec("96.40"), Trend: product.TrendUp, AffiliateLink: "https://example.com/affiliate/product2", Rating: 4.9},
	{ID: 3, Name: "Curso Marketing Digital Avançado", Category: "Educação", Ranking: 3, Commission: dec("40.0"), EstimatedProfit: dec("200.00"), NetProfit: dec("160.00"), Trend: product.TrendStable, AffiliateLink: "https://example.com/affiliate/product3", Rating: 4.7},
	{ID: 4, Name: "Suplemento Whey Protein Premium", Category: "Saúde", Ranking: 4, Commission: dec("18.0"), EstimatedProfit: dec("95.40"), NetProfit: dec("76.32"), Trend: product.TrendDown, AffiliateLink: "https://example.com/affiliate/product4", Rating: 4.6},
	{ID: 5, Name: "Tênis Esportivo Profissional", Category: "Esportes", Ranking: 5, Commission: dec("12.5"), EstimatedProfit: dec("75.30"), NetProfit: dec("60.24"), Trend: product.TrendUp, AffiliateLink: "https://example.com/affiliate/product5", Rating: 4.5},
}

var sales = []sale.Sale{
	{ID: 1, Date: datetime("2024-01-07 14:32"), Product: "Smartwatch Fitness Pro", Niche: "Fitness & Saúde", Customer: "João S.", Value: dec("299.90"), Commission: dec("46.48"), Status: sale.StatusApproved},
	{ID: 2, Date: datetime("2024-01-07 11:15"), Product: "Kit Skincare Premium", Niche: "Cuidados Faciais", Customer: "Maria L.", Value: dec("189.50"), Commission: dec("41.69"), Status: sale.StatusApproved},
	{ID: 3, Date: datetime("2024-01-06 16:45"), Product: "Curso Marketing Digital", Niche: "Marketing Online", Customer: "Carlos M.", Value: dec("497.00"), Commission: dec("198.80"), Status: sale.StatusPending},
	{ID: 4, Date: datetime("2024-01-06 09:22"), Product: "Suplemento Whey Protein", Niche: "Alimentação Saudável", Customer: "Ana P.", Value: dec("159.90"), Commission: dec("28.78"), Status: sale.StatusApproved},
	{ID: 5, Date: datetime("2024-01-05 20:10"), Product: "Tênis Esportivo Pro", Niche: "Corrida & Atletismo", Customer: "Pedro R.", Value: dec("249.90"), Commission: dec("31.24"), Status: sale.StatusCancelled},
}

var expenses = []expense.Expense{
	{ID: 1, Description: "Anúncios Facebook Ads", Category: "Marketing", Amount: dec("850.00"), Date: date("2024-01-05"), Status: expense.StatusPaid},
	{ID: 2, Description: "Hospedagem Landing Pages", Category: "Tecnologia", Amount: dec("49.90"), Date: date("2024-01-03"), Status: expense.StatusPaid},
	{ID: 3, Description: "Ferramenta de Analytics", Category: "Tecnologia", Amount: dec("89.00"), Date: date("2024-01-01"), Status: expense.StatusPending},
}

var payments = []payment.Payment{
	{ID: 1, Platform: "Hotmart", Amount: dec("2450.80"), Date: date("2024-01-15"), Status: payment.StatusWaiting},
	{ID: 2, Platform: "Monetizze", Amount: dec("1890.50"), Date: date("2024-01-12"), Status: payment.StatusProcessing},
	{ID: 3, Platform: "Eduzz", Amount: dec("985.30"), Date: date("2024-01-10"), Status: payment.StatusReleased},
}
