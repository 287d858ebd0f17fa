// Package finance computes the figures shown on the dashboard metric cards.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

// SalesSummary totals a list of sales.
type SalesSummary struct {
	Count           int
	TotalValue      decimal.Decimal
	TotalCommission decimal.Decimal
	Approved        int
}

func SummarizeSales(sales []sale.Sale) SalesSummary {
	sum := SalesSummary{Count: len(sales)}

	for _, s := range sales {
		sum.TotalValue = sum.TotalValue.Add(s.Value)
		sum.TotalCommission = sum.TotalCommission.Add(s.Commission)

		if s.Status == sale.StatusApproved {
			sum.Approved++
		}
	}

	return sum
}

// Overview holds the Financeiro screen totals.
type Overview struct {
	Balance       decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalPending  decimal.Decimal
	NetProfit     decimal.Decimal
	PendingCount  int
}

// NewOverview derives net profit as balance minus total expenses.
func NewOverview(balance decimal.Decimal, expenses []expense.Expense, payments []payment.Payment) Overview {
	o := Overview{Balance: balance, PendingCount: len(payments)}

	for _, e := range expenses {
		o.TotalExpenses = o.TotalExpenses.Add(e.Amount)
	}

	for _, p := range payments {
		o.TotalPending = o.TotalPending.Add(p.Amount)
	}

	o.NetProfit = balance.Sub(o.TotalExpenses)

	return o
}
