package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

const (
	topProducts = 3
	recentSales = 5
)

// DashboardModel is the landing screen: metric cards, the best ranked
// products and the latest sales.
type DashboardModel struct {
	CommonModel
	expenses *expense.Service
	balance  decimal.Decimal

	products []product.Product
	sales    []sale.Sale
	payments []payment.Payment
	all      []expense.Expense
	err      error
}

func NewDashboardModel(products []product.Product, sales []sale.Sale, payments []payment.Payment, expenses *expense.Service, balance decimal.Decimal, pal Palette) DashboardModel {
	return DashboardModel{
		CommonModel: CommonModel{Pal: pal},
		expenses:    expenses,
		balance:     balance,
		products:    product.View.Apply(products, tabular.ViewState{SortKey: product.SortRanking}),
		sales:       sale.View.Apply(sales, tabular.ViewState{SortKey: sale.SortDate}),
		payments:    payments,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "1-4: telas | t: tema | q: sair" }
func (m DashboardModel) Capturing() bool   { return false }

type dashboardLoadedMsg struct {
	expenses []expense.Expense
	err      error
}

// Init reloads expenses so edits made on Financeiro show up here.
func (m DashboardModel) Init() tea.Cmd {
	svc := m.expenses

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		es, err := svc.All(ctx)

		return dashboardLoadedMsg{expenses: es, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.all, m.err = msg.expenses, msg.err
	case ThemeMsg:
		m.Pal = msg.Pal
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	sum := finance.SummarizeSales(m.sales)
	o := finance.NewOverview(m.balance, m.all, m.payments)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Pal.Card("Vendas", FormatMoney(sum.TotalValue), fmt.Sprintf("%d vendas, %d aprovadas", sum.Count, sum.Approved)),
		m.Pal.Card("Comissões", FormatMoney(sum.TotalCommission), "total acumulado"),
		m.Pal.Card("Lucro Líquido", FormatMoney(o.NetProfit), "saldo - despesas"),
		m.Pal.Card("Saldo Atual", FormatMoney(o.Balance), FormatMoney(o.TotalPending)+" a receber"),
	)

	var top strings.Builder

	top.WriteString(m.Pal.Title("Top Produtos") + "\n")

	for _, p := range m.products[:min(topProducts, len(m.products))] {
		fmt.Fprintf(&top, "%d. %s %s  %s\n", p.Ranking, p.Name, p.Trend.Icon(), m.Pal.Faint(FormatPercent(p.Commission)+" comissão"))
	}

	var recent strings.Builder

	recent.WriteString(m.Pal.Title("Vendas Recentes") + "\n")

	for _, s := range m.sales[:min(recentSales, len(m.sales))] {
		fmt.Fprintf(&recent, "%s  %-24s %12s  %s\n", FormatDateTime(s.Date), s.Product, FormatMoney(s.Value), m.statusStyle(s.Status))
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(4).Render(top.String()),
		recent.String(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", lists)
}

func (m DashboardModel) statusStyle(s sale.Status) string {
	color := m.Pal.Warning

	switch s {
	case sale.StatusApproved:
		color = m.Pal.Positive
	case sale.StatusCancelled:
		color = m.Pal.Negative
	}

	return lipgloss.NewStyle().Foreground(color).Render(string(s))
}
