package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/afiliado/internal/export"
	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

type SalesModel struct {
	CommonModel
	exportDir string

	browser browser[sale.Sale]
	status  string
}

func NewSalesModel(sales []sale.Sale, exportDir string, pal Palette) SalesModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Data", Width: 16},
		{Title: "Produto", Width: 26},
		{Title: "Nicho", Width: 22},
		{Title: "Cliente", Width: 10},
		{Title: "Valor", Width: 12},
		{Title: "Comissão", Width: 12},
		{Title: "Status", Width: 10},
	}

	b := newBrowser(sale.View, "Status", columns, saleRow, pal)
	b.SetRecords(sales)

	return SalesModel{
		CommonModel: CommonModel{Pal: pal},
		exportDir:   exportDir,
		browser:     b,
	}
}

func saleRow(s sale.Sale) table.Row {
	return table.Row{
		strconv.Itoa(s.ID),
		FormatDateTime(s.Date),
		s.Product,
		s.Niche,
		s.Customer,
		FormatMoney(s.Value),
		FormatMoney(s.Commission),
		string(s.Status),
	}
}

func (m SalesModel) Title() string { return "Vendas" }
func (m SalesModel) ShortHelp() string {
	return "/: buscar | c: status | o: ordenar | x: exportar CSV | esc: voltar"
}

func (m SalesModel) Capturing() bool { return m.browser.searching }

func (m SalesModel) Init() tea.Cmd {
	return nil
}

type exportedMsg struct {
	path  string
	count int
	err   error
}

func (m SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeMsg:
		m.Pal = msg.Pal
		m.browser.SetPalette(msg.Pal)

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.browser.SetHeight(msg.Height - 16)

		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao exportar: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("%d vendas exportadas para %s", msg.count, msg.path)

		return m, nil

	case tea.KeyMsg:
		if !m.browser.searching {
			switch msg.String() {
			case "esc":
				return m, Back
			case "x":
				return m, m.exportCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)

	return m, cmd
}

func (m SalesModel) exportCmd() tea.Cmd {
	sales := m.browser.Visible()
	dir := m.exportDir

	return func() tea.Msg {
		path, err := export.SaveSales(dir, time.Now(), sales)
		return exportedMsg{path: path, count: len(sales), err: err}
	}
}

func (m SalesModel) View() string {
	sum := finance.SummarizeSales(m.browser.Visible())

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Pal.Card("Vendas", strconv.Itoa(sum.Count), fmt.Sprintf("%d aprovadas", sum.Approved)),
		m.Pal.Card("Faturamento", FormatMoney(sum.TotalValue), "valor total"),
		m.Pal.Card("Comissões", FormatMoney(sum.TotalCommission), "a receber"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, cards, m.browser.View(m.Pal))

	if m.status != "" {
		content = m.Pal.Faint(m.status) + "\n" + content
	}

	return content
}
