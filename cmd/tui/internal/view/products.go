package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/afiliado/internal/affiliate"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
)

const noticeTTL = 3 * time.Second

type ProductsModel struct {
	CommonModel
	affiliate *affiliate.Service

	browser browser[product.Product]
	notice  *affiliate.Notice
	status  string
}

func NewProductsModel(products []product.Product, affiliateSvc *affiliate.Service, pal Palette) ProductsModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Produto", Width: 34},
		{Title: "Categoria", Width: 12},
		{Title: "Comissão", Width: 9},
		{Title: "Lucro Est.", Width: 13},
		{Title: "Lucro Líq.", Width: 13},
		{Title: "Nota", Width: 5},
		{Title: "", Width: 2},
	}

	b := newBrowser(product.View, "Categoria", columns, productRow, pal)
	b.SetRecords(products)

	return ProductsModel{
		CommonModel: CommonModel{Pal: pal},
		affiliate:   affiliateSvc,
		browser:     b,
	}
}

func productRow(p product.Product) table.Row {
	return table.Row{
		strconv.Itoa(p.Ranking),
		p.Name,
		p.Category,
		FormatPercent(p.Commission),
		FormatMoney(p.EstimatedProfit),
		FormatMoney(p.NetProfit),
		fmt.Sprintf("%.1f", p.Rating),
		p.Trend.Icon(),
	}
}

func (m ProductsModel) Title() string { return "Produtos" }
func (m ProductsModel) ShortHelp() string {
	return "/: buscar | c: categoria | o: ordenar | y: copiar link | esc: voltar"
}

func (m ProductsModel) Capturing() bool { return m.browser.searching }

func (m ProductsModel) Init() tea.Cmd {
	return nil
}

type linkCopiedMsg struct {
	notice affiliate.Notice
	err    error
}

type noticeExpiredMsg struct {
	id uuid.UUID
}

func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeMsg:
		m.Pal = msg.Pal
		m.browser.SetPalette(msg.Pal)

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.browser.SetHeight(msg.Height - 14)

		return m, nil

	case linkCopiedMsg:
		if msg.err != nil {
			m.notice = nil
			m.status = fmt.Sprintf("Erro ao copiar: %v", msg.err)

			return m, nil
		}

		m.status = ""
		m.notice = &msg.notice
		id := msg.notice.ID

		return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
			return noticeExpiredMsg{id: id}
		})

	case noticeExpiredMsg:
		if m.notice != nil && m.notice.ID == msg.id {
			m.notice = nil
		}

		return m, nil

	case tea.KeyMsg:
		if !m.browser.searching {
			switch msg.String() {
			case "esc":
				return m, Back
			case "y":
				return m, m.copyCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)

	return m, cmd
}

func (m ProductsModel) copyCmd() tea.Cmd {
	p, ok := m.browser.Selected()
	if !ok {
		return nil
	}

	svc := m.affiliate

	return func() tea.Msg {
		notice, err := svc.Copy(p.AffiliateLink, p.Name)
		return linkCopiedMsg{notice: notice, err: err}
	}
}

func (m ProductsModel) View() string {
	content := m.browser.View(m.Pal)

	if m.notice != nil {
		content = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(m.Pal.Positive).Render("✔ "+m.notice.Title+" "+m.notice.Body),
			content,
		)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Foreground(m.Pal.Negative).Render(m.status) + "\n" + content
	}

	return content
}
