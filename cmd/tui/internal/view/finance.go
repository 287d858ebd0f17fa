package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/payment"
)

type financeState int

const (
	financeStateBrowse financeState = iota
	financeStateEdit
	financeStateCreate
)

type financeFocus int

const (
	focusExpenses financeFocus = iota
	focusPayments
)

type FinanceModel struct {
	CommonModel
	svc     *expense.Service
	editor  *expense.Editor
	balance decimal.Decimal

	state    financeState
	focus    financeFocus
	expenses browser[expense.Expense]
	payments browser[payment.Payment]
	all      []expense.Expense
	form     *huh.Form
	newDraft *expense.Draft

	loading bool
	err     error
	status  string
}

func NewFinanceModel(svc *expense.Service, payments []payment.Payment, balance decimal.Decimal, pal Palette) FinanceModel {
	m := FinanceModel{
		CommonModel: CommonModel{Pal: pal},
		svc:         svc,
		editor:      expense.NewEditor(svc),
		balance:     balance,
		newDraft:    &expense.Draft{},
		loading:     true,
	}

	m.expenses = newBrowser(expense.View, "Categoria", []table.Column{
		{Title: "", Width: 1},
		{Title: "Descrição", Width: 30},
		{Title: "Categoria", Width: 14},
		{Title: "Valor", Width: 12},
		{Title: "Data", Width: 10},
		{Title: "Status", Width: 9},
	}, m.expenseRow, pal)

	m.payments = newBrowser(payment.View, "Status", []table.Column{
		{Title: "Plataforma", Width: 14},
		{Title: "Valor", Width: 12},
		{Title: "Data", Width: 10},
		{Title: "Status", Width: 12},
	}, paymentRow, pal)
	m.payments.SetHeight(5)
	m.payments.Blur()
	m.payments.SetRecords(payments)

	return m
}

// expenseRow marks the record in edit; the editor pointer is shared by
// every copy of the model.
func (m FinanceModel) expenseRow(e expense.Expense) table.Row {
	marker := ""
	if id, ok := m.editor.State().Target(); ok && id == e.ID {
		marker = "✎"
	}

	return table.Row{
		marker,
		e.Description,
		e.Category,
		FormatMoney(e.Amount),
		FormatDate(e.Date),
		string(e.Status),
	}
}

func paymentRow(p payment.Payment) table.Row {
	return table.Row{
		p.Platform,
		FormatMoney(p.Amount),
		FormatDate(p.Date),
		string(p.Status),
	}
}

func (m FinanceModel) Title() string { return "Financeiro" }
func (m FinanceModel) ShortHelp() string {
	if m.state != financeStateBrowse {
		return "Navegar no formulário | esc: cancelar"
	}

	return "tab: despesas/pagamentos | e: editar | n: nova | d: excluir | i: importar | /: buscar | c: categoria | o: ordenar | esc: voltar"
}

func (m FinanceModel) Capturing() bool {
	return m.state != financeStateBrowse || m.expenses.searching || m.payments.searching
}

func (m FinanceModel) Init() tea.Cmd {
	return m.loadCmd()
}

type expensesLoadedMsg struct {
	expenses []expense.Expense
	err      error
}

func (m FinanceModel) loadCmd() tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		es, err := svc.All(ctx)

		return expensesLoadedMsg{expenses: es, err: err}
	}
}

func (m FinanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.all = msg.expenses
		m.expenses.SetRecords(msg.expenses)

		return m, nil

	case ThemeMsg:
		m.Pal = msg.Pal
		m.expenses.SetPalette(msg.Pal)
		m.payments.SetPalette(msg.Pal)

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.expenses.SetHeight(msg.Height - 24)

		return m, nil
	}

	switch m.state {
	case financeStateEdit:
		return m.updateEdit(msg)
	case financeStateCreate:
		return m.updateCreate(msg)
	}

	return m.updateBrowse(msg)
}

func (m FinanceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.Capturing() {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.toggleFocus()
			return m, nil
		case "n":
			return m.enterCreateMode()
		case "i":
			return m, OpenImport
		case "e":
			if m.focus == focusExpenses {
				return m.enterEditMode()
			}
		case "d":
			if m.focus == focusExpenses {
				return m.deleteSelected()
			}
		}
	}

	var cmd tea.Cmd

	if m.focus == focusPayments {
		m.payments, cmd = m.payments.Update(msg)
	} else {
		m.expenses, cmd = m.expenses.Update(msg)
	}

	return m, cmd
}

func (m *FinanceModel) toggleFocus() {
	if m.focus == focusExpenses {
		m.focus = focusPayments
		m.expenses.Blur()
		m.payments.Focus()

		return
	}

	m.focus = focusExpenses
	m.payments.Blur()
	m.expenses.Focus()
}

func expenseForm(d *expense.Draft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Descrição").
				Value(&d.Description),

			huh.NewInput().
				Key("category").
				Title("Categoria").
				Value(&d.Category),

			huh.NewInput().
				Key("amount").
				Title("Valor").
				Placeholder("0,00").
				Value(&d.Amount),

			huh.NewInput().
				Key("date").
				Title("Data").
				Placeholder("AAAA-MM-DD").
				Value(&d.Date),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m FinanceModel) enterEditMode() (tea.Model, tea.Cmd) {
	e, ok := m.expenses.Selected()
	if !ok {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.editor.Edit(ctx, e.ID); err != nil {
		m.status = fmt.Sprintf("Não foi possível editar: %v", err)
		return m, nil
	}

	m.status = ""
	m.form = expenseForm(m.editor.Draft())
	m.state = financeStateEdit
	m.expenses.Blur()
	m.expenses.SetRecords(m.all)

	return m, m.form.Init()
}

func (m FinanceModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.editor.Cancel()
		return m.backToBrowse(""), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ctx, cancel := DbCtx()
	defer cancel()

	saved, err := m.editor.Save(ctx, *m.editor.Draft())
	if err != nil {
		m.status = fmt.Sprintf("Erro ao salvar: %v", err)
		m.form = expenseForm(m.editor.Draft())

		return m, m.form.Init()
	}

	return m.backToBrowse(fmt.Sprintf("Despesa %q salva", saved.Description)), m.loadCmd()
}

func (m FinanceModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.newDraft.Reset()
	m.form = expenseForm(m.newDraft)
	m.state = financeStateCreate
	m.status = ""
	m.expenses.Blur()
	m.payments.Blur()

	return m, m.form.Init()
}

func (m FinanceModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.newDraft.Reset()
		return m.backToBrowse(""), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ctx, cancel := DbCtx()
	defer cancel()

	created, err := m.svc.Create(ctx, *m.newDraft)
	m.newDraft.Reset()

	if err != nil {
		return m.backToBrowse(fmt.Sprintf("Erro ao criar: %v", err)), nil
	}

	return m.backToBrowse(fmt.Sprintf("Despesa %q criada", created.Description)), m.loadCmd()
}

func (m FinanceModel) deleteSelected() (tea.Model, tea.Cmd) {
	e, ok := m.expenses.Selected()
	if !ok {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.svc.Delete(ctx, e.ID); err != nil {
		m.status = fmt.Sprintf("Erro ao excluir: %v", err)
		return m, nil
	}

	m.status = fmt.Sprintf("Despesa %q excluída", e.Description)

	return m, m.loadCmd()
}

func (m FinanceModel) backToBrowse(status string) FinanceModel {
	m.state = financeStateBrowse
	m.form = nil
	m.status = status
	m.focus = focusExpenses
	m.payments.Blur()
	m.expenses.Focus()
	m.expenses.SetRecords(m.all)

	return m
}

func (m FinanceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando despesas...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	o := finance.NewOverview(m.balance, m.all, m.payments.records)

	netColor := m.Pal.Positive
	if o.NetProfit.IsNegative() {
		netColor = m.Pal.Negative
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Pal.Card("Saldo Atual", FormatMoney(o.Balance), "disponível"),
		m.Pal.Card("Despesas", FormatMoney(o.TotalExpenses), strconv.Itoa(len(m.all))+" lançamentos"),
		m.Pal.Card("A Receber", FormatMoney(o.TotalPending), fmt.Sprintf("%d pagamentos", o.PendingCount)),
		m.Pal.Card("Lucro Líquido", lipgloss.NewStyle().Foreground(netColor).Render(FormatMoney(o.NetProfit)), "saldo - despesas"),
	)

	expensesTitle, paymentsTitle := m.Pal.Title("Despesas"), m.Pal.Faint("Pagamentos pendentes")
	if m.focus == focusPayments {
		expensesTitle, paymentsTitle = m.Pal.Faint("Despesas"), m.Pal.Title("Pagamentos pendentes")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		cards,
		expensesTitle,
		m.expenses.View(m.Pal),
		paymentsTitle,
		m.payments.View(m.Pal),
	)

	if m.form != nil {
		title := "Nova Despesa"
		if m.state == financeStateEdit {
			title = "Editar Despesa"
		}

		panel := m.Pal.Panel(fmt.Sprintf("%s\n\n%s", title, m.form.View()))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = m.Pal.Faint(m.status) + "\n" + content
	}

	return content
}
