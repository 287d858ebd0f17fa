package view

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/affiliate"
	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/afiliado/internal/expense/store"
	"github.com/MrJamesThe3rd/afiliado/internal/product"
	"github.com/MrJamesThe3rd/afiliado/internal/settings"
	"github.com/MrJamesThe3rd/afiliado/internal/source/fixture"
	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
	"github.com/MrJamesThe3rd/afiliado/internal/theme"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func productIDs(ps []product.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}

	return out
}

func newProducts(t *testing.T) ProductsModel {
	t.Helper()

	products, err := fixture.New().Products(context.Background())
	require.NoError(t, err)

	return NewProductsModel(products, affiliate.NewService(nil), NewPalette(false))
}

func TestBrowser_CycleCategoryAndSort(t *testing.T) {
	m := newProducts(t)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, productIDs(m.browser.Visible()))

	model, _ := m.Update(key("c"))
	m = model.(ProductsModel)
	assert.Equal(t, "Tecnologia", m.browser.state.Category)
	assert.Equal(t, []int{1}, productIDs(m.browser.Visible()))

	for i := 0; i < 5; i++ {
		model, _ = m.Update(key("c"))
		m = model.(ProductsModel)
	}

	assert.Equal(t, tabular.All, m.browser.state.Category)

	model, _ = m.Update(key("o"))
	m = model.(ProductsModel)
	assert.Equal(t, product.SortCommission, m.browser.state.SortKey)
	assert.Equal(t, []int{3, 2, 4, 1, 5}, productIDs(m.browser.Visible()))
}

func TestBrowser_Search(t *testing.T) {
	m := newProducts(t)

	model, _ := m.Update(key("/"))
	m = model.(ProductsModel)
	require.True(t, m.Capturing())

	for _, r := range "PREMIUM" {
		model, _ = m.Update(key(string(r)))
		m = model.(ProductsModel)
	}

	assert.Equal(t, []int{2, 4}, productIDs(m.browser.Visible()))

	model, _ = m.Update(key("enter"))
	m = model.(ProductsModel)
	assert.False(t, m.Capturing())
	assert.Equal(t, "PREMIUM", m.browser.state.Search)

	model, _ = m.Update(key("/"))
	m = model.(ProductsModel)
	model, _ = m.Update(key("esc"))
	m = model.(ProductsModel)

	assert.Empty(t, m.browser.state.Search)
	assert.Len(t, m.browser.Visible(), 5)
}

func TestProducts_NoticeExpiresByID(t *testing.T) {
	m := newProducts(t)

	first := affiliate.Notice{ID: uuid.New(), Title: "Link copiado!"}
	second := affiliate.Notice{ID: uuid.New(), Title: "Link copiado!"}

	model, cmd := m.Update(linkCopiedMsg{notice: first})
	m = model.(ProductsModel)
	require.NotNil(t, cmd)

	model, _ = m.Update(linkCopiedMsg{notice: second})
	m = model.(ProductsModel)

	model, _ = m.Update(noticeExpiredMsg{id: first.ID})
	m = model.(ProductsModel)
	require.NotNil(t, m.notice)
	assert.Equal(t, second.ID, m.notice.ID)

	model, _ = m.Update(noticeExpiredMsg{id: second.ID})
	m = model.(ProductsModel)
	assert.Nil(t, m.notice)
}

func newFinance(t *testing.T) (FinanceModel, *expense.Service) {
	t.Helper()

	src := fixture.New()

	seed, err := src.Expenses(context.Background())
	require.NoError(t, err)

	payments, err := src.Payments(context.Background())
	require.NoError(t, err)

	svc := expense.NewService(expenseStore.New(seed))
	m := NewFinanceModel(svc, payments, decimal.RequireFromString("18540.75"), NewPalette(true))

	model, _ := m.Update(m.loadCmd()())

	return model.(FinanceModel), svc
}

func TestFinance_EditAndCancel(t *testing.T) {
	m, _ := newFinance(t)

	model, _ := m.Update(key("e"))
	m = model.(FinanceModel)

	assert.Equal(t, financeStateEdit, m.state)
	assert.True(t, m.Capturing())
	assert.Equal(t, expense.Editing(1), m.editor.State())
	assert.Equal(t, "Anúncios Facebook Ads", m.editor.Draft().Description)
	assert.Equal(t, "✎", m.expenses.table.Rows()[0][0])

	model, _ = m.Update(key("esc"))
	m = model.(FinanceModel)

	assert.Equal(t, financeStateBrowse, m.state)
	assert.Equal(t, expense.Viewing(), m.editor.State())
	assert.Empty(t, m.expenses.table.Rows()[0][0])
}

func TestFinance_Delete(t *testing.T) {
	m, svc := newFinance(t)

	model, cmd := m.Update(key("d"))
	m = model.(FinanceModel)
	require.NotNil(t, cmd)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	model, _ = m.Update(cmd())
	m = model.(FinanceModel)
	assert.Len(t, m.expenses.Visible(), 2)
}

func TestFinance_CreateCancelResetsDraft(t *testing.T) {
	m, _ := newFinance(t)

	model, _ := m.Update(key("n"))
	m = model.(FinanceModel)
	require.Equal(t, financeStateCreate, m.state)

	m.newDraft.Description = "Canva Pro"

	model, _ = m.Update(key("esc"))
	m = model.(FinanceModel)

	assert.Equal(t, financeStateBrowse, m.state)
	assert.Equal(t, expense.Draft{}, *m.newDraft)
}

func TestFinance_TabSwitchesFocus(t *testing.T) {
	m, _ := newFinance(t)

	model, _ := m.Update(key("tab"))
	m = model.(FinanceModel)
	assert.Equal(t, focusPayments, m.focus)

	// "e" does nothing on the payments table.
	model, _ = m.Update(key("e"))
	m = model.(FinanceModel)
	assert.Equal(t, financeStateBrowse, m.state)

	model, _ = m.Update(key("o"))
	m = model.(FinanceModel)
	assert.Equal(t, "amount", m.payments.state.SortKey)
}

func TestHeader_Ticks(t *testing.T) {
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	h := NewHeaderModel("Afiliado", start)
	first := h.banner

	h, cmd := h.Update(bannerMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, (first+1)%len(banners), h.banner)

	later := start.Add(time.Second)
	h, _ = h.Update(clockMsg(later))
	assert.Equal(t, later, h.now)
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "sexta-feira, 16 de outubro", LongDate(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "15,5%", FormatPercent(decimal.RequireFromString("15.5")))
	assert.Equal(t, "40,0%", FormatPercent(decimal.RequireFromString("40")))
}

func newSettings(t *testing.T) (SettingsModel, *theme.Store) {
	t.Helper()

	th, err := theme.Init(filepath.Join(t.TempDir(), "theme.yaml"))
	require.NoError(t, err)

	return NewSettingsModel(settings.NewStore(th, nil), NewPalette(false)), th
}

func TestSettings_EditAndCancel(t *testing.T) {
	m, _ := newSettings(t)
	assert.False(t, m.Capturing())

	model, _ := m.Update(key("e"))
	m = model.(SettingsModel)

	assert.True(t, m.Capturing())
	assert.Equal(t, "João Silva", m.draft.Name)

	m.draft.Name = "Maria"

	model, _ = m.Update(key("esc"))
	m = model.(SettingsModel)

	assert.False(t, m.Capturing())
	assert.Nil(t, m.form)
	assert.Equal(t, "João Silva", m.store.Get().Name)
}

func TestSettings_SaveAppliesTheme(t *testing.T) {
	m, th := newSettings(t)

	model, _ := m.Update(key("e"))
	m = model.(SettingsModel)

	m.draft.Name = "Maria"
	m.draft.Theme = settings.ThemeDark
	m.form.State = huh.StateCompleted

	model, cmd := m.Update(tea.FocusMsg{})
	m = model.(SettingsModel)
	require.NotNil(t, cmd)

	assert.IsType(t, ThemeChangedMsg{}, cmd())
	assert.False(t, m.Capturing())
	assert.Contains(t, m.status, "Configurações salvas!")
	assert.Equal(t, "Maria", m.store.Get().Name)
	assert.True(t, th.Dark())
}

func TestSettings_SaveRejectsInvalid(t *testing.T) {
	m, th := newSettings(t)

	model, _ := m.Update(key("e"))
	m = model.(SettingsModel)

	m.draft.Email = "nope"
	m.draft.Theme = settings.ThemeDark
	m.form.State = huh.StateCompleted

	model, cmd := m.Update(tea.FocusMsg{})
	m = model.(SettingsModel)

	assert.Nil(t, cmd)
	require.ErrorIs(t, m.err, settings.ErrInvalid)
	assert.Empty(t, m.status)
	assert.Equal(t, "joao@exemplo.com", m.store.Get().Email)
	assert.False(t, th.Dark())
}

func TestSettings_EscGoesBack(t *testing.T) {
	m, _ := newSettings(t)

	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, BackMsg{}, cmd())
}
