package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/afiliado/internal/tabular"
)

// browser is a table of records driven by a tabular.Schema: "/" edits the
// search box, "c" cycles the category and "o" cycles the sort key.
type browser[R any] struct {
	schema        tabular.Schema[R]
	state         tabular.ViewState
	categoryLabel string
	toRow         func(R) table.Row

	records []R
	visible []R

	table     table.Model
	search    textinput.Model
	searching bool
}

func newBrowser[R any](schema tabular.Schema[R], categoryLabel string, columns []table.Column, toRow func(R) table.Row, pal Palette) browser[R] {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(pal.TableStyles())

	in := textinput.New()
	in.Placeholder = "buscar..."
	in.Prompt = "/ "
	in.CharLimit = 64

	return browser[R]{
		schema:        schema,
		state:         schema.DefaultState(),
		categoryLabel: categoryLabel,
		toRow:         toRow,
		table:         t,
		search:        in,
	}
}

func (b *browser[R]) SetRecords(records []R) {
	b.records = records
	b.refresh()
}

func (b *browser[R]) SetPalette(pal Palette) {
	b.table.SetStyles(pal.TableStyles())
}

func (b *browser[R]) SetHeight(h int) {
	b.table.SetHeight(max(h, 3))
}

func (b *browser[R]) Focus() { b.table.Focus() }
func (b *browser[R]) Blur()  { b.table.Blur() }

// Visible is the filtered and sorted slice currently shown.
func (b *browser[R]) Visible() []R {
	return b.visible
}

func (b *browser[R]) Selected() (R, bool) {
	idx := b.table.Cursor()
	if idx < 0 || idx >= len(b.visible) {
		var zero R
		return zero, false
	}

	return b.visible[idx], true
}

func (b *browser[R]) refresh() {
	b.visible = b.schema.Apply(b.records, b.state)

	rows := make([]table.Row, 0, len(b.visible))
	for _, r := range b.visible {
		rows = append(rows, b.toRow(r))
	}

	b.table.SetRows(rows)

	if b.table.Cursor() >= len(rows) {
		b.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Update handles the search, category and sort keys and forwards the rest
// to the table.
func (b browser[R]) Update(msg tea.Msg) (browser[R], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if b.searching {
		if ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				b.search.SetValue("")
				b.stopSearch()

				return b, nil
			case tea.KeyEnter:
				b.stopSearch()
				return b, nil
			}
		}

		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.state.Search = b.search.Value()
		b.refresh()

		return b, cmd
	}

	if ok {
		switch keyMsg.String() {
		case "/":
			b.searching = true
			b.table.Blur()
			cmd := b.search.Focus()

			return b, cmd
		case "c":
			b.state.Category = tabular.Next(b.schema.Categories(b.records), b.state.Category)
			b.refresh()

			return b, nil
		case "o":
			b.state.SortKey = b.schema.NextSort(b.state.SortKey)
			b.refresh()

			return b, nil
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)

	return b, cmd
}

func (b *browser[R]) stopSearch() {
	b.searching = false
	b.search.Blur()
	b.state.Search = b.search.Value()
	b.table.Focus()
	b.refresh()
}

func (b browser[R]) FilterBar(pal Palette) string {
	category := b.state.Category
	if category == tabular.All {
		category = "Todos"
	}

	search := b.search.View()
	if !b.searching && b.state.Search == "" {
		search = pal.Faint("[/] buscar")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		search,
		"  ",
		fmt.Sprintf("[c] %s: %s", b.categoryLabel, pal.Active(category)),
		"  ",
		fmt.Sprintf("[o] Ordenar: %s", pal.Active(b.schema.SortLabel(b.state.SortKey))),
		"  ",
		pal.Faint(fmt.Sprintf("%d resultados", len(b.visible))),
	)
}

func (b browser[R]) View(pal Palette) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(b.FilterBar(pal)),
		pal.Boxed(b.table.View()),
	)
}
