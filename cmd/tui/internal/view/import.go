package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStatePreview
	importStateResult
)

// OpenImportMsg asks the root model to show the import screen.
type OpenImportMsg struct{}

func OpenImport() tea.Msg {
	return OpenImportMsg{}
}

// ImportModel reads a bank statement into expense drafts, lets the user pick
// which to keep (likely duplicates start unselected) and creates them.
type ImportModel struct {
	CommonModel
	svc *expense.Service

	state      importState
	filePicker filepicker.Model
	drafts     []expense.Draft
	duplicates map[int]bool
	selected   map[int]bool
	draftList  list.Model

	status string
	err    error
}

func NewImportModel(svc *expense.Service, pal Palette) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".CSV"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.Height = 15

	return ImportModel{
		CommonModel: CommonModel{Pal: pal},
		svc:         svc,
		filePicker:  fp,
		selected:    make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "Importar Extrato" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "espaço: marcar | a: todas | n: nenhuma | enter: importar | esc: cancelar"
	}

	return "enter: selecionar | esc: voltar"
}

// Capturing is always true: the file picker and the preview use plain
// letter keys.
func (m ImportModel) Capturing() bool { return true }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

// Reset returns the screen to the file picker.
func (m ImportModel) Reset() ImportModel {
	m.state = importStateFilePick
	m.drafts = nil
	m.duplicates = nil
	m.selected = make(map[int]bool)
	m.status = ""
	m.err = nil

	return m
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeMsg:
		m.Pal = msg.Pal
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case draftsParsedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Erro: %v", msg.err)

			return m, nil
		}

		m.drafts = msg.drafts
		m.duplicates = msg.duplicates
		m.selected = make(map[int]bool, len(msg.drafts))

		for i := range msg.drafts {
			m.selected[i] = !msg.duplicates[i]
		}

		items := make([]list.Item, len(m.drafts))
		for i, d := range m.drafts {
			items[i] = draftItem{draft: d, index: i}
		}

		delegate := draftDelegate{selected: m.selected, duplicates: m.duplicates}
		m.draftList = list.New(items, delegate, 80, 20)
		m.draftList.Title = fmt.Sprintf("%d despesas encontradas", len(m.drafts))
		m.draftList.SetShowStatusBar(false)
		m.draftList.SetFilteringEnabled(false)
		m.draftList.SetShowHelp(false)
		m.state = importStatePreview

		return m, nil

	case importedMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Erro: %v (%d importadas)", msg.err, msg.count)

			return m, nil
		}

		m.status = fmt.Sprintf("%d despesas importadas.", msg.count)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Lendo %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview:
		return m.Reset(), nil
	case importStateResult:
		return m.Reset(), Back
	}

	return m, Back
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.draftList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.drafts {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		for i := range m.drafts {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		m.state = importStateImporting
		m.status = "Importando..."

		return m, m.createCmd()
	}

	var cmd tea.Cmd
	m.draftList, cmd = m.draftList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Selecione o extrato (.csv):\n\n%s", m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(m.draftList.View())
	case importStateResult:
		color := m.Pal.Positive
		if m.err != nil {
			color = m.Pal.Negative
		}

		return lipgloss.NewStyle().Padding(2).Render(
			lipgloss.NewStyle().Foreground(color).Render(m.status) + "\n\n(esc para voltar)",
		)
	}

	return ""
}

// Messages

type draftsParsedMsg struct {
	drafts     []expense.Draft
	duplicates map[int]bool
	err        error
}

type importedMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return draftsParsedMsg{err: err}
		}
		defer f.Close()

		drafts, err := importer.Parse(f)
		if err != nil {
			return draftsParsedMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		existing, err := svc.All(ctx)
		if err != nil {
			return draftsParsedMsg{err: err}
		}

		return draftsParsedMsg{drafts: drafts, duplicates: importer.Duplicates(drafts, existing)}
	}
}

func (m ImportModel) createCmd() tea.Cmd {
	svc := m.svc

	var picked []expense.Draft

	for i, d := range m.drafts {
		if m.selected[i] {
			picked = append(picked, d)
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		created, err := svc.CreateBatch(ctx, picked)

		return importedMsg{count: len(created), err: err}
	}
}

// Draft list item

type draftItem struct {
	draft expense.Draft
	index int
}

func (i draftItem) Title() string       { return i.draft.Description }
func (i draftItem) Description() string { return i.draft.Date }
func (i draftItem) FilterValue() string { return i.draft.Description }

// Draft list delegate

type draftDelegate struct {
	selected   map[int]bool
	duplicates map[int]bool
}

func (d draftDelegate) Height() int                             { return 1 }
func (d draftDelegate) Spacing() int                            { return 0 }
func (d draftDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d draftDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(draftItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if d.selected[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	note := ""
	if d.duplicates[item.index] {
		note = "  (já existe)"
	}

	fmt.Fprintf(w, "%s%s %s  %12s  %s%s",
		cursor, checkbox,
		item.draft.Date,
		FormatMoney(expense.ParseAmount(item.draft.Amount)),
		item.draft.Description,
		note,
	)
}
