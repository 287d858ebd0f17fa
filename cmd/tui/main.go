package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/afiliado/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/afiliado/internal/affiliate"
	"github.com/MrJamesThe3rd/afiliado/internal/app"
	"github.com/MrJamesThe3rd/afiliado/internal/config"
	"github.com/MrJamesThe3rd/afiliado/internal/settings"
	"github.com/MrJamesThe3rd/afiliado/internal/theme"
)

type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenProducts
	ScreenSales
	ScreenFinance
	ScreenImport
	ScreenSettings
)

type model struct {
	theme *theme.Store
	pal   view.Palette

	current Screen
	status  string

	header    view.HeaderModel
	dashboard view.DashboardModel
	products  view.ProductsModel
	sales     view.SalesModel
	finance   view.FinanceModel
	importer  view.ImportModel
	settings  view.SettingsModel
}

func initialModel(cfg *config.Config, a *app.App) model {
	pal := view.NewPalette(a.Theme.Dark())
	snap := a.Snapshot

	// Queried before the program owns the terminal.
	systemDark := lipgloss.HasDarkBackground()

	return model{
		theme:     a.Theme,
		pal:       pal,
		current:   ScreenDashboard,
		header:    view.NewHeaderModel(cfg.App.Name, time.Now()),
		dashboard: view.NewDashboardModel(snap.Products, snap.Sales, snap.Payments, a.Expenses, cfg.Finance.Balance, pal),
		products:  view.NewProductsModel(snap.Products, affiliate.NewService(affiliate.SystemClipboard{}), pal),
		sales:     view.NewSalesModel(snap.Sales, cfg.Export.Dir, pal),
		finance:   view.NewFinanceModel(a.Expenses, snap.Payments, cfg.Finance.Balance, pal),
		importer:  view.NewImportModel(a.Expenses, pal),
		settings:  view.NewSettingsModel(settings.NewStore(a.Theme, func() bool { return systemDark }), pal),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.header.Init(), m.dashboard.Init(), m.finance.Init())
}

func (m model) active() view.View {
	switch m.current {
	case ScreenProducts:
		return m.products
	case ScreenSales:
		return m.sales
	case ScreenFinance:
		return m.finance
	case ScreenImport:
		return m.importer
	case ScreenSettings:
		return m.settings
	}

	return m.dashboard
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.active().Capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.current = ScreenDashboard
				return m, m.dashboard.Init()
			case "2":
				m.current = ScreenProducts
				return m, nil
			case "3":
				m.current = ScreenSales
				return m, nil
			case "4":
				m.current = ScreenFinance
				return m, m.finance.Init()
			case "5":
				m.current = ScreenSettings
				m.settings = m.settings.Reset()

				return m, m.settings.Init()
			case "t":
				return m.toggleTheme()
			}
		}
	case view.OpenImportMsg:
		m.current = ScreenImport
		m.importer = m.importer.Reset()

		return m, m.importer.Init()
	case view.ThemeChangedMsg:
		return m.applyTheme()
	case view.BackMsg:
		if m.current == ScreenImport {
			m.current = ScreenFinance
			return m, m.finance.Init()
		}

		m.current = ScreenDashboard

		return m, m.dashboard.Init()
	}

	m.header, cmd = m.header.Update(msg)
	if cmd != nil {
		return m, cmd
	}

	if _, ok := msg.(tea.KeyMsg); !ok {
		// Async results may arrive after the user switched screens.
		return m.broadcast(msg)
	}

	switch m.current {
	case ScreenDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboard.Update(msg)
		m.dashboard = newModel.(view.DashboardModel)
	case ScreenProducts:
		var newModel tea.Model
		newModel, cmd = m.products.Update(msg)
		m.products = newModel.(view.ProductsModel)
	case ScreenSales:
		var newModel tea.Model
		newModel, cmd = m.sales.Update(msg)
		m.sales = newModel.(view.SalesModel)
	case ScreenFinance:
		var newModel tea.Model
		newModel, cmd = m.finance.Update(msg)
		m.finance = newModel.(view.FinanceModel)
	case ScreenImport:
		var newModel tea.Model
		newModel, cmd = m.importer.Update(msg)
		m.importer = newModel.(view.ImportModel)
	case ScreenSettings:
		var newModel tea.Model
		newModel, cmd = m.settings.Update(msg)
		m.settings = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) toggleTheme() (tea.Model, tea.Cmd) {
	if err := m.theme.Toggle(); err != nil {
		slog.Error("failed to save theme", "error", err)
		m.status = "Erro ao salvar tema: " + err.Error()

		return m, nil
	}

	return m.applyTheme()
}

// applyTheme rebuilds the palette from the theme store and hands it to every screen.
func (m model) applyTheme() (tea.Model, tea.Cmd) {
	m.status = ""
	m.pal = view.NewPalette(m.theme.Dark())

	return m.broadcast(view.ThemeMsg{Pal: m.pal})
}

// broadcast delivers msg to every screen, not only the active one.
func (m model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds     []tea.Cmd
		newModel tea.Model
		cmd      tea.Cmd
	)

	newModel, cmd = m.dashboard.Update(msg)
	m.dashboard = newModel.(view.DashboardModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.products.Update(msg)
	m.products = newModel.(view.ProductsModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.sales.Update(msg)
	m.sales = newModel.(view.SalesModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.finance.Update(msg)
	m.finance = newModel.(view.FinanceModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.importer.Update(msg)
	m.importer = newModel.(view.ImportModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.settings.Update(msg)
	m.settings = newModel.(view.SettingsModel)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	active := m.active()

	menu := m.pal.Faint("1 Dashboard · 2 Produtos · 3 Vendas · 4 Financeiro · 5 Configurações")

	parts := []string{m.header.View(m.pal, active.Title()), menu, "", active.View()}

	if m.status != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.pal.Negative).Render(m.status))
	}

	parts = append(parts, "", m.pal.Faint(active.ShortHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Stdout belongs to the renderer; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard

	if cfg.TUI.LogFile != "" {
		f, err := tea.LogToFile(cfg.TUI.LogFile, "afiliado")
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		logOut = f
	}

	slog.SetDefault(cfg.Logger(logOut))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	a, err := app.Open(ctx, cfg)
	cancel()

	if err != nil {
		slog.Error("failed to open data source", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(initialModel(cfg, a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
