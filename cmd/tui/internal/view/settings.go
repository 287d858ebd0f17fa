package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/afiliado/internal/settings"
)

type settingsState int

const (
	settingsStateBrowse settingsState = iota
	settingsStateEdit
)

// ThemeChangedMsg asks the app to rebuild the palette from the theme store.
type ThemeChangedMsg struct{}

type SettingsModel struct {
	CommonModel
	store *settings.Store

	state  settingsState
	draft  *settings.Settings
	form   *huh.Form
	status string
	err    error
}

func NewSettingsModel(store *settings.Store, pal Palette) SettingsModel {
	return SettingsModel{
		CommonModel: CommonModel{Pal: pal},
		store:       store,
		draft:       &settings.Settings{},
	}
}

func (m SettingsModel) Title() string { return "Configurações" }

func (m SettingsModel) ShortHelp() string {
	if m.state == settingsStateEdit {
		return "Navegar no formulário | enter: avançar/salvar | esc: cancelar"
	}

	return "e: editar | esc: voltar"
}

func (m SettingsModel) Capturing() bool {
	return m.state == settingsStateEdit
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Reset leaves any open form and clears the last status.
func (m SettingsModel) Reset() SettingsModel {
	m.state = settingsStateBrowse
	m.form = nil
	m.status = ""
	m.err = nil

	return m
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ThemeMsg:
		m.Pal = msg.Pal
		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil
	}

	if m.state == settingsStateEdit {
		return m.updateEdit(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "e", "enter":
			return m.enterEditMode()
		}
	}

	return m, nil
}

func (m SettingsModel) enterEditMode() (tea.Model, tea.Cmd) {
	*m.draft = m.store.Get()
	m.form = settingsForm(m.draft)
	m.state = settingsStateEdit
	m.status = ""
	m.err = nil

	return m, m.form.Init()
}

func (m SettingsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.Reset(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m = m.Reset()

	if _, err := m.store.Save(*m.draft); err != nil {
		m.err = err
		return m, nil
	}

	m.status = "Configurações salvas! Suas preferências foram atualizadas com sucesso."

	return m, func() tea.Msg { return ThemeChangedMsg{} }
}

func settingsForm(s *settings.Settings) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Nome Completo").
				Value(&s.Name),

			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(settings.ValidateEmail).
				Value(&s.Email),
		).Title("Perfil da Conta"),

		huh.NewGroup(
			huh.NewInput().
				Key("api_url").
				Title("URL da API").
				Placeholder("https://sua-api.com").
				Validate(settings.ValidateAPIURL).
				Value(&s.APIURL),

			huh.NewInput().
				Key("api_key").
				Title("Chave da API").
				Placeholder("Cole sua chave de API aqui").
				EchoMode(huh.EchoModePassword).
				Value(&s.APIKey),
		).Title("Configuração da API"),

		huh.NewGroup(
			huh.NewConfirm().
				Key("email_notifications").
				Title("Notificações por Email").
				Value(&s.EmailNotifications),

			huh.NewConfirm().
				Key("sales_alerts").
				Title("Alertas de Vendas").
				Value(&s.SalesAlerts),

			huh.NewConfirm().
				Key("daily_reports").
				Title("Relatórios Diários").
				Value(&s.DailyReports),

			huh.NewConfirm().
				Key("two_factor").
				Title("Autenticação de Dois Fatores").
				Value(&s.TwoFactor),
		).Title("Notificações e Segurança"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Tema").
				Options(huhOptions(settings.ThemeOptions)...).
				Value(&s.Theme),

			huh.NewSelect[string]().
				Key("language").
				Title("Idioma").
				Options(huhOptions(settings.LanguageOptions)...).
				Value(&s.Language),

			huh.NewSelect[string]().
				Key("currency").
				Title("Moeda").
				Options(huhOptions(settings.CurrencyOptions)...).
				Value(&s.Currency),
		).Title("Preferências"),
	).WithWidth(45).WithShowHelp(false)
}

func huhOptions(options []settings.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, o := range options {
		out[i] = huh.NewOption(o.Label, o.Value)
	}

	return out
}

func optionLabel(options []settings.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}

	return value
}

func onOff(b bool) string {
	if b {
		return "ativado"
	}

	return "desativado"
}

func (m SettingsModel) View() string {
	if m.form != nil {
		return m.Pal.Panel(fmt.Sprintf("%s\n\n%s", "Editar Configurações", m.form.View()))
	}

	s := m.store.Get()

	apiKey := settings.MaskKey(s.APIKey)
	if apiKey == "" {
		apiKey = m.Pal.Faint("não configurada")
	}

	section := func(title string, lines ...string) string {
		return m.Pal.Title(title) + "\n" + strings.Join(lines, "\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		section("Perfil da Conta",
			"Nome:  "+s.Name,
			"Email: "+s.Email),
		"",
		section("Configuração da API",
			"URL:   "+s.APIURL,
			"Chave: "+apiKey),
		"",
		section("Notificações",
			"Notificações por Email: "+onOff(s.EmailNotifications),
			"Alertas de Vendas:      "+onOff(s.SalesAlerts),
			"Relatórios Diários:     "+onOff(s.DailyReports)),
		"",
		section("Preferências",
			"Tema:   "+optionLabel(settings.ThemeOptions, s.Theme),
			"Idioma: "+optionLabel(settings.LanguageOptions, s.Language),
			"Moeda:  "+optionLabel(settings.CurrencyOptions, s.Currency)),
		"",
		section("Segurança",
			"Autenticação de Dois Fatores: "+onOff(s.TwoFactor)),
	)

	switch {
	case m.err != nil:
		content = lipgloss.NewStyle().Foreground(m.Pal.Negative).Render(fmt.Sprintf("Erro ao salvar: %v", m.err)) + "\n\n" + content
	case m.status != "":
		content = lipgloss.NewStyle().Foreground(m.Pal.Positive).Render(m.status) + "\n\n" + content
	}

	return content
}
