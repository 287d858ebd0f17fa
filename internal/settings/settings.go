// Package settings holds the account, integration, notification and display
// preferences. Only the theme outlives the process, through theme.Store.
package settings

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"sync"
)

var ErrInvalid = errors.New("invalid settings")

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Option is one entry of a select: the stored value and its label.
type Option struct {
	Value string
	Label string
}

var (
	ThemeOptions = []Option{
		{Value: ThemeLight, Label: "Claro"},
		{Value: ThemeDark, Label: "Escuro"},
		{Value: ThemeSystem, Label: "Sistema"},
	}
	LanguageOptions = []Option{
		{Value: "pt-BR", Label: "Português (Brasil)"},
		{Value: "en-US", Label: "English (US)"},
		{Value: "es-ES", Label: "Español"},
	}
	CurrencyOptions = []Option{
		{Value: "BRL", Label: "Real (R$)"},
		{Value: "USD", Label: "Dólar ($)"},
		{Value: "EUR", Label: "Euro (€)"},
	}
)

type Settings struct {
	Name  string
	Email string

	APIURL string
	APIKey string

	EmailNotifications bool
	SalesAlerts        bool
	DailyReports       bool

	Theme    string
	Language string
	Currency string

	TwoFactor bool
}

func Defaults() Settings {
	return Settings{
		Name:               "João Silva",
		Email:              "joao@exemplo.com",
		APIURL:             "https://api.exemplo.com",
		EmailNotifications: true,
		SalesAlerts:        true,
		Theme:              ThemeLight,
		Language:           "pt-BR",
		Currency:           "BRL",
	}
}

// Validate reports every offending field, each wrapped in ErrInvalid.
func (s Settings) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("%w: nome é obrigatório", ErrInvalid))
	}

	if err := ValidateEmail(s.Email); err != nil {
		errs = append(errs, err)
	}

	if err := ValidateAPIURL(s.APIURL); err != nil {
		errs = append(errs, err)
	}

	for _, f := range []struct {
		name    string
		value   string
		options []Option
	}{
		{"tema", s.Theme, ThemeOptions},
		{"idioma", s.Language, LanguageOptions},
		{"moeda", s.Currency, CurrencyOptions},
	} {
		if !hasOption(f.options, f.value) {
			errs = append(errs, fmt.Errorf("%w: %s %q desconhecido", ErrInvalid, f.name, f.value))
		}
	}

	return errors.Join(errs...)
}

func ValidateEmail(s string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil || addr.Name != "" {
		return fmt.Errorf("%w: email %q inválido", ErrInvalid, s)
	}

	return nil
}

// ValidateAPIURL accepts an empty value or an absolute http(s) URL.
func ValidateAPIURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: URL da API %q inválida", ErrInvalid, s)
	}

	return nil
}

func hasOption(options []Option, value string) bool {
	return slices.ContainsFunc(options, func(o Option) bool { return o.Value == value })
}

// ThemeStore is the persisted dark/light preference.
type ThemeStore interface {
	Dark() bool
	Set(dark bool) error
}

type Store struct {
	mu         sync.RWMutex
	current    Settings
	theme      ThemeStore
	systemDark func() bool
}

// NewStore starts from Defaults. systemDark resolves the "system" theme; when
// nil, choosing it keeps the current mode.
func NewStore(th ThemeStore, systemDark func() bool) *Store {
	return &Store{current: Defaults(), theme: th, systemDark: systemDark}
}

// Get returns the current settings. Unless "system" was chosen, Theme reflects
// the theme store, which other callers may toggle.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.current
	if out.Theme == ThemeSystem {
		return out
	}

	out.Theme = ThemeLight
	if s.theme.Dark() {
		out.Theme = ThemeDark
	}

	return out
}

// Save validates next, applies its theme and replaces the current settings.
// Nothing changes when validation or the theme write fails.
func (s *Store) Save(next Settings) (Settings, error) {
	next.Name = strings.TrimSpace(next.Name)
	next.Email = strings.TrimSpace(next.Email)
	next.APIURL = strings.TrimSpace(next.APIURL)

	if err := next.Validate(); err != nil {
		return Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyTheme(next.Theme); err != nil {
		return Settings{}, fmt.Errorf("saving theme: %w", err)
	}

	s.current = next

	return next, nil
}

func (s *Store) applyTheme(mode string) error {
	switch mode {
	case ThemeLight:
		return s.theme.Set(false)
	case ThemeDark:
		return s.theme.Set(true)
	}

	if s.systemDark == nil {
		return nil
	}

	return s.theme.Set(s.systemDark())
}

// MaskKey hides all but the last four characters of an API key.
func MaskKey(key string) string {
	r := []rune(key)
	if len(r) <= 4 {
		return strings.Repeat("•", len(r))
	}

	return strings.Repeat("•", len(r)-4) + string(r[len(r)-4:])
}
