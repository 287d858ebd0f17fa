package settings_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/settings"
)

type fakeTheme struct {
	dark bool
	sets int
	err  error
}

func (f *fakeTheme) Dark() bool { return f.dark }

func (f *fakeTheme) Set(dark bool) error {
	if f.err != nil {
		return f.err
	}

	f.dark = dark
	f.sets++

	return nil
}

func TestNewStore_ThemeFollowsStore(t *testing.T) {
	assert.Equal(t, settings.ThemeLight, settings.NewStore(&fakeTheme{}, nil).Get().Theme)
	assert.Equal(t, settings.ThemeDark, settings.NewStore(&fakeTheme{dark: true}, nil).Get().Theme)
}

func TestStore_Get_FollowsThemeToggle(t *testing.T) {
	th := &fakeTheme{}
	store := settings.NewStore(th, nil)

	require.NoError(t, th.Set(true))
	assert.Equal(t, settings.ThemeDark, store.Get().Theme)

	next := store.Get()
	next.Theme = settings.ThemeSystem
	_, err := store.Save(next)
	require.NoError(t, err)

	require.NoError(t, th.Set(false))
	assert.Equal(t, settings.ThemeSystem, store.Get().Theme)
}

func TestStore_Save(t *testing.T) {
	type args struct {
		edit       func(s *settings.Settings)
		systemDark func() bool
	}

	type testCase struct {
		name     string
		args     args
		wantDark bool
		wantSets int
	}

	tests := []testCase{
		{
			name:     "DarkThemeIsPersisted",
			args:     args{edit: func(s *settings.Settings) { s.Theme = settings.ThemeDark }},
			wantDark: true,
			wantSets: 1,
		},
		{
			name:     "LightThemeIsPersisted",
			args:     args{edit: func(s *settings.Settings) { s.SalesAlerts = false }},
			wantDark: false,
			wantSets: 1,
		},
		{
			name: "SystemThemeResolvesThroughDetector",
			args: args{
				edit:       func(s *settings.Settings) { s.Theme = settings.ThemeSystem },
				systemDark: func() bool { return true },
			},
			wantDark: true,
			wantSets: 1,
		},
		{
			name:     "SystemThemeWithoutDetectorKeepsMode",
			args:     args{edit: func(s *settings.Settings) { s.Theme = settings.ThemeSystem }},
			wantDark: false,
			wantSets: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := &fakeTheme{}
			store := settings.NewStore(th, tt.args.systemDark)

			next := store.Get()
			tt.args.edit(&next)

			saved, err := store.Save(next)
			require.NoError(t, err)

			assert.Equal(t, next, saved)
			assert.Equal(t, next, store.Get())
			assert.Equal(t, tt.wantDark, th.dark)
			assert.Equal(t, tt.wantSets, th.sets)
		})
	}
}

func TestStore_Save_TrimsText(t *testing.T) {
	store := settings.NewStore(&fakeTheme{}, nil)

	next := store.Get()
	next.Name = "  Maria Souza "
	next.Email = " maria@exemplo.com "

	saved, err := store.Save(next)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", saved.Name)
	assert.Equal(t, "maria@exemplo.com", saved.Email)
}

func TestStore_Save_Invalid(t *testing.T) {
	type testCase struct {
		name string
		edit func(s *settings.Settings)
	}

	tests := []testCase{
		{name: "EmptyName", edit: func(s *settings.Settings) { s.Name = " " }},
		{name: "BadEmail", edit: func(s *settings.Settings) { s.Email = "joao" }},
		{name: "EmailWithDisplayName", edit: func(s *settings.Settings) { s.Email = "João <joao@exemplo.com>" }},
		{name: "RelativeAPIURL", edit: func(s *settings.Settings) { s.APIURL = "api.exemplo.com" }},
		{name: "FTPAPIURL", edit: func(s *settings.Settings) { s.APIURL = "ftp://api.exemplo.com" }},
		{name: "UnknownTheme", edit: func(s *settings.Settings) { s.Theme = "sepia" }},
		{name: "UnknownLanguage", edit: func(s *settings.Settings) { s.Language = "fr-FR" }},
		{name: "UnknownCurrency", edit: func(s *settings.Settings) { s.Currency = "JPY" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := &fakeTheme{}
			store := settings.NewStore(th, nil)
			before := store.Get()

			next := before
			tt.edit(&next)

			_, err := store.Save(next)
			require.ErrorIs(t, err, settings.ErrInvalid)

			assert.Equal(t, before, store.Get())
			assert.Zero(t, th.sets)
		})
	}
}

func TestStore_Save_ThemeWriteFails(t *testing.T) {
	th := &fakeTheme{err: errors.New("read-only file system")}
	store := settings.NewStore(th, nil)
	before := store.Get()

	next := before
	next.Name = "Maria"
	next.Theme = settings.ThemeDark

	_, err := store.Save(next)
	require.ErrorContains(t, err, "saving theme")
	assert.Equal(t, before, store.Get())
}

func TestSettings_EmptyAPIURLIsAllowed(t *testing.T) {
	s := settings.Defaults()
	s.APIURL = ""

	assert.NoError(t, s.Validate())
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", settings.MaskKey(""))
	assert.Equal(t, "•••", settings.MaskKey("abc"))
	assert.Equal(t, "••••••wxyz", settings.MaskKey("abcdefwxyz"))
}
