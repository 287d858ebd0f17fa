package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/theme"
)

func TestInit(t *testing.T) {
	type testCase struct {
		name     string
		contents *string
		wantDark bool
		wantErr  bool
	}

	tests := []testCase{
		{name: "MissingFileIsLight", contents: nil, wantDark: false},
		{name: "Dark", contents: ptr("theme: dark\n"), wantDark: true},
		{name: "Light", contents: ptr("theme: light\n"), wantDark: false},
		{name: "UnknownValueIsLight", contents: ptr("theme: sepia\n"), wantDark: false},
		{name: "Malformed", contents: ptr("theme: [\n"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.yaml")
			if tt.contents != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.contents), 0o644))
			}

			s, err := theme.Init(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDark, s.Dark())
		})
	}
}

func TestStore_SetWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	s, err := theme.Init(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(true))
	assert.Equal(t, theme.Dark, s.Mode())

	reloaded, err := theme.Init(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Dark())

	require.NoError(t, reloaded.Toggle())

	again, err := theme.Init(path)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, again.Mode())
}

func ptr(s string) *string { return &s }
