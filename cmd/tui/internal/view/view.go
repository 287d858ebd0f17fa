package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
	// Capturing reports whether the screen is consuming raw keys (a search
	// box or form has focus), so global shortcuts must not fire.
	Capturing() bool
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
	Pal    Palette
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// ThemeMsg is sent to every screen when the palette changes.
type ThemeMsg struct {
	Pal Palette
}
