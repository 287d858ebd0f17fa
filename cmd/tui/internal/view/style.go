package view

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours for one theme mode.
type Palette struct {
	Dark     bool
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Warning  lipgloss.Color
}

func NewPalette(dark bool) Palette {
	if dark {
		return Palette{
			Dark:     true,
			Text:     lipgloss.Color("252"),
			Muted:    lipgloss.Color("245"),
			Accent:   lipgloss.Color("212"),
			Border:   lipgloss.Color("240"),
			Selected: lipgloss.Color("57"),
			Positive: lipgloss.Color("78"),
			Negative: lipgloss.Color("203"),
			Warning:  lipgloss.Color("221"),
		}
	}

	return Palette{
		Text:     lipgloss.Color("235"),
		Muted:    lipgloss.Color("242"),
		Accent:   lipgloss.Color("163"),
		Border:   lipgloss.Color("250"),
		Selected: lipgloss.Color("189"),
		Positive: lipgloss.Color("28"),
		Negative: lipgloss.Color("160"),
		Warning:  lipgloss.Color("130"),
	}
}

func (p Palette) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(p.Text).
		Background(p.Selected).
		Bold(false)

	return s
}

func (p Palette) Active(s string) string {
	return lipgloss.NewStyle().Foreground(p.Accent).Render(s)
}

func (p Palette) Faint(s string) string {
	return lipgloss.NewStyle().Foreground(p.Muted).Render(s)
}

func (p Palette) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(s)
}

// Card renders a metric card: a muted title over a bold value.
func (p Palette) Card(title, value, note string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.Faint(title),
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(value),
		p.Faint(note),
	)

	return lipgloss.NewStyle().
		Padding(0, 2).
		Width(24).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Render(body)
}

func (p Palette) Boxed(s string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Render(s)
}

func (p Palette) Panel(s string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Width(48).
		Render(s)
}
