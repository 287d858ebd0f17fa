package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	clockInterval  = time.Second
	bannerInterval = 5 * time.Second
)

var banners = []string{
	"Hoje é o dia de multiplicar seus lucros! 💰",
	"Cada click pode ser uma nova oportunidade! 🚀",
	"Sua determinação é seu diferencial! ⭐",
	"Grandes vendas começam com grandes ideias! 💡",
	"O sucesso está ao seu alcance! 🎯",
	"Transforme dados em resultados! 📊",
	"Seja o afiliado que outros admiram! 🏆",
}

var (
	weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	months   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

type clockMsg time.Time

type bannerMsg struct{}

// HeaderModel shows the live clock, the rotating banner and the theme.
type HeaderModel struct {
	appName string
	now     time.Time
	banner  int
}

func NewHeaderModel(appName string, now time.Time) HeaderModel {
	return HeaderModel{
		appName: appName,
		now:     now,
		banner:  now.YearDay() % len(banners),
	}
}

func (m HeaderModel) Init() tea.Cmd {
	return tea.Batch(clockTick(), bannerTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func bannerTick() tea.Cmd {
	return tea.Tick(bannerInterval, func(time.Time) tea.Msg {
		return bannerMsg{}
	})
}

func (m HeaderModel) Update(msg tea.Msg) (HeaderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case clockMsg:
		m.now = time.Time(msg)
		return m, clockTick()
	case bannerMsg:
		m.banner = (m.banner + 1) % len(banners)
		return m, bannerTick()
	}

	return m, nil
}

// LongDate renders t as "quinta-feira, 16 de outubro".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}

func (m HeaderModel) View(pal Palette, active string) string {
	mode := "☀ claro"
	if pal.Dark {
		mode = "☾ escuro"
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		pal.Title(m.appName)+"  "+pal.Faint(active),
		LongDate(m.now)+"  "+m.now.Format("15:04:05"),
	)

	right := lipgloss.JoinVertical(lipgloss.Right,
		pal.Active(banners[m.banner]),
		pal.Faint("[t] tema: "+mode),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(pal.Border).
		PaddingBottom(0).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}
