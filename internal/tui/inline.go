package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/okanite/pomo/internal/config"
	"github.com/okanite/pomo/internal/domain"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// InlineModel is a compact timer that renders a few lines in place instead of
// taking over the screen. Same keymap and scheduling as the fullscreen model.
type InlineModel struct {
	session
	width int
	theme config.ThemeConfig
}

// NewInlineModel creates a new inline TUI model.
func NewInlineModel(theme *config.ThemeConfig) InlineModel {
	return InlineModel{
		session: newSession(),
		width:   getTerminalWidth(),
		theme:   resolveTheme(theme),
	}
}

// Init initializes the inline TUI.
func (m InlineModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m InlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			cmd, _ := m.handleKey(key)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}

	case tickMsg:
		return m, m.handleTick(msg)

	case transitionMsg:
		m.handleTransition(msg)
	}

	return m, nil
}

// View renders the compact timer.
func (m InlineModel) View() string {
	accent := lipgloss.Color(m.theme.ColorFocus)
	gradStart, gradEnd := m.theme.FocusGradientStart, m.theme.FocusGradientEnd
	if m.timer.Config().Accent == "break" {
		accent = lipgloss.Color(m.theme.ColorBreak)
		gradStart, gradEnd = m.theme.BreakGradientStart, m.theme.BreakGradientEnd
	}

	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle := lipgloss.NewStyle().Foreground(accent)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	status := m.timer.Mode.Label()
	if !m.timer.Running && !m.finished {
		status += " (stopped)"
		gradStart, gradEnd = m.theme.PausedGradientStart, m.theme.PausedGradientEnd
	}

	pbar := progress.New(progress.WithGradient(gradStart, gradEnd))
	pbar.Width = m.width - 24
	if pbar.Width < 10 {
		pbar.Width = 10
	}

	pos := m.timer.CyclePosition()
	dots := strings.Repeat("●", pos) + strings.Repeat("○", domain.SessionsBeforeLong-pos)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s  %s  %s %s\n",
		m.theme.IconApp,
		labelStyle.Render(status),
		clockStyle.Render(m.timer.Clock()),
		pbar.ViewAs(m.timer.Progress()),
		labelStyle.Render(dots),
	))
	if m.finished {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s next...", m.timer.NextAfterFinish().Label())) + "\n")
	}
	b.WriteString(helpStyle.Render("  [s]tart/pause  [r]eset  [n] skip  [1/2/3] mode  [q]uit"))
	return b.String()
}
