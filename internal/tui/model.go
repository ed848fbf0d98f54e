package tui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okanite/pomo/internal/config"
	"github.com/okanite/pomo/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// Model is the fullscreen TUI state.
type Model struct {
	session
	width  int
	height int
	theme  config.ThemeConfig
}

// NewModel creates a new fullscreen TUI model.
func NewModel(theme *config.ThemeConfig) Model {
	return Model{
		session: newSession(),
		theme:   resolveTheme(theme),
	}
}

// Init initializes the TUI. The countdown starts stopped, so no ticker yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// accentColor returns the theme color for the current session mode.
func (m Model) accentColor() lipgloss.Color {
	if m.timer.Config().Accent == "break" {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorFocus)
}

// clockColor returns the clock color, accounting for the stopped state.
func (m Model) clockColor() lipgloss.Color {
	if !m.timer.Running && !m.finished {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.accentColor()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, m.handleTick(msg)

	case transitionMsg:
		m.handleTransition(msg)
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	statusStyle := lipgloss.NewStyle().Foreground(m.accentColor())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s pomo", m.theme.IconApp)))
	sections = append(sections, m.viewModeTabs())
	sections = append(sections, "")
	sections = append(sections, renderClock(m.timer.Clock(), m.clockColor(), m.width))

	if !m.timer.Running && !m.finished && m.timer.Remaining < int(m.timer.Config().Duration.Seconds()) {
		pauseBadge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "")
		sections = append(sections, pauseBadge)
	}

	sections = append(sections, "")
	sections = append(sections, m.viewProgress())
	sections = append(sections, "")
	sections = append(sections, statusStyle.Render(m.viewCycle()))

	if m.finished {
		sections = append(sections, "")
		sections = append(sections, statusStyle.Render(fmt.Sprintf("%s next...", m.timer.NextAfterFinish().Label())))
	}

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(m.helpLine()))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewModeTabs renders the three mode labels with the active one highlighted.
func (m Model) viewModeTabs() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.accentColor())
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var tabs []string
	for _, mode := range domain.Modes() {
		label := mode.Label()
		if mode == m.timer.Mode {
			tabs = append(tabs, activeStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, "  ")
}

// viewProgress renders the countdown progress bar with a per-mode gradient.
func (m Model) viewProgress() string {
	var pbar progress.Model
	switch {
	case !m.timer.Running && !m.finished:
		pbar = progress.New(progress.WithGradient(m.theme.PausedGradientStart, m.theme.PausedGradientEnd))
	case m.timer.Config().Accent == "break":
		pbar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	default:
		pbar = progress.New(progress.WithGradient(m.theme.FocusGradientStart, m.theme.FocusGradientEnd))
	}
	pbar.Width = m.width - 4
	return pbar.ViewAs(m.timer.Progress())
}

// viewCycle renders position within the 4-session cycle plus the total count.
func (m Model) viewCycle() string {
	pos := m.timer.CyclePosition()
	dots := strings.Repeat("●", pos) + strings.Repeat("○", domain.SessionsBeforeLong-pos)
	return fmt.Sprintf("%s  %d completed", dots, m.timer.CompletedFocus)
}

func (m Model) helpLine() string {
	action := "[s]tart"
	if m.timer.Running {
		action = "[s] pause"
	}
	return fmt.Sprintf("%s  [r]eset  [n] skip  [1/2/3] mode  [q]uit", action)
}
