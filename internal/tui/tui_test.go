package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/okanite/pomo/internal/config"
)

func TestResolveTheme_NilGivesDefaults(t *testing.T) {
	theme := resolveTheme(nil)

	if theme != config.DefaultThemeConfig() {
		t.Error("resolveTheme(nil) should return the default theme")
	}
}

func TestResolveTheme_FillsEmptyFields(t *testing.T) {
	partial := &config.ThemeConfig{ColorFocus: "#123456"}
	theme := resolveTheme(partial)

	if theme.ColorFocus != "#123456" {
		t.Errorf("ColorFocus = %q, want %q", theme.ColorFocus, "#123456")
	}
	if theme.ColorBreak != config.DefaultThemeConfig().ColorBreak {
		t.Errorf("ColorBreak = %q, want default %q", theme.ColorBreak, config.DefaultThemeConfig().ColorBreak)
	}
	if theme.IconApp == "" {
		t.Error("IconApp should be filled with the default")
	}
}

func TestRenderClock_WideTerminal(t *testing.T) {
	out := renderClock("25:00", lipgloss.Color("#FFFFFF"), 80)

	lines := strings.Split(out, "\n")
	if len(lines) != clockRows {
		t.Errorf("wide clock should render %d rows, got %d", clockRows, len(lines))
	}
}

func TestRenderClock_NarrowTerminalFallsBack(t *testing.T) {
	out := renderClock("25:00", lipgloss.Color("#FFFFFF"), 30)

	if strings.Contains(out, "\n") {
		t.Error("narrow clock should render a single line")
	}
	if !strings.Contains(out, "25:00") {
		t.Errorf("narrow clock should contain the plain time, got %q", out)
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 24

	view := m.View()

	if view == "" {
		t.Error("View() should not return empty string")
	}
	if view == "Loading..." {
		t.Error("View() should not show loading when width is set")
	}
	if !strings.Contains(view, "completed") {
		t.Error("View() should show the completed-session counter")
	}
}

func TestModel_View_ZeroWidthShowsLoading(t *testing.T) {
	m := NewModel(nil)

	if m.View() != "Loading..." {
		t.Error("View() should show loading before the first WindowSizeMsg")
	}
}

func TestInlineModel_View(t *testing.T) {
	m := NewInlineModel(nil)
	m.width = 80

	view := m.View()

	if !strings.Contains(view, "25:00") {
		t.Errorf("inline view should contain the clock, got %q", view)
	}
	if !strings.Contains(view, "Focus") {
		t.Error("inline view should show the mode label")
	}
}

func TestInlineModel_View_FinishedShowsNextMode(t *testing.T) {
	m := NewInlineModel(nil)
	m.width = 80
	m.timer.Remaining = 0
	m.finished = true

	view := m.View()

	if !strings.Contains(view, "next...") {
		t.Error("inline view should announce the upcoming mode while finished")
	}
}
