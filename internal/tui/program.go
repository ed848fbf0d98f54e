package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okanite/pomo/internal/config"
)

// Run starts the timer interface and blocks until the user quits or ctx is
// cancelled. Cancelling ctx stops the program and with it every scheduled
// tick and transition.
func Run(ctx context.Context, theme *config.ThemeConfig, inline bool) error {
	var program *tea.Program
	if inline {
		program = tea.NewProgram(NewInlineModel(theme))
	} else {
		program = tea.NewProgram(NewModel(theme), tea.WithAltScreen())
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
