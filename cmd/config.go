package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okanite/pomo/internal/config"
	"github.com/okanite/pomo/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config file path and current settings",
	Long: `Prints where pomo reads its configuration from and the active theme.
Session durations are fixed (25m focus, 5m short break, 15m long break)
and cannot be configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Config file: %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Sessions (fixed):")
		for _, m := range domain.Modes() {
			cfg := domain.ConfigFor(m)
			fmt.Fprintf(out, "    %-12s %s\n", cfg.Label, cfg.Duration)
		}
		fmt.Fprintf(out, "    Long break after every %d focus sessions\n", domain.SessionsBeforeLong)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Inline mode default: %v\n", appConfig.Inline)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Theme:")
		fmt.Fprintf(out, "    Focus color:  %s\n", appConfig.Theme.ColorFocus)
		fmt.Fprintf(out, "    Break color:  %s\n", appConfig.Theme.ColorBreak)
		fmt.Fprintf(out, "    Paused color: %s\n", appConfig.Theme.ColorPaused)
		fmt.Fprintln(out)

		return nil
	},
}
