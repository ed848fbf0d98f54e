// Package cmd provides the CLI commands for pomo.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okanite/pomo/internal/config"
	"github.com/okanite/pomo/internal/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	inlineMode bool

	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo - a Pomodoro countdown timer for the terminal",
	Long: `pomo is a terminal Pomodoro timer: pick a session mode (focus,
short break, long break), start the countdown, and let it cycle you
through breaks. Every 4th focus session earns a long break.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load()
		if err != nil {
			// A broken config file should not keep the timer from starting.
			fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
			appConfig = config.DefaultConfig()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inline := appConfig.Inline
		if cmd.Flags().Changed("inline") {
			inline = inlineMode
		}

		ctx := setupSignalHandler()
		if err := tui.Run(ctx, &appConfig.Theme, inline); err != nil {
			return fmt.Errorf("timer error: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
