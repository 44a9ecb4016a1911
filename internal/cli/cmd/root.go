// Package cmd provides Cobra CLI commands for urlbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/urlbar/internal/cli"
	"github.com/bnema/urlbar/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "urlbar",
		Short: "A headless mobile browser address bar",
		Long: `urlbar - the toolbar chrome of a mobile browser, without the browser.

The address bar switches between a display mode showing the current page and
a search mode with a text field, keeps a tab count badge in sync with the open
tabs and applies named color themes. A window level touch broadcaster lets
the bar watch taps outside of itself while it is editing.

Use 'urlbar preview' to drive a live address bar in the terminal, or explore
the subcommands to inspect themes and configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default $XDG_CONFIG_HOME/urlbar)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Short()
}
