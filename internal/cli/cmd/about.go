package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/urlbar/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display the version, commit, build date, toolchain and contributors of this urlbar binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return errors.New("app not initialized")
		}
		if aboutShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildInfo.Short())
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
		return err
	},
}

func init() {
	aboutCmd.Flags().BoolVar(&aboutShort, "short", false, "print only \"version (commit)\"")
	rootCmd.AddCommand(aboutCmd)
}
