package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/cli/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List address bar themes",
	Long: `Show the bar and text field colors of every named theme, with the
overrides from the config file applied.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewListThemesUseCase(app.BarThemes, app.FieldThemes)
	themes := uc.Execute(app.Ctx())

	renderer := styles.NewThemesRenderer(app.Theme)
	fmt.Println(renderer.Render(themes, app.Config.AddressBar.DefaultTheme))
	return nil
}
