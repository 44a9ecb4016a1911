package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

var (
	configYes     bool
	schemaKeys    bool
	schemaJSON    bool
	schemaSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status and migrate to add new default settings.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, environment overrides and normalization.`,
	RunE:  runConfigShow,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any new settings are available.`,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults and adds any missing settings.

Existing settings are never modified - only missing keys are added with default values.`,
	RunE: runConfigMigrate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration schema",
	Long: `Print the JSON schema of the config file, for editor completion.

With --keys, list every key with its type, default and description instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&schemaKeys, "keys", false, "list config keys instead of the JSON schema")
	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "with --keys, print the key list as JSON")
	configSchemaCmd.Flags().StringVar(&schemaSection, "section", "", "with --keys, only show one section")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderPath(app.Manager.ConfigFilePath()))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// checkMigration opens the migrator for the loaded config file. A nil use case
// means there is nothing to migrate and the outcome was already printed.
func checkMigration(ctx context.Context, renderer *styles.ConfigRenderer) (
	*usecase.MigrateConfigUseCase, *usecase.CheckConfigMigrationOutput, string,
) {
	configFile := GetApp().Manager.ConfigFilePath()

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil, nil, configFile
	}

	migrator, err := config.NewMigrator(configFile)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil, nil, configFile
	}
	uc := usecase.NewMigrateConfigUseCase(migrator)

	result, err := uc.Check(ctx, usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil, nil, configFile
	}

	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(configFile))
		return nil, nil, configFile
	}
	return uc, result, configFile
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	uc, result, configFile := checkMigration(app.Ctx(), renderer)
	if uc == nil {
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Println(renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Ctx()
	renderer := styles.NewConfigRenderer(app.Theme)
	uc, result, configFile := checkMigration(ctx, renderer)
	if uc == nil {
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Println(renderer.RenderMissingKeys(result.MissingKeys))

	if configYes {
		return executeMigration(ctx, uc, renderer)
	}

	m := newMigrateModel(ctx, renderer, app.Theme, uc, result.MissingKeys)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx, usecase.MigrateConfigInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if len(result.AddedKeys) > 0 {
		fmt.Println(renderer.RenderMigrationSuccess(len(result.AddedKeys), result.ConfigFile))
	}
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !schemaKeys {
		data, err := config.GenerateSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no config keys in section %q", schemaSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if schemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	ctx         context.Context
	spinner     spinner.Model
	renderer    *styles.ConfigRenderer
	confirm     styles.ConfirmModel
	state       migrateState
	uc          *usecase.MigrateConfigUseCase
	missingKeys []port.KeyInfo

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
	missingKeys []port.KeyInfo,
) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		ctx:         ctx,
		spinner:     s,
		renderer:    renderer,
		confirm:     styles.NewConfirm(theme, "Add these settings with default values?"),
		state:       migrateStateConfirm,
		uc:          uc,
		missingKeys: missingKeys,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.output.AddedKeys) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.AddedKeys), msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state == migrateStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				return m, m.runMigration()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	return m, nil
}

func (m migrateModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}
	if m.state == migrateStateDone {
		return m.result
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx, usecase.MigrateConfigInput{})
		return migrateResultMsg{output: result, err: err}
	}
}
