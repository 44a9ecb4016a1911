package styles

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlbar/internal/application/port"
)

// ConfigRenderer formats the output of `urlbar config` subcommands.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer returns a renderer using theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

func (r *ConfigRenderer) icon(glyph string, color lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().Foreground(color).Render(glyph)
}

// fileLine is the "<icon> Config <path>" line opening most messages.
func (r *ConfigRenderer) fileLine(path string) string {
	return fmt.Sprintf("  %s Config %s", r.icon(IconConfig, r.theme.Accent), r.theme.Subtle.Render(path))
}

func block(lines ...string) string {
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// RenderPath renders the config file location on a single line.
func (r *ConfigRenderer) RenderPath(path string) string {
	return r.icon(IconConfig, r.theme.Accent) + " " + r.theme.Normal.Render(path)
}

// RenderConfigInfo renders the file line plus the number of missing settings.
func (r *ConfigRenderer) RenderConfigInfo(path string, missing int) string {
	if missing == 0 {
		return block(r.fileLine(path))
	}
	count := lipgloss.NewStyle().Foreground(r.theme.Warning).Render(strconv.Itoa(missing))
	return block(
		r.fileLine(path),
		fmt.Sprintf("  %s %s new settings available", r.icon(IconInfo, r.theme.Accent), count),
	)
}

// RenderUpToDate reports a config file that has every default key.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	return block(r.fileLine(path), "  "+r.icon(IconCheck, r.theme.Success)+" Config is up to date")
}

// RenderNoConfigFile reports that the file has not been written yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	return block(r.fileLine(path), "  "+r.theme.Subtle.Render("The file is written with all defaults on first run."))
}

// RenderMissingKeys lists missing keys grouped by their top-level table.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	value := lipgloss.NewStyle().Foreground(r.theme.Text)
	lines := []string{fmt.Sprintf("  Missing settings (%d):", len(keys))}
	table := ""
	for _, k := range keys {
		if t, _, _ := strings.Cut(k.Key, "."); t != table {
			table = t
			lines = append(lines, "   "+r.theme.Subtle.Render("["+t+"]"))
		}
		lines = append(lines,
			fmt.Sprintf("    %s %s", r.icon(IconCursor, r.theme.Accent), r.theme.Highlight.Render(k.Key)),
			fmt.Sprintf("      %s = %s", r.theme.Subtle.Render(k.Type), value.Render(k.DefaultValue)),
		)
	}
	return block(lines...)
}

// RenderMigrationSuccess reports how many keys were written to path.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	return block(fmt.Sprintf("  %s Added %s new settings to %s",
		r.icon(IconCheck, r.theme.Success),
		r.theme.Highlight.Render(strconv.Itoa(count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	))
}

// RenderMigrateHint points at the migrate subcommand.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return block("  " + r.theme.Subtle.Render("Run 'urlbar config migrate' to add missing defaults."))
}

// RenderError renders err as a config failure.
func (r *ConfigRenderer) RenderError(err error) string {
	return block(fmt.Sprintf("  %s Config error: %v", r.icon(IconX, r.theme.Error), err))
}
