package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/urlbar/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man urlbar'. You may need to run 'mandb'
to update the man page index.

Examples:
  urlbar gen-docs                           # Install man pages
  urlbar gen-docs --format markdown         # Generate markdown docs in ./docs
  urlbar gen-docs --output ./man            # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no generation timestamp footer.
	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "URLBAR",
			Section: "1",
			Source:  "urlbar " + buildInfo.Version,
			Manual:  "urlbar Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		ext = ".1"
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		ext = ".md"
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, outputDir)

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}
