// ABOUTME: CLI commands for exporting and importing HRV data.
// ABOUTME: Supports JSON, YAML, Markdown, and CSV formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/storage"
)

var (
	exportOutput  string
	exportSession string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export HRV data",
	Long: `Export HRV data in various formats.

FORMATS:

  json       Full JSON export with raw series (backup/restore)
  yaml       YAML summary without raw series (human-readable)
  markdown   Single-session Markdown report (requires --session)
  csv        Single-session CSV with RR series (requires --session)

OPTIONS:

  --output, -o    Write to file instead of stdout
  --session, -s   Session ID for markdown/csv reports

EXAMPLES:

  hrm export json                        # Export all data as JSON
  hrm export json -o backup.json         # Save to file
  hrm export yaml                        # Export as YAML
  hrm export markdown -s a1b2c3d4        # One session as Markdown
  hrm export csv -s a1b2c3d4 -o rr.csv   # RR series as CSV`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown", "csv":
			if exportSession == "" {
				return fmt.Errorf("%s export needs --session", format)
			}
			s, err := repo.GetSession(exportSession)
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}
			if format == "markdown" {
				data = []byte(storage.SessionReportMarkdown(s))
			} else {
				data = []byte(storage.SessionReportCSV(s))
			}
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, markdown, or csv)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import HRV data from JSON",
	Long: `Import sessions and morning tests from a JSON backup file.

Duplicate entries (same ID) will cause an error.

EXAMPLES:

  hrm import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportSession, "session", "s", "", "session ID for markdown/csv")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
