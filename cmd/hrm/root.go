// ABOUTME: Root Cobra command for hrm CLI.
// ABOUTME: Handles config loading and repository lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/config"
	"github.com/vinprj/hrmconnect/internal/storage"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "hrm",
	Short: "Heart-rate variability monitor and analyzer",
	Long: `hrm records heart-rate monitor streams and computes HRV metrics.

WHAT IT COMPUTES:

  Time domain      SDNN, RMSSD, pNN50, min/avg/max HR
  Frequency domain LF and HF band power, LF/HF ratio, respiration rate
  Stress           Baevsky stress index
  Composites       session readiness, morning readiness, recovery score

QUICK START:

  $ hrm monitor --save                  # Record a session from stdin (NDJSON)
  $ hrm monitor --replay session.ndjson # Re-analyze a captured stream
  $ hrm session list                    # See recorded sessions
  $ hrm readiness                       # Score the latest session
  $ hrm recovery --days 7               # Composite recovery score
  $ hrm trend --days 30                 # Daily RMSSD/stress trend

MORNING TEST:

  $ hrm morning record --lying-hr 52 --standing-hr 64 --lying-rmssd 48
  $ hrm morning list

INPUT FORMAT:

  The monitor reads newline-delimited JSON, one sample per line:

  {"heart_rate_bpm":62,"rr_intervals_ms":[950.5,940.2],"timestamp_ms":1748761200000}

SYNC:

  Sync sessions across devices using Charm Cloud. Data is E2E encrypted
  with your SSH key.

  $ hrm sync link      # Link device to your Charm account
  $ hrm sync push      # Push local sessions to the cloud
  $ hrm sync pull      # Pull cloud sessions missing locally

MCP INTEGRATION:

  Run 'hrm mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Sessions are stored in SQLite at ~/.local/share/hrmconnect/hrmconnect.db.
  Override the location with data_dir in ~/.config/hrmconnect/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
