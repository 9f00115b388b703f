// ABOUTME: CLI command for the composite recovery score.
// ABOUTME: Blends HRV trend, HR trend, stress history, and consistency.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/hrv"
)

var recoveryDays int

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Composite recovery score",
	Long: `Compute the composite recovery score over a trailing window.

Four sub-scores, each worth up to 25 points:

  HRV trend     recent RMSSD and SDNN vs your full history
  HR trend      recent resting HR vs your full history (lower is better)
  Stress        recent Baevsky stress index (lower is better)
  Consistency   how many days in the window have measurements

Zones: 67+ good, 34-66 moderate, below 34 poor.

EXAMPLES:

  hrm recovery             # Last 7 days
  hrm recovery --days 14   # Last 14 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(0)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		tests, err := repo.ListMorningTests(0)
		if err != nil {
			return fmt.Errorf("failed to list morning tests: %w", err)
		}

		r := hrv.RecoveryScore(sessions, tests, recoveryDays, hrv.SystemClock)

		if r.Message == "No Data" {
			fmt.Printf("No data in the last %d days. Record a session with 'hrm monitor --save'.\n", recoveryDays)
			return nil
		}

		statusColor(r.Zone).Printf("Recovery: %d  %s\n\n", r.Score, r.Zone)
		fmt.Printf("  HRV trend:    %5.1f / 25\n", r.HRVScore)
		fmt.Printf("  HR trend:     %5.1f / 25\n", r.RestingHRScore)
		fmt.Printf("  Stress:       %5.1f / 25\n", r.StressScore)
		fmt.Printf("  Consistency:  %5.1f / 25\n", r.ConsistencyScore)
		if r.Message != "" {
			fmt.Printf("\n%s\n", r.Message)
		}

		return nil
	},
}

func init() {
	recoveryCmd.Flags().IntVar(&recoveryDays, "days", hrv.DefaultRecoveryDays, "trailing window in days")
	rootCmd.AddCommand(recoveryCmd)
}
