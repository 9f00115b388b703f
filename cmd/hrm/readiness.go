// ABOUTME: CLI command for scoring session readiness against the baseline.
// ABOUTME: Defaults to the most recent session.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/hrv"
	"github.com/vinprj/hrmconnect/internal/models"
)

var readinessSessionID string

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score a session against your baseline",
	Long: `Score a session's readiness against your personal baseline.

The score blends three sub-scores:

  RMSSD       40%   against baseline RMSSD (needs RR interval data)
  Resting HR  35%   inverse: lower than baseline scores higher
  SDNN        25%   against baseline SDNN

The baseline is the average of your last 30 sessions, or population
defaults (RMSSD 40, HR 65, SDNN 50) with no history. Override any
component with baseline_rmssd, baseline_resting_hr, or baseline_sdnn
in the config file.

EXAMPLES:

  hrm readiness              # Score the latest session
  hrm readiness -s a1b2c3d4  # Score a specific session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var session *models.Session
		var err error

		if readinessSessionID != "" {
			session, err = repo.GetSession(readinessSessionID)
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}
		} else {
			sessions, err := repo.ListSessions(1)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found. Record one with 'hrm monitor --save'.")
				return nil
			}
			session = sessions[0]
		}

		baseline, err := scoringBaseline()
		if err != nil {
			return err
		}

		r := hrv.SessionReadiness(session.Stats, session.Advanced, baseline)

		faint := color.New(color.Faint)
		faint.Printf("Session %s (%s)\n\n", session.ID.String()[:8], session.StartTime.Format("2006-01-02 15:04"))

		statusColor(r.Status).Printf("Readiness: %d  %s\n\n", r.Score, r.Status)
		fmt.Printf("  RMSSD:      %5.1f  (session %d ms vs baseline %.0f ms)\n", r.RMSSDScore, session.Stats.RMSSD, baseline.RMSSD)
		fmt.Printf("  Resting HR: %5.1f  (session %d bpm vs baseline %.0f bpm)\n", r.RestingHRScore, session.Stats.AvgHR, baseline.RestingHR)
		fmt.Printf("  SDNN:       %5.1f  (session %d ms vs baseline %.0f ms)\n", r.SDNNScore, session.Stats.SDNN, baseline.SDNN)
		fmt.Printf("\n%s\n", r.Recommendation)

		return nil
	},
}

// scoringBaseline derives the baseline from recent history and applies
// config overrides.
func scoringBaseline() (models.Baseline, error) {
	sessions, err := repo.ListSessions(30)
	if err != nil {
		return models.Baseline{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	return cfg.Baseline(models.BaselineFromSessions(sessions)), nil
}

// statusColor maps a readiness status or recovery zone to a print color.
func statusColor(status string) *color.Color {
	switch status {
	case "excellent", "good":
		return color.New(color.FgGreen)
	case "fair", "moderate":
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func init() {
	readinessCmd.Flags().StringVarP(&readinessSessionID, "session", "s", "", "session ID or prefix (default: latest)")
	rootCmd.AddCommand(readinessCmd)
}
