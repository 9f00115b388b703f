// ABOUTME: CLI commands for the morning orthostatic test.
// ABOUTME: Records lying/standing phases and the derived readiness score.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/hrv"
	"github.com/vinprj/hrmconnect/internal/models"
)

var (
	morningLyingHR       float64
	morningStandingHR    float64
	morningLyingRMSSD    float64
	morningStandingRMSSD float64
	morningListLimit     int
)

var morningCmd = &cobra.Command{
	Use:   "morning",
	Short: "Morning orthostatic test",
	Long: `Record and review morning orthostatic tests.

The test has two phases: a rest phase lying down, then a phase standing
up. The heart-rate jump between the phases (orthostatic response) plus
the lying RMSSD and lying HR combine into a 0-100 readiness score:

  RMSSD component     50%   higher lying RMSSD is better
  HR delta component  30%   smaller lying-to-standing jump is better
  Resting HR          20%   lower lying HR is better`,
}

var morningRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a morning test result",
	Long: `Record a completed morning test from its phase measurements.

Measure each phase with 'hrm monitor' (about a minute lying down, then
a minute standing), then record the results:

  hrm morning record --lying-hr 52 --standing-hr 64 --lying-rmssd 48`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if morningLyingHR <= 0 || morningStandingHR <= 0 {
			return fmt.Errorf("lying and standing HR must be positive")
		}

		readiness := hrv.MorningReadiness(morningLyingRMSSD, morningLyingHR, morningStandingHR)
		m := models.NewMorningTestResult(morningLyingHR, morningStandingHR,
			morningLyingRMSSD, morningStandingRMSSD, readiness)

		if err := repo.CreateMorningTest(m); err != nil {
			return fmt.Errorf("failed to record morning test: %w", err)
		}

		color.Green("✓ Morning test recorded (ID: %s)", m.ID.String()[:8])
		fmt.Printf("  HR delta:  %.0f bpm (%.0f → %.0f)\n", m.HRDelta, m.LyingAvgHR, m.StandingAvgHR)
		fmt.Printf("  Readiness: %d\n", readiness)
		return nil
	},
}

var morningListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List morning test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		tests, err := repo.ListMorningTests(morningListLimit)
		if err != nil {
			return fmt.Errorf("failed to list morning tests: %w", err)
		}

		if len(tests) == 0 {
			fmt.Println("No morning tests found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range tests {
			fmt.Printf("%s %s lying %3.0f bpm  delta %+3.0f  rmssd %3.0f  readiness %3d\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.Timestamp.Format("2006-01-02 15:04")),
				m.LyingAvgHR,
				m.HRDelta,
				m.LyingRMSSD,
				m.ReadinessScore)
		}

		return nil
	},
}

var morningDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a morning test",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteMorningTest(args[0]); err != nil {
			return fmt.Errorf("failed to delete morning test: %w", err)
		}
		color.Green("✓ Deleted morning test: %s", args[0])
		return nil
	},
}

func init() {
	morningRecordCmd.Flags().Float64Var(&morningLyingHR, "lying-hr", 0, "average HR lying down (bpm)")
	morningRecordCmd.Flags().Float64Var(&morningStandingHR, "standing-hr", 0, "average HR standing (bpm)")
	morningRecordCmd.Flags().Float64Var(&morningLyingRMSSD, "lying-rmssd", 0, "RMSSD lying down (ms)")
	morningRecordCmd.Flags().Float64Var(&morningStandingRMSSD, "standing-rmssd", 0, "RMSSD standing (ms)")
	_ = morningRecordCmd.MarkFlagRequired("lying-hr")
	_ = morningRecordCmd.MarkFlagRequired("standing-hr")

	morningListCmd.Flags().IntVarP(&morningListLimit, "limit", "n", 20, "max number of results")

	morningCmd.AddCommand(morningRecordCmd)
	morningCmd.AddCommand(morningListCmd)
	morningCmd.AddCommand(morningDeleteCmd)
	rootCmd.AddCommand(morningCmd)
}
