// ABOUTME: CLI command for recording and analyzing a heart-rate stream.
// ABOUTME: Reads NDJSON samples from stdin or a replay file.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/hrv"
	"github.com/vinprj/hrmconnect/internal/models"
	"github.com/vinprj/hrmconnect/internal/stream"
)

var (
	monitorReplay  string
	monitorSave    bool
	monitorNotes   string
	monitorVerbose bool
)

var monitorCmd = &cobra.Command{
	Use:     "monitor",
	Aliases: []string{"m"},
	Short:   "Record and analyze a heart-rate stream",
	Long: `Record a monitoring session from a heart-rate monitor stream.

Samples are read as newline-delimited JSON, one per line:

  {"heart_rate_bpm":62,"rr_intervals_ms":[950.5,940.2],"timestamp_ms":1748761200000}

By default samples come from stdin, so any BLE bridge that prints
notifications can be piped in:

  ble-hrm-bridge | hrm monitor --save

Use --replay to re-analyze a previously captured stream file.

The session summary shows time-domain stats (SDNN, RMSSD, pNN50),
frequency-domain analysis (LF/HF, respiration rate), and the Baevsky
stress index. Frequency analysis needs at least 60 RR intervals.

EXAMPLES:

  hrm monitor                         # Analyze stdin, print summary
  hrm monitor --save --notes "run"    # Persist the session
  hrm monitor --replay rec.ndjson     # Re-analyze a capture
  hrm monitor -v                      # Print each reading as it arrives`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := os.Stdin
		if monitorReplay != "" {
			f, err := os.Open(monitorReplay)
			if err != nil {
				return fmt.Errorf("failed to open replay file: %w", err)
			}
			defer f.Close()
			input = f
		}

		monitor := hrv.NewMonitor()
		analyzer := hrv.NewAnalyzer()
		decoder := stream.NewDecoder(input)

		var firstSample, lastSample time.Time
		count := 0
		for {
			s, err := decoder.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read stream: %w", err)
			}

			monitor.AddReading(s.HeartRateBPM, s.RRIntervalsMS)
			analyzer.AddRRIntervals(s.RRIntervalsMS)

			if s.TimestampMS > 0 {
				if firstSample.IsZero() {
					firstSample = s.Time()
				}
				lastSample = s.Time()
			}
			count++

			if monitorVerbose {
				fmt.Printf("%3d bpm  rr=%v\n", s.HeartRateBPM, s.RRIntervalsMS)
			}
		}

		if count == 0 {
			fmt.Println("No samples received.")
			return nil
		}

		stats := monitor.Stats()
		advanced := analyzer.Calculate()

		// Replayed captures carry their own timeline; prefer it over
		// wall clock.
		start, end := monitor.StartTime(), time.Now()
		if !firstSample.IsZero() && lastSample.After(firstSample) {
			start, end = firstSample, lastSample
			stats.DurationSeconds = int(end.Sub(start).Seconds())
		}

		printSessionSummary(stats, advanced, count, decoder.Skipped())

		if monitorSave {
			session := models.NewSession(start, end)
			session.HRData = monitor.HRData()
			session.RRIntervals = monitor.RRIntervals()
			session.Stats = stats
			session.Advanced = advanced
			if monitorNotes != "" {
				session.WithNotes(monitorNotes)
			}

			if err := repo.CreateSession(session); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
			color.Green("✓ Session saved (ID: %s)", session.ID.String()[:8])
		}

		return nil
	},
}

func printSessionSummary(stats models.SessionStats, advanced models.AdvancedStats, samples, skipped int) {
	faint := color.New(color.Faint)

	fmt.Println()
	color.New(color.Bold).Println("Session Summary")
	fmt.Printf("  Duration:    %s\n", formatDuration(stats.DurationSeconds))
	fmt.Printf("  Heart rate:  %d / %d / %d bpm (min/avg/max)\n", stats.MinHR, stats.AvgHR, stats.MaxHR)
	fmt.Printf("  SDNN:        %d ms\n", stats.SDNN)
	fmt.Printf("  RMSSD:       %d ms\n", stats.RMSSD)
	fmt.Printf("  pNN50:       %.1f %%\n", advanced.PNN50)
	fmt.Printf("  Stress:      %d\n", advanced.StressIndex)

	if advanced.LF > 0 || advanced.HF > 0 {
		fmt.Printf("  LF/HF:       %.2f (LF %.0f, HF %.0f ms²)\n", advanced.LFHFRatio, advanced.LF, advanced.HF)
		fmt.Printf("  Respiration: %d breaths/min\n", advanced.RespirationRate)
	} else {
		faint.Println("  Frequency analysis needs at least 60 RR intervals.")
	}

	faint.Printf("  Samples: %d", samples)
	if skipped > 0 {
		faint.Printf("  (skipped %d malformed)", skipped)
	}
	fmt.Println()
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}

func init() {
	monitorCmd.Flags().StringVar(&monitorReplay, "replay", "", "read samples from a file instead of stdin")
	monitorCmd.Flags().BoolVar(&monitorSave, "save", false, "persist the session when the stream ends")
	monitorCmd.Flags().StringVar(&monitorNotes, "notes", "", "notes to attach to the saved session")
	monitorCmd.Flags().BoolVarP(&monitorVerbose, "verbose", "v", false, "print each reading")
	rootCmd.AddCommand(monitorCmd)
}
