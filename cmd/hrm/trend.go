// ABOUTME: CLI command for daily HRV trend points and direction.
// ABOUTME: One row per calendar day with activity in the window.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/hrv"
)

var (
	trendDays   int
	trendMetric string
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Daily HRV trend",
	Long: `Show one row per calendar day with activity in the window.

Session metrics are averaged per day. Days with only a morning test use
its lying RMSSD and HR. The direction compares the first half of the
series against the second: a shift of more than 5% is improving or
declining, otherwise stable. For stress and HR, lower is better, so the
direction is inverted.

METRICS: rmssd (default), sdnn, stress, hr

EXAMPLES:

  hrm trend                      # 30-day RMSSD trend
  hrm trend --days 90            # Longer window
  hrm trend --metric stress      # Stress index trend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(0)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		tests, err := repo.ListMorningTests(0)
		if err != nil {
			return fmt.Errorf("failed to list morning tests: %w", err)
		}

		points := hrv.TrendPoints(sessions, tests, trendDays, hrv.SystemClock)
		if len(points) == 0 {
			fmt.Printf("No data in the last %d days.\n", trendDays)
			return nil
		}

		series := make([]float64, 0, len(points))
		for _, p := range points {
			series = append(series, trendValue(p, trendMetric))
		}

		faint := color.New(color.Faint)
		for i, p := range points {
			fmt.Printf("%s  %6.1f\n", faint.Sprint(p.Date), series[i])
		}

		direction := hrv.TrendDirection(series)
		// Lower stress and lower HR are improvements.
		if trendMetric == "stress" || trendMetric == "hr" {
			switch direction {
			case hrv.TrendImproving:
				direction = hrv.TrendDeclining
			case hrv.TrendDeclining:
				direction = hrv.TrendImproving
			}
		}

		fmt.Printf("\n%s trend over %d days: ", trendMetric, trendDays)
		switch direction {
		case hrv.TrendImproving:
			color.Green(direction)
		case hrv.TrendDeclining:
			color.Red(direction)
		default:
			fmt.Println(direction)
		}

		return nil
	},
}

func trendValue(p hrv.TrendPoint, metric string) float64 {
	switch metric {
	case "sdnn":
		return p.SDNN
	case "stress":
		return p.StressScore
	case "hr":
		return p.AvgHR
	default:
		return p.RMSSD
	}
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 30, "trailing window in days")
	trendCmd.Flags().StringVar(&trendMetric, "metric", "rmssd", "metric to trend (rmssd, sdnn, stress, hr)")
	rootCmd.AddCommand(trendCmd)
}
