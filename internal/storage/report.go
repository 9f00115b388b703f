// ABOUTME: Single-session report formatting as Markdown or CSV.
// ABOUTME: Pure transformation over already-computed session fields.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/vinprj/hrmconnect/internal/models"
)

// SessionReportMarkdown renders one session as a Markdown summary with a
// statistics table.
func SessionReportMarkdown(s *models.Session) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# HRV Session - %s\n\n", s.StartTime.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Session ID: %s\n", s.ID.String()[:8]))
	sb.WriteString(fmt.Sprintf("Start: %s\n", s.StartTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("End: %s\n\n", s.EndTime.Format(time.RFC3339)))

	if s.Notes != nil && *s.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes: %s\n\n", *s.Notes))
	}

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", formatDuration(s.Stats.DurationSeconds)))
	sb.WriteString(fmt.Sprintf("| HR (min/avg/max) | %d / %d / %d bpm |\n", s.Stats.MinHR, s.Stats.AvgHR, s.Stats.MaxHR))
	sb.WriteString(fmt.Sprintf("| SDNN | %d ms |\n", s.Stats.SDNN))
	sb.WriteString(fmt.Sprintf("| RMSSD | %d ms |\n", s.Stats.RMSSD))
	sb.WriteString(fmt.Sprintf("| pNN50 | %.1f %% |\n", s.Advanced.PNN50))
	sb.WriteString(fmt.Sprintf("| Stress Index | %d |\n", s.Advanced.StressIndex))
	sb.WriteString(fmt.Sprintf("| LF Power | %.1f ms² |\n", s.Advanced.LF))
	sb.WriteString(fmt.Sprintf("| HF Power | %.1f ms² |\n", s.Advanced.HF))
	sb.WriteString(fmt.Sprintf("| LF/HF | %.2f |\n", s.Advanced.LFHFRatio))
	sb.WriteString(fmt.Sprintf("| Respiration | %d breaths/min |\n", s.Advanced.RespirationRate))
	sb.WriteString(fmt.Sprintf("\nRR intervals recorded: %d\n", len(s.RRIntervals)))

	return sb.String()
}

// SessionReportCSV renders one session as CSV: a summary block followed
// by the raw RR interval series.
func SessionReportCSV(s *models.Session) string {
	var sb strings.Builder

	sb.WriteString("metric,value\n")
	sb.WriteString(fmt.Sprintf("session_id,%s\n", s.ID.String()))
	sb.WriteString(fmt.Sprintf("start_time,%s\n", s.StartTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("end_time,%s\n", s.EndTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("duration_seconds,%d\n", s.Stats.DurationSeconds))
	sb.WriteString(fmt.Sprintf("min_hr,%d\n", s.Stats.MinHR))
	sb.WriteString(fmt.Sprintf("avg_hr,%d\n", s.Stats.AvgHR))
	sb.WriteString(fmt.Sprintf("max_hr,%d\n", s.Stats.MaxHR))
	sb.WriteString(fmt.Sprintf("sdnn_ms,%d\n", s.Stats.SDNN))
	sb.WriteString(fmt.Sprintf("rmssd_ms,%d\n", s.Stats.RMSSD))
	sb.WriteString(fmt.Sprintf("pnn50_pct,%.2f\n", s.Advanced.PNN50))
	sb.WriteString(fmt.Sprintf("stress_index,%d\n", s.Advanced.StressIndex))
	sb.WriteString(fmt.Sprintf("lf_power,%.2f\n", s.Advanced.LF))
	sb.WriteString(fmt.Sprintf("hf_power,%.2f\n", s.Advanced.HF))
	sb.WriteString(fmt.Sprintf("lf_hf_ratio,%.2f\n", s.Advanced.LFHFRatio))
	sb.WriteString(fmt.Sprintf("respiration_rate,%d\n", s.Advanced.RespirationRate))

	sb.WriteString("\nindex,rr_interval_ms\n")
	for i, rr := range s.RRIntervals {
		sb.WriteString(fmt.Sprintf("%d,%.1f\n", i, rr))
	}

	return sb.String()
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}
