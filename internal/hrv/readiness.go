// ABOUTME: Readiness calculators: session readiness and morning-test readiness.
// ABOUTME: Both are weighted blends of normalized sub-scores clamped to [0,100].
package hrv

import (
	"math"

	"github.com/vinprj/hrmconnect/internal/models"
)

// Readiness is a composite 0-100 score with its sub-scores and a display
// classification.
type Readiness struct {
	Score          int     `json:"score"`
	RMSSDScore     float64 `json:"rmssd_score"`
	RestingHRScore float64 `json:"resting_hr_score"`
	SDNNScore      float64 `json:"sdnn_score"`
	Status         string  `json:"status"`
	Color          string  `json:"color"`
	Recommendation string  `json:"recommendation"`
}

// SessionReadiness scores a session's stats against a personal baseline.
// Weights: RMSSD 40%, resting HR 35% (inverse: lower is better), SDNN 25%.
// The RMSSD sub-score is gated to zero unless pNN50 shows RR data is
// genuinely present.
func SessionReadiness(stats models.SessionStats, advanced models.AdvancedStats, baseline models.Baseline) Readiness {
	var rmssdScore float64
	if advanced.PNN50 > 0 && baseline.RMSSD > 0 {
		rmssdScore = clampScore(float64(stats.RMSSD) / baseline.RMSSD * 100)
	}

	var hrScore float64
	if stats.AvgHR > 0 {
		hrScore = clampScore(baseline.RestingHR / float64(stats.AvgHR) * 100)
	}

	var sdnnScore float64
	if baseline.SDNN > 0 {
		sdnnScore = clampScore(float64(stats.SDNN) / baseline.SDNN * 100)
	}

	total := int(math.Round(0.40*rmssdScore + 0.35*hrScore + 0.25*sdnnScore))
	status, clr, rec := classifyReadiness(total)

	return Readiness{
		Score:          total,
		RMSSDScore:     rmssdScore,
		RestingHRScore: hrScore,
		SDNNScore:      sdnnScore,
		Status:         status,
		Color:          clr,
		Recommendation: rec,
	}
}

// MorningReadiness scores a two-phase orthostatic test against fixed
// reference constants. Weights: lying RMSSD 50%, orthostatic HR delta 30%,
// lying resting HR 20%.
func MorningReadiness(lyingRMSSD, lyingAvgHR, standingAvgHR float64) int {
	hrDelta := standingAvgHR - lyingAvgHR

	rmssdScore := clampScore((lyingRMSSD - 10) * 1.5)
	deltaScore := clampScore(100 - (hrDelta-5)*3)
	restingScore := clampScore((90 - lyingAvgHR) * 2.5)

	return int(math.Round(0.50*rmssdScore + 0.30*deltaScore + 0.20*restingScore))
}

func classifyReadiness(score int) (status, color, recommendation string) {
	switch {
	case score >= 80:
		return "excellent", "#4caf50", "Fully recovered. Good day for high-intensity training."
	case score >= 60:
		return "good", "#8bc34a", "Well recovered. Normal training load is fine."
	case score >= 40:
		return "fair", "#ff9800", "Partial recovery. Consider a lighter session."
	default:
		return "poor", "#f44336", "Low recovery. Prioritize rest and sleep today."
	}
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
