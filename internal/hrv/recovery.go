// ABOUTME: Multi-day recovery score over session and morning-test history.
// ABOUTME: Four independently capped 0-25 sub-scores summed to 0-100 with zones.
package hrv

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vinprj/hrmconnect/internal/models"
)

// Recovery is the multi-day recovery composite with its sub-scores.
type Recovery struct {
	Score            int     `json:"score"`
	HRVScore         float64 `json:"hrv_score"`
	RestingHRScore   float64 `json:"resting_hr_score"`
	StressScore      float64 `json:"stress_score"`
	ConsistencyScore float64 `json:"consistency_score"`
	Zone             string  `json:"zone"`
	Message          string  `json:"message"`
}

// DefaultRecoveryDays is the trailing window used when none is given.
const DefaultRecoveryDays = 7

// RecoveryScore blends HRV trend, resting-HR trend, stress history and
// measurement consistency over a trailing window of days against full
// history. Returns the "No Data" sentinel when the window holds neither
// sessions nor tests.
func RecoveryScore(sessions []*models.Session, tests []*models.MorningTestResult, days int, clock Clock) Recovery {
	if days <= 0 {
		days = DefaultRecoveryDays
	}
	cutoff := clock.Now().AddDate(0, 0, -days)

	var recentSessions []*models.Session
	for _, s := range sessions {
		if !s.StartTime.Before(cutoff) {
			recentSessions = append(recentSessions, s)
		}
	}
	var recentTests []*models.MorningTestResult
	for _, t := range tests {
		if !t.Timestamp.Before(cutoff) {
			recentTests = append(recentTests, t)
		}
	}

	if len(recentSessions) == 0 && len(recentTests) == 0 {
		return Recovery{Zone: "poor", Message: "No Data"}
	}

	hrvScore := hrvBaselineScore(sessions, tests, recentSessions, recentTests)
	restScore := restingHRScore(sessions, tests, recentSessions, recentTests)
	stressScore := stressHistoryScore(recentSessions)
	consistency := consistencyScore(recentSessions, recentTests, days)

	total := int(math.Round(hrvScore + restScore + stressScore + consistency))
	return Recovery{
		Score:            total,
		HRVScore:         hrvScore,
		RestingHRScore:   restScore,
		StressScore:      stressScore,
		ConsistencyScore: consistency,
		Zone:             recoveryZone(total),
	}
}

func recoveryZone(score int) string {
	switch {
	case score >= 67:
		return "good"
	case score >= 34:
		return "moderate"
	default:
		return "poor"
	}
}

// hrvBaselineScore compares the recent window's RMSSD and SDNN means to
// the all-time means. Ratios are capped at 1.5 so one runaway metric
// cannot mask the other, then blended 60/40 and scaled to 25.
func hrvBaselineScore(sessions []*models.Session, tests []*models.MorningTestResult, recentSessions []*models.Session, recentTests []*models.MorningTestResult) float64 {
	recentRMSSD := stat.Mean(rmssdValues(recentSessions, recentTests), nil)
	allRMSSD := stat.Mean(rmssdValues(sessions, tests), nil)
	recentSDNN := stat.Mean(sdnnValues(recentSessions), nil)
	allSDNN := stat.Mean(sdnnValues(sessions), nil)

	rmssdRatio := math.Min(baselineRatio(recentRMSSD, allRMSSD), 1.5)
	sdnnRatio := math.Min(baselineRatio(recentSDNN, allSDNN), 1.5)

	return math.Min(25, (0.6*rmssdRatio+0.4*sdnnRatio)*25)
}

// restingHRScore rewards a recent mean HR at or below the all-time mean.
func restingHRScore(sessions []*models.Session, tests []*models.MorningTestResult, recentSessions []*models.Session, recentTests []*models.MorningTestResult) float64 {
	recentHR := stat.Mean(hrValues(recentSessions, recentTests), nil)
	allHR := stat.Mean(hrValues(sessions, tests), nil)

	ratio := math.Min(baselineRatio(allHR, recentHR), 1.3)
	return math.Min(25, ratio*25)
}

// stressHistoryScore maps the mean recent stress index onto 0-25, with a
// neutral default of 20 when no session carried stress data.
func stressHistoryScore(recentSessions []*models.Session) float64 {
	var values []float64
	for _, s := range recentSessions {
		if s.Advanced.StressIndex > 0 {
			values = append(values, float64(s.Advanced.StressIndex))
		}
	}
	if len(values) == 0 {
		return 20
	}
	mean := stat.Mean(values, nil)
	return 25 * (1 - math.Min(mean/400, 1))
}

// consistencyScore counts distinct calendar days with any activity in the
// window, normalized against min(days, 7).
func consistencyScore(recentSessions []*models.Session, recentTests []*models.MorningTestResult, days int) float64 {
	seen := make(map[string]bool)
	for _, s := range recentSessions {
		seen[dayKey(s.StartTime)] = true
	}
	for _, t := range recentTests {
		seen[dayKey(t.Timestamp)] = true
	}

	norm := days
	if norm > 7 {
		norm = 7
	}
	if norm == 0 {
		return 0
	}
	return math.Min(25, float64(len(seen))/float64(norm)*25)
}

// baselineRatio is numerator/denominator with degenerate inputs treated
// as neutral (ratio 1) rather than dividing by zero.
func baselineRatio(num, den float64) float64 {
	if den <= 0 || math.IsNaN(num) || math.IsNaN(den) {
		return 1
	}
	return num / den
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func rmssdValues(sessions []*models.Session, tests []*models.MorningTestResult) []float64 {
	var values []float64
	for _, s := range sessions {
		if s.Stats.RMSSD > 0 {
			values = append(values, float64(s.Stats.RMSSD))
		}
	}
	for _, t := range tests {
		if t.LyingRMSSD > 0 {
			values = append(values, t.LyingRMSSD)
		}
	}
	return values
}

func sdnnValues(sessions []*models.Session) []float64 {
	var values []float64
	for _, s := range sessions {
		if s.Stats.SDNN > 0 {
			values = append(values, float64(s.Stats.SDNN))
		}
	}
	return values
}

func hrValues(sessions []*models.Session, tests []*models.MorningTestResult) []float64 {
	var values []float64
	for _, s := range sessions {
		if s.Stats.AvgHR > 0 {
			values = append(values, float64(s.Stats.AvgHR))
		}
	}
	for _, t := range tests {
		if t.LyingAvgHR > 0 {
			values = append(values, t.LyingAvgHR)
		}
	}
	return values
}
