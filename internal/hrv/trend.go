// ABOUTME: Trend aggregator: per-day metric points and direction classification.
// ABOUTME: Buckets sessions and morning tests by calendar date for charting.
package hrv

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vinprj/hrmconnect/internal/models"
)

// TrendPoint is one calendar day's aggregated metrics.
type TrendPoint struct {
	Date          string    `json:"date"`
	Timestamp     time.Time `json:"timestamp"`
	RMSSD         float64   `json:"rmssd"`
	SDNN          float64   `json:"sdnn"`
	StressScore   float64   `json:"stress_score"`
	RecoveryScore int       `json:"recovery_score"`
	AvgHR         float64   `json:"avg_hr"`
}

// Trend direction classifications.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// TrendPoints produces one time-ordered point per distinct calendar date
// with activity inside the trailing window. Session metrics are averaged
// per day; days with only a morning test fall back to its lying RMSSD and
// HR. The per-point recovery score uses a 1-day window anchored at
// call-time now, so every point carries the same value.
func TrendPoints(sessions []*models.Session, tests []*models.MorningTestResult, days int, clock Clock) []TrendPoint {
	if days <= 0 {
		days = DefaultRecoveryDays
	}
	cutoff := clock.Now().AddDate(0, 0, -days)

	byDay := make(map[string]*dayBucket)
	bucket := func(key string, t time.Time) *dayBucket {
		b, ok := byDay[key]
		if !ok {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
			b = &dayBucket{day: day}
			byDay[key] = b
		}
		return b
	}

	for _, s := range sessions {
		if s.StartTime.Before(cutoff) {
			continue
		}
		b := bucket(dayKey(s.StartTime), s.StartTime)
		b.rmssd = append(b.rmssd, float64(s.Stats.RMSSD))
		b.sdnn = append(b.sdnn, float64(s.Stats.SDNN))
		b.stress = append(b.stress, float64(s.Advanced.StressIndex))
		b.avgHR = append(b.avgHR, float64(s.Stats.AvgHR))
	}
	for _, t := range tests {
		if t.Timestamp.Before(cutoff) {
			continue
		}
		b := bucket(dayKey(t.Timestamp), t.Timestamp)
		b.testRMSSD = append(b.testRMSSD, t.LyingRMSSD)
		b.testHR = append(b.testHR, t.LyingAvgHR)
	}

	if len(byDay) == 0 {
		return nil
	}

	dayRecovery := RecoveryScore(sessions, tests, 1, clock).Score

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		b := byDay[k]
		p := TrendPoint{
			Date:          k,
			Timestamp:     b.day,
			RecoveryScore: dayRecovery,
		}
		if len(b.rmssd) > 0 {
			p.RMSSD = stat.Mean(b.rmssd, nil)
			p.SDNN = stat.Mean(b.sdnn, nil)
			p.StressScore = stat.Mean(b.stress, nil)
			p.AvgHR = stat.Mean(b.avgHR, nil)
		} else {
			p.RMSSD = stat.Mean(b.testRMSSD, nil)
			p.AvgHR = stat.Mean(b.testHR, nil)
		}
		points = append(points, p)
	}
	return points
}

type dayBucket struct {
	day       time.Time
	rmssd     []float64
	sdnn      []float64
	stress    []float64
	avgHR     []float64
	testRMSSD []float64
	testHR    []float64
}

// TrendDirection splits the series at its midpoint and compares the means
// of the two halves: a relative change above 5% is improving, below -5%
// declining, otherwise stable.
func TrendDirection(series []float64) string {
	if len(series) < 2 {
		return TrendStable
	}

	mid := len(series) / 2
	firstMean := stat.Mean(series[:mid], nil)
	secondMean := stat.Mean(series[mid:], nil)

	if firstMean == 0 {
		if secondMean > 0 {
			return TrendImproving
		}
		return TrendStable
	}

	change := (secondMean - firstMean) / firstMean
	switch {
	case change > 0.05:
		return TrendImproving
	case change < -0.05:
		return TrendDeclining
	default:
		return TrendStable
	}
}
