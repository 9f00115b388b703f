// ABOUTME: Tests for trend aggregation and direction classification.
// ABOUTME: Covers day bucketing, morning-test fallback, and the 5% threshold.
package hrv

import (
	"testing"

	"github.com/vinprj/hrmconnect/internal/models"
)

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   string
	}{
		{"improving", []float64{10, 20}, TrendImproving},
		{"declining", []float64{20, 10}, TrendDeclining},
		{"stable small change", []float64{10, 10.2}, TrendStable},
		{"empty", nil, TrendStable},
		{"single", []float64{42}, TrendStable},
		{"longer improving", []float64{30, 32, 31, 40, 42, 45}, TrendImproving},
		{"flat", []float64{50, 50, 50, 50}, TrendStable},
		{"zero first half recovering", []float64{0, 10}, TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendDirection(tt.series); got != tt.want {
				t.Errorf("TrendDirection(%v) = %s, want %s", tt.series, got, tt.want)
			}
		})
	}
}

func TestTrendPointsBucketsByDay(t *testing.T) {
	clock := newFakeClock()

	sessions := []*models.Session{
		sessionAt(clock, 2, models.SessionStats{RMSSD: 40, SDNN: 50, AvgHR: 60}, models.AdvancedStats{StressIndex: 100}),
		sessionAt(clock, 2, models.SessionStats{RMSSD: 60, SDNN: 70, AvgHR: 64}, models.AdvancedStats{StressIndex: 200}),
		sessionAt(clock, 0, models.SessionStats{RMSSD: 50, SDNN: 55, AvgHR: 62}, models.AdvancedStats{}),
	}

	points := TrendPoints(sessions, nil, 7, clock)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}

	// Points are time-ordered; the older day first, with same-day
	// sessions averaged.
	first := points[0]
	if first.RMSSD != 50 || first.SDNN != 60 || first.StressScore != 150 || first.AvgHR != 62 {
		t.Errorf("first point = %+v, want means of the two same-day sessions", first)
	}
	if !points[0].Timestamp.Before(points[1].Timestamp) {
		t.Error("points not in ascending time order")
	}
}

func TestTrendPointsMorningTestFallback(t *testing.T) {
	clock := newFakeClock()

	tests := []*models.MorningTestResult{testAt(clock, 1, 54, 62)}
	points := TrendPoints(nil, tests, 7, clock)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}

	p := points[0]
	if p.RMSSD != 62 || p.AvgHR != 54 {
		t.Errorf("fallback point = %+v, want lying RMSSD 62 and HR 54", p)
	}
	if p.SDNN != 0 || p.StressScore != 0 {
		t.Errorf("test-only day should have zero SDNN/stress, got %+v", p)
	}
}

func TestTrendPointsWindowExcludesOldData(t *testing.T) {
	clock := newFakeClock()

	sessions := []*models.Session{
		sessionAt(clock, 30, models.SessionStats{RMSSD: 40, SDNN: 50, AvgHR: 60}, models.AdvancedStats{}),
		sessionAt(clock, 1, models.SessionStats{RMSSD: 45, SDNN: 52, AvgHR: 59}, models.AdvancedStats{}),
	}

	points := TrendPoints(sessions, nil, 7, clock)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 (old session outside window)", len(points))
	}
}

func TestTrendPointsEmpty(t *testing.T) {
	clock := newFakeClock()
	if points := TrendPoints(nil, nil, 7, clock); points != nil {
		t.Errorf("expected nil points for empty history, got %v", points)
	}
}

func TestTrendPointsRecoveryAnchoredAtNow(t *testing.T) {
	clock := newFakeClock()

	sessions := []*models.Session{
		sessionAt(clock, 3, models.SessionStats{RMSSD: 40, SDNN: 50, AvgHR: 60}, models.AdvancedStats{}),
		sessionAt(clock, 0, models.SessionStats{RMSSD: 44, SDNN: 52, AvgHR: 61}, models.AdvancedStats{}),
	}

	// Every point carries the same 1-day-window recovery score anchored
	// at call time, by design.
	points := TrendPoints(sessions, nil, 7, clock)
	want := RecoveryScore(sessions, nil, 1, clock).Score
	for i, p := range points {
		if p.RecoveryScore != want {
			t.Errorf("point %d RecoveryScore = %d, want %d", i, p.RecoveryScore, want)
		}
	}
}
