// ABOUTME: Tests for the running statistics engine.
// ABOUTME: Covers SDNN/RMSSD edge cases, rounding, duration, and reset.
package hrv

import (
	"math"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock shared by the hrv tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSDNN(t *testing.T) {
	tests := []struct {
		name string
		rr   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{800}, 0},
		{"known values", []float64{800, 900, 1000}, math.Sqrt(20000.0 / 3)},
		{"constant", []float64{800, 800, 800, 800}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SDNN(tt.rr)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("SDNN(%v) = %f, want %f", tt.rr, got, tt.want)
			}
		})
	}
}

func TestRMSSD(t *testing.T) {
	tests := []struct {
		name string
		rr   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{800}, 0},
		{"equal steps", []float64{800, 850, 900}, 50},
		{"constant", []float64{900, 900, 900}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMSSD(tt.rr)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("RMSSD(%v) = %f, want %f", tt.rr, got, tt.want)
			}
		})
	}
}

func TestMonitorStats(t *testing.T) {
	clock := newFakeClock()
	m := NewMonitorWithClock(clock)

	m.AddReading(62, []float64{800, 900, 1000})
	m.AddReading(70, nil)
	m.AddReading(58, nil)

	stats := m.Stats()
	if stats.MinHR != 58 {
		t.Errorf("MinHR = %d, want 58", stats.MinHR)
	}
	if stats.MaxHR != 70 {
		t.Errorf("MaxHR = %d, want 70", stats.MaxHR)
	}
	// Mean of 62, 70, 58 is 63.33, rounds to 63.
	if stats.AvgHR != 63 {
		t.Errorf("AvgHR = %d, want 63", stats.AvgHR)
	}
	if stats.SDNN != 82 {
		t.Errorf("SDNN = %d, want 82", stats.SDNN)
	}
}

func TestMonitorAvgHRRoundsFromFloatMean(t *testing.T) {
	m := NewMonitorWithClock(newFakeClock())
	m.AddReading(60, nil)
	m.AddReading(61, nil)

	if got := m.Stats().AvgHR; got != 61 {
		t.Errorf("AvgHR = %d, want 61 (60.5 rounds up)", got)
	}
}

func TestMonitorDurationFromWallClock(t *testing.T) {
	clock := newFakeClock()
	m := NewMonitorWithClock(clock)

	// Duration is elapsed wall-clock since the first reading, independent
	// of the summed RR intervals.
	m.AddReading(60, []float64{1000})
	clock.Advance(90 * time.Second)
	m.AddReading(61, []float64{1000})

	if got := m.Stats().DurationSeconds; got != 90 {
		t.Errorf("DurationSeconds = %d, want 90", got)
	}
}

func TestMonitorEmptyStats(t *testing.T) {
	m := NewMonitorWithClock(newFakeClock())
	stats := m.Stats()

	if stats.MinHR != 0 || stats.MaxHR != 0 || stats.AvgHR != 0 {
		t.Errorf("expected zero HR stats, got %+v", stats)
	}
	if stats.SDNN != 0 || stats.RMSSD != 0 {
		t.Errorf("expected zero HRV stats, got %+v", stats)
	}
	if stats.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0", stats.DurationSeconds)
	}
}

func TestMonitorReset(t *testing.T) {
	clock := newFakeClock()
	m := NewMonitorWithClock(clock)

	m.AddReading(60, []float64{800, 900})
	clock.Advance(30 * time.Second)
	m.Reset()

	stats := m.Stats()
	if stats.AvgHR != 0 || stats.SDNN != 0 || stats.DurationSeconds != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", stats)
	}

	// Duration clock restarts from the next reading.
	clock.Advance(time.Hour)
	m.AddReading(65, nil)
	clock.Advance(10 * time.Second)
	if got := m.Stats().DurationSeconds; got != 10 {
		t.Errorf("DurationSeconds after reset = %d, want 10", got)
	}
}

func TestMonitorDropsInvalidInput(t *testing.T) {
	m := NewMonitorWithClock(newFakeClock())
	m.AddReading(0, []float64{-100, 0, 800})
	m.AddReading(60, nil)

	if got := len(m.RRIntervals()); got != 1 {
		t.Errorf("kept %d RR intervals, want 1", got)
	}
	if got := m.Stats().MinHR; got != 60 {
		t.Errorf("MinHR = %d, want 60", got)
	}
}

func TestMonitorStatsIdempotent(t *testing.T) {
	m := NewMonitorWithClock(newFakeClock())
	m.AddReading(60, []float64{800, 850, 900})

	first := m.Stats()
	second := m.Stats()
	if first != second {
		t.Errorf("Stats not idempotent: %+v vs %+v", first, second)
	}
}
