// ABOUTME: Running statistics engine for a live monitoring session.
// ABOUTME: Accumulates HR readings and RR intervals, computes stats on demand.
package hrv

import (
	"math"
	"time"

	"github.com/vinprj/hrmconnect/internal/models"
)

// Monitor accumulates heart-rate readings and RR intervals for the life of
// a session. Buffers grow without bound; a session is bounded in practice
// by user-initiated start/stop, not by this engine.
//
// Monitor is not safe for concurrent use. The session layer owns it and
// serializes all calls.
type Monitor struct {
	clock       Clock
	hrData      []models.HRSample
	rrIntervals []float64
	startTime   time.Time
}

// NewMonitor creates a Monitor using the system clock.
func NewMonitor() *Monitor {
	return NewMonitorWithClock(SystemClock)
}

// NewMonitorWithClock creates a Monitor with an injected clock.
func NewMonitorWithClock(clock Clock) *Monitor {
	return &Monitor{clock: clock}
}

// AddReading records one HR reading and any RR intervals delivered with it.
// The first reading starts the session duration clock. Non-positive BPM and
// RR values are dropped at the boundary.
func (m *Monitor) AddReading(bpm int, rrIntervals []float64) {
	now := m.clock.Now()
	if m.startTime.IsZero() {
		m.startTime = now
	}
	if bpm > 0 {
		m.hrData = append(m.hrData, models.HRSample{BPM: bpm, Timestamp: now})
	}
	for _, rr := range rrIntervals {
		if rr > 0 {
			m.rrIntervals = append(m.rrIntervals, rr)
		}
	}
}

// Reset discards all accumulated data. The duration clock restarts on the
// next reading.
func (m *Monitor) Reset() {
	m.hrData = nil
	m.rrIntervals = nil
	m.startTime = time.Time{}
}

// Stats computes the session statistics snapshot. Pure read: empty or
// under-populated series yield zero values, never an error.
func (m *Monitor) Stats() models.SessionStats {
	var stats models.SessionStats

	if len(m.hrData) > 0 {
		minHR, maxHR := m.hrData[0].BPM, m.hrData[0].BPM
		sum := 0
		for _, s := range m.hrData {
			if s.BPM < minHR {
				minHR = s.BPM
			}
			if s.BPM > maxHR {
				maxHR = s.BPM
			}
			sum += s.BPM
		}
		stats.MinHR = minHR
		stats.MaxHR = maxHR
		stats.AvgHR = int(math.Round(float64(sum) / float64(len(m.hrData))))
	}

	stats.SDNN = int(math.Round(SDNN(m.rrIntervals)))
	stats.RMSSD = int(math.Round(RMSSD(m.rrIntervals)))

	// Duration is wall-clock elapsed time since the first reading, not the
	// sum of RR intervals.
	if !m.startTime.IsZero() {
		stats.DurationSeconds = int(m.clock.Now().Sub(m.startTime).Seconds())
	}

	return stats
}

// HRData returns a copy of the accumulated HR samples for persistence.
func (m *Monitor) HRData() []models.HRSample {
	out := make([]models.HRSample, len(m.hrData))
	copy(out, m.hrData)
	return out
}

// RRIntervals returns a copy of the accumulated RR series.
func (m *Monitor) RRIntervals() []float64 {
	out := make([]float64, len(m.rrIntervals))
	copy(out, m.rrIntervals)
	return out
}

// StartTime returns when the first reading arrived, zero if none has.
func (m *Monitor) StartTime() time.Time {
	return m.startTime
}

// SDNN is the population standard deviation of the RR series in
// milliseconds. Zero for fewer than 2 intervals.
func SDNN(rr []float64) float64 {
	if len(rr) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range rr {
		mean += v
	}
	mean /= float64(len(rr))

	variance := 0.0
	for _, v := range rr {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(rr))
	return math.Sqrt(variance)
}

// RMSSD is the root-mean-square of successive RR differences in
// milliseconds. Zero for fewer than 2 intervals.
func RMSSD(rr []float64) float64 {
	if len(rr) < 2 {
		return 0
	}
	sumSq := 0.0
	for i := 1; i < len(rr); i++ {
		d := rr[i] - rr[i-1]
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(rr)-1))
}
