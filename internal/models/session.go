// ABOUTME: Session model plus derived statistics structs for HRV monitoring.
// ABOUTME: A Session is immutable after save; stats are computed once at save time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HRSample is one instantaneous heart-rate reading with its receipt time.
type HRSample struct {
	BPM       int       `json:"bpm"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionStats holds the time-domain statistics for a monitoring session.
// All values are integers: HR in BPM, SDNN/RMSSD in milliseconds.
type SessionStats struct {
	MinHR           int `json:"min_hr"`
	MaxHR           int `json:"max_hr"`
	AvgHR           int `json:"avg_hr"`
	SDNN            int `json:"sdnn"`
	RMSSD           int `json:"rmssd"`
	DurationSeconds int `json:"duration_seconds"`
}

// AdvancedStats holds the frequency-domain and distribution metrics.
// LF/HF are band powers in ms²; RespirationRate is breaths per minute.
type AdvancedStats struct {
	PNN50           float64 `json:"pnn50"`
	StressIndex     int     `json:"stress_index"`
	LF              float64 `json:"lf"`
	HF              float64 `json:"hf"`
	LFHFRatio       float64 `json:"lf_hf_ratio"`
	RespirationRate int     `json:"respiration_rate"`
}

// Session is a completed monitoring run with its raw series and computed stats.
type Session struct {
	ID          uuid.UUID     `json:"id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	HRData      []HRSample    `json:"hr_data"`
	RRIntervals []float64     `json:"rr_intervals"`
	Stats       SessionStats  `json:"stats"`
	Advanced    AdvancedStats `json:"advanced_stats"`
	Notes       *string       `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewSession creates a Session with a generated UUID and creation timestamp.
func NewSession(start, end time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now(),
	}
}

// WithNotes sets notes on the session.
func (s *Session) WithNotes(notes string) *Session {
	s.Notes = &notes
	return s
}
