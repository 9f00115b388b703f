// ABOUTME: MorningTestResult model for the guided orthostatic test.
// ABOUTME: Captures lying/standing HR and RMSSD plus the derived readiness score.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MorningTestResult is one completed two-phase orthostatic test.
// Immutable after creation.
type MorningTestResult struct {
	ID             uuid.UUID `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	LyingAvgHR     float64   `json:"lying_avg_hr"`
	StandingAvgHR  float64   `json:"standing_avg_hr"`
	HRDelta        float64   `json:"hr_delta"`
	LyingRMSSD     float64   `json:"lying_rmssd"`
	StandingRMSSD  float64   `json:"standing_rmssd"`
	ReadinessScore int       `json:"readiness_score"`
}

// NewMorningTestResult creates a test result stamped at the current time.
// HRDelta is derived from the two HR phases.
func NewMorningTestResult(lyingAvgHR, standingAvgHR, lyingRMSSD, standingRMSSD float64, readiness int) *MorningTestResult {
	return &MorningTestResult{
		ID:             uuid.New(),
		Timestamp:      time.Now(),
		LyingAvgHR:     lyingAvgHR,
		StandingAvgHR:  standingAvgHR,
		HRDelta:        standingAvgHR - lyingAvgHR,
		LyingRMSSD:     lyingRMSSD,
		StandingRMSSD:  standingRMSSD,
		ReadinessScore: readiness,
	}
}

// WithTimestamp sets a custom test timestamp.
func (m *MorningTestResult) WithTimestamp(t time.Time) *MorningTestResult {
	m.Timestamp = t
	return m
}
