// ABOUTME: Tests for baseline derivation from session history.
// ABOUTME: Covers the population default and averaging.
package models

import (
	"testing"
	"time"
)

func TestBaselineFromSessionsEmpty(t *testing.T) {
	got := BaselineFromSessions(nil)
	want := Baseline{RMSSD: 40, RestingHR: 65, SDNN: 50}
	if got != want {
		t.Errorf("BaselineFromSessions(nil) = %+v, want %+v", got, want)
	}
}

func TestBaselineFromSessionsAverages(t *testing.T) {
	now := time.Now()
	s1 := NewSession(now, now.Add(time.Minute))
	s1.Stats = SessionStats{RMSSD: 40, AvgHR: 60, SDNN: 50}
	s2 := NewSession(now, now.Add(time.Minute))
	s2.Stats = SessionStats{RMSSD: 60, AvgHR: 70, SDNN: 70}

	got := BaselineFromSessions([]*Session{s1, s2})
	want := Baseline{RMSSD: 50, RestingHR: 65, SDNN: 60}
	if got != want {
		t.Errorf("BaselineFromSessions() = %+v, want %+v", got, want)
	}
}

func TestNewMorningTestResultDerivesDelta(t *testing.T) {
	m := NewMorningTestResult(52, 64, 48, 36, 75)
	if m.HRDelta != 12 {
		t.Errorf("HRDelta = %v, want 12", m.HRDelta)
	}
	if m.ID.String() == "" {
		t.Error("Expected generated ID")
	}
}
