// ABOUTME: Tests for session and morning readiness calculators.
// ABOUTME: Covers bounds, monotonicity, the pNN50 gate, and exact blends.
package hrv

import (
	"testing"

	"github.com/vinprj/hrmconnect/internal/models"
)

func TestSessionReadinessAtBaseline(t *testing.T) {
	stats := models.SessionStats{RMSSD: 40, AvgHR: 65, SDNN: 50}
	advanced := models.AdvancedStats{PNN50: 10}

	r := SessionReadiness(stats, advanced, models.DefaultBaseline())
	if r.Score != 100 {
		t.Errorf("Score = %d, want 100 at baseline", r.Score)
	}
	if r.Status != "excellent" {
		t.Errorf("Status = %s, want excellent", r.Status)
	}
	if r.Recommendation == "" || r.Color == "" {
		t.Error("expected recommendation and color to be set")
	}
}

func TestSessionReadinessPNN50Gate(t *testing.T) {
	stats := models.SessionStats{RMSSD: 40, AvgHR: 65, SDNN: 50}

	gated := SessionReadiness(stats, models.AdvancedStats{PNN50: 0}, models.DefaultBaseline())
	if gated.RMSSDScore != 0 {
		t.Errorf("RMSSDScore = %f, want 0 when pNN50 is 0", gated.RMSSDScore)
	}
	// HR (35) and SDNN (25) sub-scores still count: 0.35*100 + 0.25*100.
	if gated.Score != 60 {
		t.Errorf("Score = %d, want 60", gated.Score)
	}
}

func TestSessionReadinessBounded(t *testing.T) {
	cases := []models.SessionStats{
		{},
		{RMSSD: 500, AvgHR: 30, SDNN: 400},
		{RMSSD: 1, AvgHR: 220, SDNN: 1},
	}
	for _, stats := range cases {
		r := SessionReadiness(stats, models.AdvancedStats{PNN50: 50}, models.DefaultBaseline())
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("Score = %d out of [0,100] for %+v", r.Score, stats)
		}
	}
}

func TestSessionReadinessMonotonicInRMSSD(t *testing.T) {
	advanced := models.AdvancedStats{PNN50: 25}
	baseline := models.DefaultBaseline()

	prev := -1
	for rmssd := 10; rmssd <= 80; rmssd += 5 {
		stats := models.SessionStats{RMSSD: rmssd, AvgHR: 70, SDNN: 45}
		score := SessionReadiness(stats, advanced, baseline).Score
		if score < prev {
			t.Errorf("score decreased from %d to %d at RMSSD %d", prev, score, rmssd)
		}
		prev = score
	}
}

func TestSessionReadinessStatuses(t *testing.T) {
	tests := []struct {
		score      int
		wantStatus string
	}{
		{85, "excellent"},
		{80, "excellent"},
		{60, "good"},
		{40, "fair"},
		{39, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		status, _, _ := classifyReadiness(tt.score)
		if status != tt.wantStatus {
			t.Errorf("classifyReadiness(%d) = %s, want %s", tt.score, status, tt.wantStatus)
		}
	}
}

func TestMorningReadiness(t *testing.T) {
	tests := []struct {
		name                                 string
		lyingRMSSD, lyingAvgHR, standingAvgHR float64
		want                                 int
	}{
		// RMSSD (50-10)*1.5 = 60, delta 100-(10-5)*3 = 85,
		// resting (90-55)*2.5 = 87.5: 30 + 25.5 + 17.5 = 73.
		{"typical", 50, 55, 65, 73},
		// Everything pegged at the caps.
		{"excellent", 90, 45, 48, 100},
		// Low RMSSD, big delta, high HR all floor at 0.
		{"exhausted", 5, 95, 140, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MorningReadiness(tt.lyingRMSSD, tt.lyingAvgHR, tt.standingAvgHR)
			if got != tt.want {
				t.Errorf("MorningReadiness(%v, %v, %v) = %d, want %d",
					tt.lyingRMSSD, tt.lyingAvgHR, tt.standingAvgHR, got, tt.want)
			}
		})
	}
}

func TestMorningReadinessBounded(t *testing.T) {
	for _, rmssd := range []float64{0, 20, 200} {
		for _, lying := range []float64{40, 70, 120} {
			for _, standing := range []float64{40, 90, 160} {
				got := MorningReadiness(rmssd, lying, standing)
				if got < 0 || got > 100 {
					t.Errorf("MorningReadiness(%v, %v, %v) = %d out of [0,100]",
						rmssd, lying, standing, got)
				}
			}
		}
	}
}
