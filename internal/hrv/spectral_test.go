// ABOUTME: Tests for the spectral analysis engine.
// ABOUTME: Covers the 60-interval floor, throttle staleness, and respiration.
package hrv

import (
	"math"
	"testing"
	"time"
)

// breathingRR builds n RR intervals around 1000 ms modulated by a
// sinusoid at the given breathing frequency, mimicking respiratory sinus
// arrhythmia.
func breathingRR(n int, freqHz float64) []float64 {
	rr := make([]float64, n)
	elapsed := 0.0
	for i := range rr {
		rr[i] = 1000 + 100*math.Sin(2*math.Pi*freqHz*elapsed)
		elapsed += rr[i] / 1000
	}
	return rr
}

func TestCalculateBelowSpectralFloor(t *testing.T) {
	a := NewAnalyzerWithClock(newFakeClock())

	rr := make([]float64, 59)
	for i := range rr {
		rr[i] = 800 + float64(i%7)*20
	}
	a.AddRRIntervals(rr)

	adv := a.Calculate()
	if adv.LF != 0 || adv.HF != 0 || adv.LFHFRatio != 0 || adv.RespirationRate != 0 {
		t.Errorf("expected zero spectral fields below 60 intervals, got %+v", adv)
	}
	// pNN50 is still computed from the buffer.
	if adv.PNN50 == 0 {
		t.Error("expected non-zero pNN50 for varying series")
	}
}

func TestCalculateRespirationRate(t *testing.T) {
	a := NewAnalyzerWithClock(newFakeClock())

	// 0.25 Hz breathing = 15 breaths per minute.
	a.AddRRIntervals(breathingRR(120, 0.25))

	adv := a.Calculate()
	if adv.HF == 0 {
		t.Fatal("expected HF power for 0.25 Hz modulation")
	}
	if adv.RespirationRate < 13 || adv.RespirationRate > 17 {
		t.Errorf("RespirationRate = %d, want ~15", adv.RespirationRate)
	}
}

func TestCalculateLFDominantSignal(t *testing.T) {
	a := NewAnalyzerWithClock(newFakeClock())

	// 0.1 Hz modulation sits in the middle of the LF band.
	a.AddRRIntervals(breathingRR(180, 0.1))

	adv := a.Calculate()
	if adv.LF == 0 {
		t.Fatal("expected LF power for 0.1 Hz modulation")
	}
	if adv.LF <= adv.HF {
		t.Errorf("LF (%f) should dominate HF (%f) for 0.1 Hz modulation", adv.LF, adv.HF)
	}
	if adv.HF > 0 {
		want := math.Round(adv.LF/adv.HF*100) / 100
		if adv.LFHFRatio != want {
			t.Errorf("LFHFRatio = %f, want %f", adv.LFHFRatio, want)
		}
	}
}

func TestCalculateThrottleServesCachedSpectral(t *testing.T) {
	clock := newFakeClock()
	a := NewAnalyzerWithClock(clock)

	a.AddRRIntervals(breathingRR(120, 0.25))
	first := a.Calculate()

	// New data within the throttle window must not change the spectral
	// fields, while pNN50 tracks the current buffer.
	a.AddRRIntervals(breathingRR(120, 0.1))
	clock.Advance(2 * time.Second)
	second := a.Calculate()

	if second.LF != first.LF || second.HF != first.HF ||
		second.LFHFRatio != first.LFHFRatio || second.RespirationRate != first.RespirationRate {
		t.Errorf("spectral fields changed within throttle window: %+v vs %+v", first, second)
	}

	// After the interval elapses the next call recomputes over the full
	// buffer.
	clock.Advance(3 * time.Second)
	third := a.Calculate()
	if third.LF == first.LF && third.HF == first.HF {
		t.Error("expected recompute after throttle interval with new data")
	}
}

func TestCalculateIdempotentWithinThrottle(t *testing.T) {
	clock := newFakeClock()
	a := NewAnalyzerWithClock(clock)

	a.AddRRIntervals(breathingRR(120, 0.25))
	first := a.Calculate()
	second := a.Calculate()

	if first != second {
		t.Errorf("Calculate not idempotent without new data: %+v vs %+v", first, second)
	}
}

func TestAnalyzerReset(t *testing.T) {
	clock := newFakeClock()
	a := NewAnalyzerWithClock(clock)

	a.AddRRIntervals(breathingRR(120, 0.25))
	if adv := a.Calculate(); adv.HF == 0 {
		t.Fatal("expected spectral output before reset")
	}

	a.Reset()
	adv := a.Calculate()
	if adv.LF != 0 || adv.HF != 0 || adv.PNN50 != 0 || adv.StressIndex != 0 {
		t.Errorf("expected all-zero stats after reset, got %+v", adv)
	}
}

func TestResample(t *testing.T) {
	// Four 500 ms intervals cover 2 seconds: 8 samples at 4 Hz, each
	// holding the interval in progress at its grid time.
	got := resample([]float64{500, 500, 1000, 1000}, 4)
	// Total elapsed is 3 s, so 12 samples.
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0] != 500 || got[1] != 500 {
		t.Errorf("first samples = %v, want 500s", got[:2])
	}
	if got[len(got)-1] != 1000 {
		t.Errorf("last sample = %f, want 1000", got[len(got)-1])
	}
}

func TestHammingWindowEndpoints(t *testing.T) {
	samples := []float64{1, 1, 1, 1, 1}
	applyHammingWindow(samples)

	if math.Abs(samples[0]-0.08) > 1e-9 {
		t.Errorf("first coefficient = %f, want 0.08", samples[0])
	}
	if math.Abs(samples[2]-1.0) > 1e-9 {
		t.Errorf("center coefficient = %f, want 1.0", samples[2])
	}
	if math.Abs(samples[4]-0.08) > 1e-9 {
		t.Errorf("last coefficient = %f, want 0.08", samples[4])
	}
}
