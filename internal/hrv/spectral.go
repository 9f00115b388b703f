// ABOUTME: Spectral analysis engine: LF/HF band power and respiration rate.
// ABOUTME: Resamples RR intervals to 4 Hz, windows, and runs a 1024-point FFT.
package hrv

import (
	"math"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/vinprj/hrmconnect/internal/models"
)

const (
	// resampleRate is the uniform grid rate the irregular RR series is
	// held onto before the transform.
	resampleRate = 4.0

	// fftSize is the fixed transform length; input is zero-padded or
	// truncated to fit.
	fftSize = 1024

	// minSpectralIntervals is the smallest RR buffer the transform runs
	// on; below this all spectral fields are zero.
	minSpectralIntervals = 60

	// spectralInterval is the minimum wall-clock time between transform
	// runs. Intervening calls serve the cached result.
	spectralInterval = 5 * time.Second

	lfLow  = 0.04
	lfHigh = 0.15
	hfLow  = 0.15
	hfHigh = 0.40
)

type spectralResult struct {
	lf              float64
	hf              float64
	lfHfRatio       float64
	respirationRate int
}

// Analyzer computes frequency-domain HRV metrics over an unbounded RR
// buffer. The transform is expensive, so its output is cached and
// recomputed at most once per spectralInterval; pNN50 and the stress index
// are cheap and always computed fresh.
//
// Analyzer is not safe for concurrent use.
type Analyzer struct {
	clock       Clock
	fft         *fourier.FFT
	rrIntervals []float64
	cached      spectralResult
	lastCompute time.Time
}

// NewAnalyzer creates an Analyzer using the system clock.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(SystemClock)
}

// NewAnalyzerWithClock creates an Analyzer with an injected clock.
func NewAnalyzerWithClock(clock Clock) *Analyzer {
	return &Analyzer{
		clock: clock,
		fft:   fourier.NewFFT(fftSize),
	}
}

// AddRRIntervals appends intervals to the buffer. Non-positive values are
// dropped.
func (a *Analyzer) AddRRIntervals(rrIntervals []float64) {
	for _, rr := range rrIntervals {
		if rr > 0 {
			a.rrIntervals = append(a.rrIntervals, rr)
		}
	}
}

// Reset clears the buffer and the spectral cache.
func (a *Analyzer) Reset() {
	a.rrIntervals = nil
	a.cached = spectralResult{}
	a.lastCompute = time.Time{}
}

// Calculate returns the advanced statistics for the current buffer. The
// spectral fields may be up to spectralInterval stale; pNN50 and the
// stress index always reflect the current buffer.
func (a *Analyzer) Calculate() models.AdvancedStats {
	now := a.clock.Now()
	if a.lastCompute.IsZero() || now.Sub(a.lastCompute) >= spectralInterval {
		a.cached = a.computeSpectral()
		a.lastCompute = now
	}

	return models.AdvancedStats{
		PNN50:           PNN50(a.rrIntervals),
		StressIndex:     StressIndex(a.rrIntervals),
		LF:              a.cached.lf,
		HF:              a.cached.hf,
		LFHFRatio:       a.cached.lfHfRatio,
		RespirationRate: a.cached.respirationRate,
	}
}

// computeSpectral runs the full pipeline: resample, window, transform,
// band integration. Returns zeros when the buffer is too short.
func (a *Analyzer) computeSpectral() spectralResult {
	if len(a.rrIntervals) < minSpectralIntervals {
		return spectralResult{}
	}

	samples := resample(a.rrIntervals, resampleRate)
	if len(samples) == 0 {
		return spectralResult{}
	}
	applyHammingWindow(samples)

	// Fixed-size transform buffer: zero-pad or truncate.
	buf := make([]float64, fftSize)
	copy(buf, samples)

	coeffs := a.fft.Coefficients(nil, buf)

	freqRes := resampleRate / float64(fftSize)
	var lf, hf, hfPeakPower, hfPeakFreq float64
	for i, c := range coeffs {
		freq := float64(i) * freqRes
		power := real(c)*real(c) + imag(c)*imag(c)
		switch {
		case freq >= lfLow && freq < lfHigh:
			lf += power
		case freq >= hfLow && freq < hfHigh:
			hf += power
			if power > hfPeakPower {
				hfPeakPower = power
				hfPeakFreq = freq
			}
		}
	}

	res := spectralResult{lf: lf, hf: hf}
	if hf > 0 {
		res.lfHfRatio = math.Round(lf/hf*100) / 100
	}
	if hfPeakPower > 0 {
		res.respirationRate = int(math.Round(hfPeakFreq * 60))
	}
	return res
}

// resample holds the irregular RR series onto a uniform grid. For each
// output time t the interval in progress at t is emitted
// (nearest-preceding hold, no interpolation).
func resample(rr []float64, rate float64) []float64 {
	totalSeconds := 0.0
	for _, v := range rr {
		totalSeconds += v / 1000
	}

	n := int(totalSeconds * rate)
	if n == 0 {
		return nil
	}

	out := make([]float64, 0, n)
	idx := 0
	cumEnd := rr[0] / 1000
	for i := 0; i < n; i++ {
		t := float64(i) / rate
		for t >= cumEnd && idx < len(rr)-1 {
			idx++
			cumEnd += rr[idx] / 1000
		}
		out = append(out, rr[idx])
	}
	return out
}

// applyHammingWindow tapers the samples in place to reduce spectral
// leakage.
func applyHammingWindow(samples []float64) {
	n := len(samples)
	if n < 2 {
		return
	}
	for i := range samples {
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		samples[i] *= w
	}
}
