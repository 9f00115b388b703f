// ABOUTME: Baevsky stress index and pNN50 over an RR interval series.
// ABOUTME: Both are cheap distribution metrics computed fresh on every call.
package hrv

import "math"

const (
	// stressBinWidth is the histogram bin width for the Baevsky index.
	stressBinWidth = 50.0

	// minStressIntervals is the smallest series the index is defined for.
	minStressIntervals = 30
)

// PNN50 is the percentage of successive RR pairs whose absolute difference
// exceeds 50 ms. Zero for fewer than 2 intervals.
func PNN50(rr []float64) float64 {
	if len(rr) < 2 {
		return 0
	}
	count := 0
	for i := 1; i < len(rr); i++ {
		if math.Abs(rr[i]-rr[i-1]) > 50 {
			count++
		}
	}
	return float64(count) / float64(len(rr)-1) * 100
}

// StressIndex is the Baevsky stress index: AMo / (2 * Mo * MxDMn), where
// AMo is the modal bin share in percent, Mo the modal RR in seconds and
// MxDMn the variational range in seconds. Returns 0 for fewer than 30
// intervals and for degenerate (constant) series.
func StressIndex(rr []float64) int {
	if len(rr) < minStressIntervals {
		return 0
	}

	bins := make(map[float64]int)
	minRR, maxRR := rr[0], rr[0]
	for _, v := range rr {
		center := math.Round(v/stressBinWidth) * stressBinWidth
		bins[center]++
		if v < minRR {
			minRR = v
		}
		if v > maxRR {
			maxRR = v
		}
	}

	var modalCenter float64
	modalCount := 0
	for center, count := range bins {
		if count > modalCount || (count == modalCount && center < modalCenter) {
			modalCount = count
			modalCenter = center
		}
	}

	amo := float64(modalCount) / float64(len(rr)) * 100
	mo := modalCenter / 1000
	mxDMn := (maxRR - minRR) / 1000
	if mo == 0 || mxDMn == 0 {
		return 0
	}

	return int(math.Round(amo / (2 * mo * mxDMn)))
}
