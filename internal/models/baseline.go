// ABOUTME: Personal baseline reference values for readiness scoring.
// ABOUTME: Either the fixed population default or averaged from session history.
package models

// Baseline holds the reference values current metrics are normalized against.
type Baseline struct {
	RMSSD     float64 `json:"rmssd"`
	RestingHR float64 `json:"resting_hr"`
	SDNN      float64 `json:"sdnn"`
}

// DefaultBaseline returns the population default used when no history exists.
func DefaultBaseline() Baseline {
	return Baseline{RMSSD: 40, RestingHR: 65, SDNN: 50}
}

// BaselineFromSessions averages historical session stats into a personal
// baseline. Falls back to the population default when history is empty.
func BaselineFromSessions(sessions []*Session) Baseline {
	if len(sessions) == 0 {
		return DefaultBaseline()
	}

	var rmssd, hr, sdnn float64
	for _, s := range sessions {
		rmssd += float64(s.Stats.RMSSD)
		hr += float64(s.Stats.AvgHR)
		sdnn += float64(s.Stats.SDNN)
	}
	n := float64(len(sessions))
	return Baseline{
		RMSSD:     rmssd / n,
		RestingHR: hr / n,
		SDNN:      sdnn / n,
	}
}
