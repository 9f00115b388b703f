// ABOUTME: Injectable wall-clock source for the HRV engines.
// ABOUTME: Lets tests simulate elapsed time instead of sleeping.
package hrv

import "time"

// Clock supplies the current wall-clock time. The engines read it for
// session duration and for the spectral recompute throttle; they never
// schedule timers against it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real wall clock.
var SystemClock Clock = systemClock{}
