package starfall

import "math"

// SpawnTimer is a repeating countdown with a fixed period in seconds.
type SpawnTimer struct {
	period  float64
	elapsed float64
}

// NewSpawnTimer creates a timer that fires every period seconds.
func NewSpawnTimer(period float64) SpawnTimer {
	return SpawnTimer{period: period}
}

// Tick advances the timer by dt seconds and reports whether it fired.
// It fires at most once per call even when dt spans several periods;
// the surplus time is kept modulo the period.
func (t *SpawnTimer) Tick(dt float64) bool {
	if t.period <= 0 || dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.period)
	return true
}

// Remaining returns the seconds left until the next fire.
func (t SpawnTimer) Remaining() float64 {
	return t.period - t.elapsed
}

// Period returns the timer period in seconds.
func (t SpawnTimer) Period() float64 {
	return t.period
}
