// Package timer measures frame durations.
package timer

import "time"

// Timer is a restartable stopwatch. The zero value is ready to use.
type Timer struct {
	start time.Time
}

// Start restarts the timer.
func (t *Timer) Start() {
	t.start = time.Now()
}

// Stop returns the time elapsed since the last Start.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// Measure times fn.
func Measure(fn func() error) (time.Duration, error) {
	var t Timer
	t.Start()
	err := fn()
	return t.Stop(), err
}
