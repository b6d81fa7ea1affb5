package starcatch

// Timer is a repeating countdown driven by elapsed seconds.
//
// Tick adds the elapsed time; when the accumulated time reaches the period
// the timer fires for that tick and one period is subtracted, keeping the
// remainder. A tick fires at most once even if several periods elapsed;
// the excess carries into the following ticks.
type Timer struct {
	period   float32
	elapsed  float32
	finished bool
}

// NewRepeatingTimer creates a timer that fires every period seconds.
func NewRepeatingTimer(period float32) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by delta seconds.
func (t *Timer) Tick(delta float32) {
	t.finished = false
	t.elapsed += delta
	if t.elapsed >= t.period {
		t.finished = true
		t.elapsed -= t.period
	}
}

// Finished reports whether the last Tick fired.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the time accumulated toward the next firing.
func (t *Timer) Elapsed() float32 {
	return t.elapsed
}

// Reset returns the timer to its initial state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
