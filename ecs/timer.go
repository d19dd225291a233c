package ecs

// TimerMode selects whether a timer fires once or repeats.
type TimerMode int

const (
	// TimerOnce fires a single time and stays finished until Reset.
	TimerOnce TimerMode = iota
	// TimerRepeating fires every time the duration elapses and carries
	// overshoot into the next cycle.
	TimerRepeating
)

// Timer accumulates delta time and reports when its duration has elapsed.
// Timers never tick on their own; a system calls Tick with the frame's
// DeltaTime, which keeps them deterministic under a fixed timestep and inert
// in schedulers that run with dt = 0.
type Timer struct {
	duration     float64
	elapsed      float64
	mode         TimerMode
	finished     bool
	justFinished bool
}

// NewTimer creates a timer that fires after duration seconds.
// Panics if duration is not positive.
func NewTimer(duration float64, mode TimerMode) Timer {
	if duration <= 0 {
		panic("ecs: timer duration must be positive")
	}
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick advances the timer by dt seconds. A repeating timer fires at most once
// per Tick; overshoot is retained, so after a long frame it fires again on
// following ticks until it has caught up.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false

	if t.mode == TimerOnce {
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
		}
		return
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.justFinished = true
	}
}

// JustFinished reports whether the timer fired during the most recent Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether the timer has reached its duration. Once-mode
// timers stay finished until Reset; repeating timers report true only on the
// tick they fired.
func (t *Timer) Finished() bool {
	if t.mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Elapsed returns the seconds accumulated toward the next fire.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured duration in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Progress returns elapsed time as a fraction of the duration, in [0, 1].
func (t *Timer) Progress() float64 {
	p := t.elapsed / t.duration
	if p > 1 {
		return 1
	}
	return p
}

// Mode returns the timer's mode.
func (t *Timer) Mode() TimerMode {
	return t.mode
}
