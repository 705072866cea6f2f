package core

import "time"

// FixedStep paces simulation ticks at a steady interval independent of the
// caller's frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per step, falling back
// to one second for non-positive steps. The first call to ShouldStep always
// fires.
func NewFixedStep(step time.Duration) *FixedStep {
	if step <= 0 {
		step = time.Second
	}
	return &FixedStep{step: step, accumulator: step, now: time.Now}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
