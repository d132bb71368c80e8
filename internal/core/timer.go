package core

import "time"

// StepGate spaces simulation advances at a target generations-per-second
// rate. A step is granted only when at least one full interval has elapsed
// since the previous grant, and at most one step is granted per call. A late
// caller gets a single step, never a burst of catch-up steps.
type StepGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewStepGate constructs a StepGate targeting the given rate.
func NewStepGate(gps int) *StepGate {
	g := &StepGate{now: time.Now}
	g.SetRate(gps)
	return g
}

// SetRate changes the target rate. It is safe to call between ticks.
func (g *StepGate) SetRate(gps int) {
	gps = ClampSpeed(gps)
	g.interval = time.Second / time.Duration(gps)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (g *StepGate) ShouldStep() bool {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return true
	}
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

// Reset forgets the previous grant so the next call steps immediately.
func (g *StepGate) Reset() {
	g.last = time.Time{}
}
