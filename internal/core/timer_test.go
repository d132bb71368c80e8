package core

import (
	"testing"
	"time"
)

func TestStepGateSpacing(t *testing.T) {
	g := NewStepGate(10) // 100ms interval

	now := time.Unix(0, 0)
	g.now = func() time.Time { return now }

	if !g.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	now = now.Add(50 * time.Millisecond)
	if g.ShouldStep() {
		t.Fatal("stepped before a full interval elapsed")
	}
	now = now.Add(50 * time.Millisecond)
	if !g.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
}

func TestStepGateNoBurstCatchUp(t *testing.T) {
	g := NewStepGate(10)

	now := time.Unix(0, 0)
	g.now = func() time.Time { return now }
	g.ShouldStep()

	// A long stall grants a single step, not a burst.
	now = now.Add(5 * time.Second)
	if !g.ShouldStep() {
		t.Fatal("stalled gate should grant one step")
	}
	if g.ShouldStep() {
		t.Fatal("gate granted a catch-up burst")
	}
}

func TestStepGateRateChange(t *testing.T) {
	g := NewStepGate(1)

	now := time.Unix(0, 0)
	g.now = func() time.Time { return now }
	g.ShouldStep()

	g.SetRate(30)
	now = now.Add(time.Second / 30)
	if !g.ShouldStep() {
		t.Fatal("rate change not applied")
	}
}

func TestStepGateClampsRate(t *testing.T) {
	g := NewStepGate(0)
	if g.interval != time.Second/MinSpeed {
		t.Fatalf("rate 0 not clamped, interval %v", g.interval)
	}
	g.SetRate(1000)
	if g.interval != time.Second/MaxSpeed {
		t.Fatalf("rate 1000 not clamped, interval %v", g.interval)
	}
}

func TestStepGateReset(t *testing.T) {
	g := NewStepGate(1)
	now := time.Unix(0, 0)
	g.now = func() time.Time { return now }
	g.ShouldStep()
	g.Reset()
	if !g.ShouldStep() {
		t.Fatal("reset gate should step immediately")
	}
}
