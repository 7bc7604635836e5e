package core

import (
	"testing"
	"time"
)

func TestStepClockFiresOncePerInterval(t *testing.T) {
	c := NewStepClock(100 * time.Millisecond)
	base := time.Unix(0, 0)

	if c.stepAt(base) {
		t.Fatal("clock fired before any time elapsed")
	}
	if c.stepAt(base.Add(50 * time.Millisecond)) {
		t.Fatal("clock fired halfway through the interval")
	}
	if !c.stepAt(base.Add(100 * time.Millisecond)) {
		t.Fatal("clock did not fire at the interval boundary")
	}
	if c.stepAt(base.Add(150 * time.Millisecond)) {
		t.Fatal("clock fired again before the next boundary")
	}
	if !c.stepAt(base.Add(200 * time.Millisecond)) {
		t.Fatal("clock did not fire at the second boundary")
	}
}

func TestStepClockReset(t *testing.T) {
	c := NewStepClock(100 * time.Millisecond)
	base := time.Unix(0, 0)

	c.stepAt(base)
	c.stepAt(base.Add(90 * time.Millisecond))
	c.Reset()

	later := base.Add(time.Second)
	if c.stepAt(later) {
		t.Fatal("clock fired immediately after Reset")
	}
	if c.stepAt(later.Add(90 * time.Millisecond)) {
		t.Fatal("accumulated time survived Reset")
	}
	if !c.stepAt(later.Add(100 * time.Millisecond)) {
		t.Fatal("clock did not fire one interval after Reset")
	}
}

func TestStepClockStallYieldsSingleTick(t *testing.T) {
	c := NewStepClock(100 * time.Millisecond)
	base := time.Unix(0, 0)

	c.stepAt(base)
	if !c.stepAt(base.Add(time.Second)) {
		t.Fatal("clock did not fire after a long stall")
	}
	if c.stepAt(base.Add(time.Second)) {
		t.Fatal("stall produced a burst of ticks")
	}
}

func TestNewStepClockDefaultsInterval(t *testing.T) {
	c := NewStepClock(0)
	base := time.Unix(0, 0)
	c.stepAt(base)
	if c.stepAt(base.Add(DefaultInterval - time.Millisecond)) {
		t.Fatal("default interval fired early")
	}
	if !c.stepAt(base.Add(DefaultInterval)) {
		t.Fatal("default interval did not fire")
	}
}
