package anim

import (
	"math"
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut starts and ends slowly; it matches fyne.AnimationEaseInOut.
func EaseInOut(t float64) float64 {
	if t <= 0.5 {
		return t * t * 2
	}
	return -1 + (4-t*2)*t
}

// EaseOut decelerates toward the end.
func EaseOut(t float64) float64 {
	return t * (2 - t)
}

// Timeline advances a Float by explicit elapsed durations.
type Timeline struct {
	Value    *Float
	Duration time.Duration
	Curve    Curve

	elapsed time.Duration
}

// NewTimeline creates a timeline for value with an ease-in-out curve.
func NewTimeline(value *Float, d time.Duration) *Timeline {
	return &Timeline{Value: value, Duration: d, Curve: EaseInOut}
}

// AnimateTo retargets the value and restarts the clock. It reports whether
// frames need to be scheduled.
func (tl *Timeline) AnimateTo(target float64) bool {
	tl.elapsed = 0
	if !tl.Value.Retarget(target) {
		return false
	}
	if tl.Duration <= 0 {
		tl.Value.Step(1)
		return false
	}
	return true
}

// Advance moves the clock forward by dt and reports whether the value is
// still moving.
func (tl *Timeline) Advance(dt time.Duration) bool {
	if !tl.Value.Running() {
		return false
	}
	tl.elapsed += dt
	p := 1.0
	if tl.Duration > 0 {
		p = math.Min(1, float64(tl.elapsed)/float64(tl.Duration))
	}
	if p >= 1 {
		tl.Value.Step(1)
		return false
	}
	curve := tl.Curve
	if curve == nil {
		curve = Linear
	}
	tl.Value.Step(curve(p))
	return true
}

// Finish lands the value on its target immediately.
func (tl *Timeline) Finish() {
	tl.Value.Step(1)
	tl.elapsed = tl.Duration
}
