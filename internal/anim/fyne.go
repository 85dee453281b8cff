package anim

import (
	"time"

	"fyne.io/fyne/v2"
)

// Animator drives a Float with fyne's animation runner. Ticks arrive on the
// fyne main goroutine.
type Animator struct {
	Value    *Float
	Duration time.Duration
	Curve    fyne.AnimationCurve
	// OnTick is called after every value change, including the final one.
	OnTick func(v float64)

	anim *fyne.Animation
	gen  int
}

// NewAnimator creates an animator for value using an ease-in-out curve.
func NewAnimator(value *Float, d time.Duration, onTick func(float64)) *Animator {
	return &Animator{
		Value:    value,
		Duration: d,
		Curve:    fyne.AnimationEaseInOut,
		OnTick:   onTick,
	}
}

// AnimateTo interrupts any running animation and moves from the current
// value toward target.
func (a *Animator) AnimateTo(target float64) {
	a.stop()
	if !a.Value.Retarget(target) {
		return
	}
	if a.Duration <= 0 {
		a.Value.Step(1)
		a.notify()
		return
	}

	gen := a.gen
	a.anim = fyne.NewAnimation(a.Duration, func(p float32) {
		// Ticks from a stopped animation may still be queued.
		if gen != a.gen {
			return
		}
		a.Value.Step(float64(p))
		a.notify()
	})
	a.anim.Curve = a.Curve
	a.anim.Start()
}

// Finish stops the animation and lands on the target.
func (a *Animator) Finish() {
	a.stop()
	if !a.Value.Running() {
		return
	}
	a.Value.Step(1)
	a.notify()
}

func (a *Animator) stop() {
	a.gen++
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
}

func (a *Animator) notify() {
	if a.OnTick != nil {
		a.OnTick(a.Value.Value())
	}
}
