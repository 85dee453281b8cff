// Package anim interpolates a float value toward a target over time.
//
// Float only knows where it started and where it is going; the per-frame
// progress comes from a driver. Animator drives a Float with fyne's
// animation runner, Timeline drives one from explicit elapsed durations
// (used by the terminal renderer, which receives tick messages).
package anim

// Float is a value moving from a start toward a target.
type Float struct {
	from    float64
	to      float64
	value   float64
	running bool
}

// NewFloat creates a Float at rest on initial.
func NewFloat(initial float64) *Float {
	return &Float{from: initial, to: initial, value: initial}
}

// Value returns the current interpolated value.
func (f *Float) Value() float64 {
	return f.value
}

// Start returns where the current (or last) segment began.
func (f *Float) Start() float64 {
	return f.from
}

// Target returns the value the Float is moving toward (or resting on).
func (f *Float) Target() float64 {
	return f.to
}

// Running reports whether the Float is between start and target.
func (f *Float) Running() bool {
	return f.running
}

// Retarget starts a new segment from the current value toward target.
// An in-flight segment is abandoned where it is, so a reversal continues
// smoothly from the current value. It returns false when there is nothing
// to animate.
func (f *Float) Retarget(target float64) bool {
	if !f.running && f.value == target {
		f.to = target
		return false
	}
	f.from = f.value
	f.to = target
	f.running = true
	return true
}

// Step moves the value to progress (0..1, already eased) along the current
// segment. Progress at or beyond 1 lands exactly on the target and ends the
// segment.
func (f *Float) Step(progress float64) {
	if progress >= 1 {
		f.value = f.to
		f.running = false
		return
	}
	if progress < 0 {
		progress = 0
	}
	f.value = Lerp(f.from, f.to, progress)
}

// Snap jumps to v without animating.
func (f *Float) Snap(v float64) {
	f.from, f.to, f.value = v, v, v
	f.running = false
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
