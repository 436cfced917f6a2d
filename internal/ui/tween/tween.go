package tween

import (
	"math"
	"time"
)

// TickInterval is the interval between animation ticks while a tween is
// running.
const TickInterval = 30 * time.Millisecond

// Tween interpolates the rendered header offset toward the coordinator's
// latest target. A generation counter invalidates stale tick loops: every
// retarget bumps the generation, so ticks scheduled for an earlier move
// stop themselves instead of fighting the new one.
type Tween struct {
	// Gen is the generation of the currently running tick loop
	Gen uint64

	active   bool
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    string
	value    float64
}

// New creates a tween resting at the given value
func New(value float64) *Tween {
	return &Tween{value: value, to: value}
}

// Start retargets the tween from its current value. It returns the new
// generation for the tick loop to carry. A non-positive duration completes
// immediately and returns false for active.
func (t *Tween) Start(to float64, duration time.Duration, curve string, now time.Time) (uint64, bool) {
	t.Gen++

	if duration <= 0 || t.value == to {
		t.value = to
		t.to = to
		t.active = false
		return t.Gen, false
	}

	t.from = t.value
	t.to = to
	t.start = now
	t.duration = duration
	t.curve = curve
	t.active = true
	return t.Gen, true
}

// Step advances the tween for a tick of the given generation. It returns
// true while the tick loop should continue; a generation mismatch or a
// finished tween returns false.
func (t *Tween) Step(gen uint64, now time.Time) bool {
	if gen != t.Gen || !t.active {
		return false
	}

	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		t.value = t.to
		t.active = false
		return false
	}
	if p < 0 {
		p = 0
	}

	t.value = t.from + (t.to-t.from)*ease(t.curve, p)
	return true
}

// Value returns the current interpolated value
func (t *Tween) Value() float64 {
	return t.value
}

// Target returns the value the tween is heading toward
func (t *Tween) Target() float64 {
	return t.to
}

// Active reports whether a tick loop should be running
func (t *Tween) Active() bool {
	return t.active
}

// Snap stops any running tween and jumps straight to the value
func (t *Tween) Snap(value float64) {
	t.Gen++
	t.value = value
	t.to = value
	t.active = false
}

// ease maps progress through the named curve. Unknown names fall back to
// linear.
func ease(curve string, p float64) float64 {
	switch curve {
	case "ease-in":
		return p * p * p
	case "ease-out":
		q := 1 - p
		return 1 - q*q*q
	case "ease-in-out":
		if p < 0.5 {
			return 4 * p * p * p
		}
		return 1 - math.Pow(-2*p+2, 3)/2
	}
	return p
}
