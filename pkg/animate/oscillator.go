// Package animate drives scalar inputs with a reflecting-boundary
// oscillation, the motor behind animated rotation angles and translations.
package animate

import "time"

// MaxDelta caps the elapsed time applied in one tick. A backgrounded process
// can sit idle for seconds; replaying that whole gap would overshoot the
// boundaries, so anything larger is clamped to this value.
const MaxDelta = 100 * time.Millisecond

// Oscillator bounces a scalar between two bounds at a fixed speed. The zero
// value is not usable; construct with [NewOscillator].
type Oscillator struct {
	min, max float64
	speed    float64 // units per second
	enabled  bool

	value       float64
	direction   float64
	lastElapsed time.Duration
	started     bool
}

// NewOscillator builds an enabled oscillator starting at min and moving
// upward. Speed is in value units per second. Reversed bounds are swapped.
func NewOscillator(min, max, speed float64) *Oscillator {
	if min > max {
		min, max = max, min
	}
	return &Oscillator{
		min:       min,
		max:       max,
		speed:     speed,
		enabled:   true,
		value:     min,
		direction: 1,
	}
}

// Value returns the current scalar without advancing.
func (o *Oscillator) Value() float64 { return o.value }

// Enabled reports whether ticks advance the value.
func (o *Oscillator) Enabled() bool { return o.enabled }

// SetEnabled toggles the oscillator. Disabling freezes the value; the elapsed
// clock keeps tracking so re-enabling does not replay the paused time.
func (o *Oscillator) SetEnabled(enabled bool) { o.enabled = enabled }

// SetValue jumps the scalar to v, clamped into the bounds.
func (o *Oscillator) SetValue(v float64) {
	if v < o.min {
		v = o.min
	}
	if v > o.max {
		v = o.max
	}
	o.value = v
}

// Tick advances the oscillator to the given monotonic elapsed time and
// returns the new value. The value moves by speed × delta, reflecting off
// either bound: contact clamps to the bound and flips direction. Deltas over
// [MaxDelta] are clamped.
func (o *Oscillator) Tick(elapsed time.Duration) float64 {
	delta := elapsed - o.lastElapsed
	o.lastElapsed = elapsed
	if !o.started {
		// First tick establishes the clock baseline.
		o.started = true
		return o.value
	}
	if !o.enabled || delta <= 0 {
		return o.value
	}
	if delta > MaxDelta {
		delta = MaxDelta
	}

	o.value += o.direction * o.speed * delta.Seconds()
	if o.value >= o.max {
		o.value = o.max
		o.direction = -1
	} else if o.value <= o.min {
		o.value = o.min
		o.direction = 1
	}
	return o.value
}
