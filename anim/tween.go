// SPDX-License-Identifier: Unlicense OR MIT

// Package anim implements frame driven interpolation of scalar values.
//
// A Tween does not own a clock. The host advances it with the frame time
// of each redraw, and keeps redrawing while it runs.
package anim

import (
	"math"
	"time"
)

// Tween interpolates from From to To over Duration. It starts at the
// first Advance after Retarget.
type Tween struct {
	From, To float32
	Duration time.Duration
	// Curve eases the progress. Nil means Linear.
	Curve Curve
	// Threshold ends the tween early once the value is closer
	// than Threshold to To.
	Threshold float32

	value   float32
	start   time.Time
	started bool
	running bool
}

// Retarget starts a new run from from towards to. A running tween
// is replaced and its elapsed time discarded.
func (t *Tween) Retarget(from, to float32) {
	t.From, t.To = from, to
	t.value = from
	t.started = false
	t.running = from != to
	if !t.running {
		t.value = to
	}
}

// Advance moves the tween to now and returns the current value. done
// reports whether the tween has reached To, in which case value is
// exactly To.
func (t *Tween) Advance(now time.Time) (value float32, done bool) {
	if !t.running {
		return t.value, true
	}
	if !t.started {
		t.start = now
		t.started = true
	}
	elapsed := now.Sub(t.start)
	if t.Duration <= 0 || elapsed >= t.Duration {
		t.finish()
		return t.value, true
	}
	p := float64(elapsed) / float64(t.Duration)
	if p < 0 {
		p = 0
	}
	curve := t.Curve
	if curve == nil {
		curve = Linear
	}
	t.value = t.From + (t.To-t.From)*float32(curve(p))
	if elapsed > 0 && float32(math.Abs(float64(t.To-t.value))) < t.Threshold {
		t.finish()
		return t.value, true
	}
	return t.value, false
}

// Stop ends the tween at To.
func (t *Tween) Stop() {
	if t.running {
		t.finish()
	}
}

// Cancel ends the tween where it is, without moving to To.
func (t *Tween) Cancel() {
	t.running = false
	t.started = false
}

// Value returns the last computed value.
func (t *Tween) Value() float32 {
	return t.value
}

// Running reports whether the tween has not reached To yet.
func (t *Tween) Running() bool {
	return t.running
}

func (t *Tween) finish() {
	t.value = t.To
	t.running = false
	t.started = false
}
