// SPDX-License-Identifier: Unlicense OR MIT

// Package anim eases scalar values towards a target.
package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultDuration = 300 * time.Millisecond

// Tween moves a value towards its most recent target over
// Duration. The zero Tween uses a 300ms ease-in-out cubic
// curve and jumps to the first target it sees.
type Tween struct {
	Duration time.Duration
	// Curve defaults to ease.InOutCubic.
	Curve ease.TweenFunc

	started bool
	to      float32
	value   float32
	last    time.Time
	tween   *gween.Tween
}

// Animate returns the value at now while easing towards
// target. A target change restarts the tween from the current
// value.
func (tw *Tween) Animate(now time.Time, target float32) float32 {
	if !tw.started {
		tw.started = true
		tw.to, tw.value = target, target
		return target
	}
	if target != tw.to {
		duration := tw.Duration
		if duration == 0 {
			duration = defaultDuration
		}
		curve := tw.Curve
		if curve == nil {
			curve = ease.InOutCubic
		}
		tw.tween = gween.New(tw.value, target, float32(duration.Seconds()), curve)
		tw.to = target
		tw.last = now
	}
	if tw.tween == nil {
		return tw.value
	}
	dt := float32(now.Sub(tw.last).Seconds())
	if dt < 0 {
		dt = 0
	}
	tw.last = now
	v, done := tw.tween.Update(dt)
	tw.value = v
	if done {
		tw.value = tw.to
		tw.tween = nil
	}
	return tw.value
}

// Active reports whether the value is still moving. Callers
// keep invalidating frames while it is.
func (tw *Tween) Active() bool {
	return tw.tween != nil
}

// Value returns the last computed value.
func (tw *Tween) Value() float32 {
	return tw.value
}
