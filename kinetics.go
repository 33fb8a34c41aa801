package stickyscroll

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	snapBackDuration  = 0.35 // seconds to tween back into the valid range
	flingStartSpeed   = 50.0 // px/s; release speeds below this do not fling
	flingStopSpeed    = 8.0  // px/s; deceleration rests below this
	flingDecay        = 0.94 // per-frame velocity retention, calibrated at 60 TPS
	dragResistance    = 0.5  // rubber-band factor beyond the valid range
	velocitySmoothing = 0.8  // EMA weight of the newest velocity sample
)

// scrollAnim is an active programmatic scroll tween.
type scrollAnim struct {
	tween      *gween.Tween
	notifyDone bool // emit EventScrollDone on completion (ScrollTo only)
}

// ScrollTo animates the offset to the given value (clamped to the valid
// range) over duration seconds using the easing function. A zero or
// negative duration jumps immediately. EventScrollDone fires when the
// target is reached.
func (v *ScrollView) ScrollTo(y float64, duration float32, fn ease.TweenFunc) {
	target := clamp(y, 0, v.MaxOffset())
	v.stopKinetics()
	if duration <= 0 {
		v.setOffset(target)
		v.relay.scrollDone(v.makeEvent(0))
		return
	}
	v.anim = &scrollAnim{
		tween:      gween.New(float32(v.offset.Y), float32(target), duration, fn),
		notifyDone: true,
	}
}

// stopKinetics cancels any running scroll animation and fling. An active
// deceleration emits its end notification so listeners stay balanced.
func (v *ScrollView) stopKinetics() {
	v.anim = nil
	v.velocityY = 0
	if v.decelerating {
		v.decelerating = false
		v.relay.decelEnded(v.makeEvent(0))
	}
}

// snapBack tweens an out-of-range offset back to the nearest valid value.
func (v *ScrollView) snapBack() {
	target := clamp(v.offset.Y, 0, v.MaxOffset())
	if target == v.offset.Y {
		return
	}
	v.anim = &scrollAnim{
		tween: gween.New(float32(v.offset.Y), float32(target), snapBackDuration, ease.OutCubic),
	}
}

// rubberBand maps a raw drag offset to the displayed offset, applying
// resistance beyond the valid range.
func (v *ScrollView) rubberBand(raw float64) float64 {
	if raw < 0 {
		return raw * dragResistance
	}
	if max := v.MaxOffset(); raw > max {
		return max + (raw-max)*dragResistance
	}
	return raw
}

// willDecelerate reports whether releasing the current drag starts a fling.
// Out-of-range offsets snap back instead of flinging.
func (v *ScrollView) willDecelerate() bool {
	if v.offset.Y < 0 || v.offset.Y > v.MaxOffset() {
		return false
	}
	return math.Abs(v.velocityY) >= flingStartSpeed
}

// endDragKinetics decides what happens after a drag release: snap back
// when overscrolled, fling when fast enough, otherwise rest.
func (v *ScrollView) endDragKinetics() {
	if v.offset.Y < 0 || v.offset.Y > v.MaxOffset() {
		v.velocityY = 0
		v.snapBack()
		return
	}
	if math.Abs(v.velocityY) >= flingStartSpeed {
		v.decelerating = true
		v.relay.decelBegan(v.makeEvent(0))
	} else {
		v.velocityY = 0
	}
}

// updateKinetics advances the scroll animation or fling by dt seconds.
// Called from Update before input processing.
func (v *ScrollView) updateKinetics(dt float32) {
	if v.anim != nil {
		val, done := v.anim.tween.Update(dt)
		v.setOffset(float64(val))
		if done {
			notify := v.anim.notifyDone
			v.anim = nil
			if notify {
				v.relay.scrollDone(v.makeEvent(0))
			}
		}
		return
	}

	if v.decelerating {
		v.setOffset(v.offset.Y + v.velocityY*float64(dt))
		v.velocityY *= math.Pow(flingDecay, float64(dt)*60)

		out := v.offset.Y < 0 || v.offset.Y > v.MaxOffset()
		if out || math.Abs(v.velocityY) < flingStopSpeed {
			v.decelerating = false
			v.velocityY = 0
			v.relay.decelEnded(v.makeEvent(0))
			if out {
				v.snapBack()
			}
		}
	}
}
