package stickyscroll

// syntheticEvent represents a single injected input event. View-space
// coordinates are used, identical to real pointer input. A non-zero wheel
// field makes the event a wheel notch instead of a pointer state change.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheel   float64
	button  MouseButton
}

// InjectPress queues a pointer press event at the given coordinates (left
// button). The event is consumed on the next Update's input pass.
func (v *ScrollView) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (v *ScrollView) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given coordinates.
func (v *ScrollView) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (v *ScrollView) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectWheel queues one wheel notch at the given cursor position.
// Positive dy scrolls toward the top, matching ebiten.Wheel.
func (v *ScrollView) InjectWheel(x, y, dy float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: x, y: y, wheel: dy})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (v *ScrollView) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		v.InjectMove(x, y)
	}
	v.InjectRelease(toX, toY)
}

// processInjected pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input is skipped for the frame).
func (v *ScrollView) processInjected(dt float64) bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	if evt.wheel != 0 {
		v.wheelScroll(evt.x, evt.y, evt.wheel)
	} else {
		v.processPointer(evt.x, evt.y, evt.pressed, evt.button, dt)
	}
	return true
}
