package stickyscroll

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the single active pointer (mouse or first touch).
type pointerState struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	// startOffset is the scroll offset captured at press time; drag
	// movement is applied relative to it.
	startOffset float64
	dragging    bool
	// scrollable records whether the press landed where the view handles
	// gestures. A press in the pass-through region can still click sticky
	// header children but never starts a scroll drag.
	scrollable bool
	hitNode    *Node
	button     MouseButton
}

// SetDragDeadZone sets the minimum vertical movement in pixels before a
// drag starts scrolling.
func (v *ScrollView) SetDragDeadZone(pixels float64) {
	v.dragDeadZone = pixels
}

// SetWheelLineHeight sets how many pixels one wheel notch scrolls.
func (v *ScrollView) SetWheelLineHeight(pixels float64) {
	v.wheelLineHeight = pixels
}

// processInput handles one frame of input: one injected event if queued,
// otherwise the real mouse wheel, mouse button, and first touch.
func (v *ScrollView) processInput(dt float64) {
	if v.processInjected(dt) {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	_, wy := ebiten.Wheel()
	v.wheelScroll(x, y, wy)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	button := MouseButtonLeft
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && !pressed {
		pressed = true
		button = MouseButtonRight
	}

	// The first touch takes over from the mouse.
	v.touchBuf = ebiten.AppendTouchIDs(v.touchBuf[:0])
	if len(v.touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(v.touchBuf[0])
		x, y = float64(tx), float64(ty)
		pressed = true
		button = MouseButtonLeft
	}

	v.processPointer(x, y, pressed, button, dt)
}

// wheelScroll applies a wheel delta at the given cursor position. Wheel
// input never overscrolls; the offset is clamped to the valid range.
func (v *ScrollView) wheelScroll(x, y, dy float64) {
	if dy == 0 {
		return
	}
	if !v.Viewport.Contains(x, y) || !v.HandlesPoint(x, y) {
		return
	}
	v.stopKinetics()
	v.setOffset(clamp(v.offset.Y-dy*v.wheelLineHeight, 0, v.MaxOffset()))
}

// processPointer runs the pointer state machine for one frame.
func (v *ScrollView) processPointer(x, y float64, pressed bool, button MouseButton, dt float64) {
	ps := &v.pointer

	switch {
	case pressed && !ps.down:
		if !v.Viewport.Contains(x, y) {
			return
		}
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.startOffset = v.offset.Y
		ps.dragging = false
		ps.scrollable = v.HandlesPoint(x, y)
		ps.hitNode = v.NodeAt(x, y)
		if ps.scrollable {
			// Grabbing a moving list stops it.
			v.stopKinetics()
		}
		v.firePointerDown(ps.hitNode, x, y, button)

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY && !ps.dragging {
			return
		}
		if !ps.dragging && ps.scrollable && math.Abs(y-ps.startY) > v.dragDeadZone {
			ps.dragging = true
			v.relay.dragBegan(v.makeEvent(0))
		}
		if ps.dragging {
			prev := v.offset.Y
			v.setOffset(v.rubberBand(ps.startOffset - (y - ps.startY)))
			if dt > 0 {
				sample := (v.offset.Y - prev) / dt
				v.velocityY = velocitySmoothing*sample + (1-velocitySmoothing)*v.velocityY
			}
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if ps.dragging {
			e := v.makeEvent(0) // Dragging still true in the payload
			e.WillDecelerate = v.willDecelerate()
			ps.dragging = false
			v.relay.dragEnded(e)
			v.endDragKinetics()
		} else if ps.hitNode != nil && ps.hitNode == v.NodeAt(x, y) {
			v.fireClick(ps.hitNode, x, y, ps.button)
		}
		v.firePointerUp(ps.hitNode, x, y, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
}

// nodeLocal converts a view-space point to a node's local space,
// accounting for whether the node lives in the scrolled content tree or
// the fixed sticky subtree.
func (v *ScrollView) nodeLocal(n *Node, x, y float64) (float64, float64) {
	wx := x - v.Viewport.X
	wy := y - v.Viewport.Y
	if v.sticky == nil || !isAncestor(v.sticky, n) {
		wy += v.offset.Y
	}
	return n.WorldToLocal(wx, wy)
}

func (v *ScrollView) firePointerDown(n *Node, x, y float64, button MouseButton) {
	if n == nil || n.OnPointerDown == nil {
		return
	}
	lx, ly := v.nodeLocal(n, x, y)
	n.OnPointerDown(PointerContext{
		Node: n, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly, Button: button,
	})
}

func (v *ScrollView) firePointerUp(n *Node, x, y float64, button MouseButton) {
	if n == nil || n.OnPointerUp == nil {
		return
	}
	lx, ly := v.nodeLocal(n, x, y)
	n.OnPointerUp(PointerContext{
		Node: n, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly, Button: button,
	})
}

func (v *ScrollView) fireClick(n *Node, x, y float64, button MouseButton) {
	if n == nil || n.OnClick == nil {
		return
	}
	lx, ly := v.nodeLocal(n, x, y)
	n.OnClick(ClickContext{
		Node: n, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly, Button: button,
	})
}
