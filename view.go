package stickyscroll

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultScaleRatio      = 1.0
	defaultAlphaRatio      = 0.7
	defaultParallaxRatio   = 0.3
	defaultWheelLineHeight = 40.0
)

// stickyRegime identifies which branch of the sticky effect applied last.
type stickyRegime uint8

const (
	regimeNone     stickyRegime = iota // no sticky node, or effect inactive
	regimeStretch                      // overscrolled past the top, header growing
	regimeParallax                     // scrolling away, header lagging and fading
)

// ScrollView is a vertical scroll container with a sticky header effect.
// It owns a content node tree and a set of configuration parameters; the
// sticky header node itself is externally owned and merely referenced.
//
// All operations run synchronously on the game loop. ScrollView is not
// safe for concurrent use.
type ScrollView struct {
	// Viewport is the screen-space rectangle this view renders into and
	// accepts input from.
	Viewport Rect
	// ClearColor fills the viewport before drawing when its alpha is > 0.
	ClearColor Color
	// ScreenshotDir is where labeled screenshots are written.
	ScreenshotDir string

	content       *Node
	contentHeight float64
	offset        Vec2 // only Y is used

	// Sticky header configuration. The node reference is non-owning: the
	// view never creates, disposes, or sizes it.
	sticky        *Node
	stickyLeft    float64 // the node's untransformed left edge, captured at set time
	stickyHeight  float64
	scaleRatio    float64
	alphaRatio    float64
	parallaxRatio float64
	stickyGesture bool
	lastRegime    stickyRegime

	// relay is owned 1:1, created at construction, never replaced.
	relay *delegateRelay

	// Input state
	pointer         pointerState
	dragDeadZone    float64
	wheelLineHeight float64
	injectQueue     []syntheticEvent
	touchBuf        []ebiten.TouchID

	// Kinetics state
	velocityY    float64
	decelerating bool
	anim         *scrollAnim

	updateFunc      func() error
	testRunner      *TestRunner
	screenshotQueue []string
	debug           bool
}

// NewScrollView creates a scroll view rendering into the given viewport,
// with the delegate relay wired immediately.
func NewScrollView(viewport Rect) *ScrollView {
	v := &ScrollView{
		Viewport:        viewport,
		ScreenshotDir:   "screenshots",
		content:         NewContainer("content"),
		scaleRatio:      defaultScaleRatio,
		alphaRatio:      defaultAlphaRatio,
		parallaxRatio:   defaultParallaxRatio,
		stickyGesture:   true,
		dragDeadZone:    defaultDragDeadZone,
		wheelLineHeight: defaultWheelLineHeight,
	}
	v.relay = &delegateRelay{view: v}
	return v
}

// Content returns the root container for scrollable content nodes.
func (v *ScrollView) Content() *Node {
	return v.content
}

// SetContentHeight sets the total scrollable content height.
func (v *ScrollView) SetContentHeight(h float64) {
	v.contentHeight = h
}

// ContentHeight returns the total scrollable content height.
func (v *ScrollView) ContentHeight() float64 {
	return v.contentHeight
}

// --- Sticky configuration (see the package doc for the effect) ---

// SetStickyView assigns the externally owned sticky header node. The view
// manages the node's scale, vertical position, pivot, and alpha from then
// on; its horizontal placement at set time is preserved. Pass nil to
// detach. The node's natural size must be set (image nodes get it from
// their image bounds).
func (v *ScrollView) SetStickyView(n *Node) {
	v.sticky = n
	if n != nil {
		v.stickyLeft = n.X - n.ScaleX*n.PivotX
	}
}

// SetStickyImage assigns the sticky header node. Alias for SetStickyView.
func (v *ScrollView) SetStickyImage(n *Node) {
	v.SetStickyView(n)
}

// StickyView returns the sticky header node, or nil.
func (v *ScrollView) StickyView() *Node {
	return v.sticky
}

// SetStickyDisplayHeight sets the sticky/fade threshold in pixels.
// Zero disables the parallax/fade regime entirely.
func (v *ScrollView) SetStickyDisplayHeight(h float64) {
	v.stickyHeight = h
}

// StickyDisplayHeight returns the sticky/fade threshold.
func (v *ScrollView) StickyDisplayHeight() float64 {
	return v.stickyHeight
}

// SetScaleRatio sets the overscroll stretch sensitivity. Intended domain
// is [0, 1]; values are not clamped, out-of-range values produce
// out-of-range scales.
func (v *ScrollView) SetScaleRatio(r float64) { v.scaleRatio = r }

// ScaleRatio returns the overscroll stretch sensitivity.
func (v *ScrollView) ScaleRatio() float64 { return v.scaleRatio }

// SetAlphaRatio sets the fade sensitivity. Intended domain is [0, 1];
// values are not clamped.
func (v *ScrollView) SetAlphaRatio(r float64) { v.alphaRatio = r }

// AlphaRatio returns the fade sensitivity.
func (v *ScrollView) AlphaRatio() float64 { return v.alphaRatio }

// SetParallaxRatio sets the fraction of true scroll distance applied to
// the header's displacement. Intended domain is [0, 1]; values are not
// clamped.
func (v *ScrollView) SetParallaxRatio(r float64) { v.parallaxRatio = r }

// ParallaxRatio returns the parallax fraction.
func (v *ScrollView) ParallaxRatio() float64 { return v.parallaxRatio }

// SetGestureEnabledInStickyRegion controls whether pointer input over the
// sticky region is consumed by the view (true, default) or passed through
// to whatever lies beneath it (false).
func (v *ScrollView) SetGestureEnabledInStickyRegion(enabled bool) {
	v.stickyGesture = enabled
}

// GestureEnabledInStickyRegion reports whether the view consumes pointer
// input over the sticky region.
func (v *ScrollView) GestureEnabledInStickyRegion() bool {
	return v.stickyGesture
}

// --- Delegate ---

// SetDelegate sets the caller's scroll delegate. The delegate may
// implement any subset of ScrollListener, DragListener,
// DecelerationListener, and ScrollDoneListener. Nil detaches.
func (v *ScrollView) SetDelegate(d any) {
	v.relay.observer = d
}

// Delegate returns the delegate previously set with SetDelegate, or nil.
func (v *ScrollView) Delegate() any {
	return v.relay.observer
}

// Supports reports whether this view's notification chain handles the
// given event kind: EventScroll is always supported (the view itself
// consumes it); other kinds are supported iff the delegate's type
// implements the matching listener interface.
func (v *ScrollView) Supports(kind EventKind) bool {
	return v.relay.Supports(kind)
}

// --- Offset ---

// ScrollOffset returns the current scroll offset. Only Y is meaningful.
func (v *ScrollView) ScrollOffset() Vec2 {
	return v.offset
}

// MaxOffset returns the largest resting scroll offset: content height
// minus viewport height, floored at zero.
func (v *ScrollView) MaxOffset() float64 {
	m := v.contentHeight - v.Viewport.Height
	if m < 0 {
		return 0
	}
	return m
}

// SetScrollOffset jumps to the given offset, clamped to the valid range.
// Any running scroll animation or fling is cancelled.
func (v *ScrollView) SetScrollOffset(y float64) {
	v.stopKinetics()
	v.setOffset(clamp(y, 0, v.MaxOffset()))
}

// ScrollBy scrolls by the given delta, clamped to the valid range.
func (v *ScrollView) ScrollBy(dy float64) {
	v.SetScrollOffset(v.offset.Y + dy)
}

// setOffset is the single funnel for offset changes. Every change emits
// the offset-changed notification through the relay, which applies the
// sticky effect before forwarding to the delegate.
func (v *ScrollView) setOffset(y float64) {
	if y == v.offset.Y {
		return
	}
	delta := y - v.offset.Y
	v.offset.Y = y
	v.relay.scrolled(v.makeEvent(delta))
}

// makeEvent builds the notification payload for the current state.
func (v *ScrollView) makeEvent(delta float64) ScrollEvent {
	return ScrollEvent{
		Offset:       v.offset,
		Delta:        Vec2{Y: delta},
		Dragging:     v.pointer.dragging,
		Decelerating: v.decelerating,
	}
}

// --- Sticky effect ---

// applyStickyEffect recomputes the sticky node's scale, vertical position,
// and alpha from the current offset and configuration. Total over its
// preconditions: with no sticky node, or a node of zero height, it does
// nothing. Idempotent: every output is a pure function of current state.
func (v *ScrollView) applyStickyEffect() {
	n := v.sticky
	if n == nil {
		return
	}
	h := n.H
	if h <= 0 {
		return
	}
	w := n.W
	y := -v.offset.Y // pull distance: positive when overscrolled above the top

	var regime stickyRegime
	if y > 0 {
		// Stretch: grow uniformly about the node's center, top edge pinned
		// to the viewport top, fully opaque.
		scale := 1 + (y/h)*v.scaleRatio
		n.PivotX, n.PivotY = w/2, h/2
		n.X = v.stickyLeft + w/2
		n.Y = h / 2
		n.ScaleX, n.ScaleY = scale, scale
		n.Alpha = 1
		n.transformDirty = true
		regime = regimeStretch
	} else {
		if v.stickyHeight <= 0 {
			// Fade disabled; leave the node untouched.
			return
		}
		// Parallax: lag behind the scroll and fade linearly. Beyond the
		// sticky height the pull distance is clamped, so the header holds
		// its final position and floor alpha deterministically.
		if y < -v.stickyHeight {
			y = -v.stickyHeight
		}
		n.PivotX, n.PivotY = w/2, h/2
		n.X = v.stickyLeft + w/2
		n.Y = h/2 + y*v.parallaxRatio
		n.ScaleX, n.ScaleY = 1, 1 // reset any stretch left by the other regime
		n.Alpha = (v.stickyHeight + y*v.alphaRatio) / v.stickyHeight
		n.transformDirty = true
		regime = regimeParallax
	}

	if v.debug && regime != v.lastRegime {
		debugLogRegime(regime, v.offset.Y)
	}
	v.lastRegime = regime
}

// --- Hit testing ---

// HandlesPoint decides whether a pointer event at the given view-space
// point should be handled by this view or passed through to whatever lies
// beneath it. With gestures enabled in the sticky region (default) it is
// always true; otherwise points inside the full-width sticky rectangle at
// the viewport origin are passed through.
func (v *ScrollView) HandlesPoint(x, y float64) bool {
	if v.stickyGesture {
		return true
	}
	r := Rect{X: v.Viewport.X, Y: v.Viewport.Y, Width: v.Viewport.Width, Height: v.stickyHeight}
	return !r.Contains(x, y)
}

// NodeAt returns the topmost interactable node under the view-space point:
// content nodes first (they draw above the header), then the sticky
// header subtree. Returns nil if nothing is hit.
func (v *ScrollView) NodeAt(x, y float64) *Node {
	cx := x - v.Viewport.X
	cy := y - v.Viewport.Y + v.offset.Y
	if hit := hitTestTree(v.content, cx, cy); hit != nil {
		return hit
	}
	if v.sticky != nil {
		return hitTestTree(v.sticky, x-v.Viewport.X, y-v.Viewport.Y)
	}
	return nil
}

// hitTestTree finds the topmost interactable node at (wx, wy) in the
// tree's own world space. Children are searched before their parent, last
// child first (reverse painter order).
func hitTestTree(n *Node, wx, wy float64) *Node {
	if !n.Visible {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTestTree(n.children[i], wx, wy); hit != nil {
			return hit
		}
	}
	if !n.Interactable {
		return nil
	}
	lx, ly := n.WorldToLocal(wx, wy)
	if nodeContainsLocal(n, lx, ly) {
		return n
	}
	return nil
}

// --- Frame loop ---

// SetUpdateFunc registers a per-frame callback invoked at the start of
// Update, before input and kinetics.
func (v *ScrollView) SetUpdateFunc(fn func() error) {
	v.updateFunc = fn
}

// Update advances one frame: test script, user callback, scroll
// animations, input, the sticky recompute, world transforms, and per-node
// OnUpdate hooks. Call once per ebiten tick.
func (v *ScrollView) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	if v.updateFunc != nil {
		if err := v.updateFunc(); err != nil {
			return err
		}
	}

	v.updateKinetics(float32(dt))
	v.processInput(dt)

	runUpdateHooks(v.content, dt)
	if v.sticky != nil {
		runUpdateHooks(v.sticky, dt)
	}

	// Pick up configuration changes made since the last offset change.
	v.applyStickyEffect()

	updateWorldTransform(v.content, identityTransform, 1.0, false)
	if v.sticky != nil {
		updateWorldTransform(v.sticky, identityTransform, 1.0, false)
	}
	return nil
}

// runUpdateHooks invokes OnUpdate on the node and its descendants.
func runUpdateHooks(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		runUpdateHooks(child, dt)
	}
}

// Draw renders the view into its viewport on the given screen: clear
// color, sticky header, then content translated by the scroll offset.
func (v *ScrollView) Draw(screen *ebiten.Image) {
	vp := v.Viewport
	clip := screen
	if vp.Width > 0 && vp.Height > 0 {
		clip = screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
	}
	if v.ClearColor.A > 0 {
		clip.Fill(v.ClearColor.toRGBA())
	}

	if v.sticky != nil {
		drawNode(clip, v.sticky, vp.X, vp.Y)
	}
	drawNode(clip, v.content, vp.X, vp.Y-v.offset.Y)

	v.flushScreenshots(screen)
}

// drawNode draws a node subtree in painter order, offset by (ox, oy).
func drawNode(dst *ebiten.Image, n *Node, ox, oy float64) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeImage && n.worldAlpha > 0 && n.W > 0 && n.H > 0 {
		img := n.Image
		if img == nil {
			img = WhitePixel
		}
		b := img.Bounds()

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.W/float64(b.Dx()), n.H/float64(b.Dy()))

		var world ebiten.GeoM
		m := n.worldTransform
		world.SetElement(0, 0, m[0])
		world.SetElement(0, 1, m[2])
		world.SetElement(0, 2, m[4])
		world.SetElement(1, 0, m[1])
		world.SetElement(1, 1, m[3])
		world.SetElement(1, 2, m[5])
		op.GeoM.Concat(world)
		op.GeoM.Translate(ox, oy)

		c := n.Color
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
		op.Filter = ebiten.FilterLinear

		dst.DrawImage(img, &op)
	}
	for _, child := range n.children {
		drawNode(dst, child, ox, oy)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and regime transitions are logged to stderr.
func (v *ScrollView) SetDebugMode(enabled bool) {
	v.debug = enabled
	globalDebug = enabled
}
