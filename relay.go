package stickyscroll

// delegateRelay sits between the view's internal scroll notifications and
// the caller-supplied delegate. Every notification passes through it: the
// offset-changed notification first triggers the sticky recompute, then is
// forwarded verbatim to the delegate if the delegate's type supports it.
// External code never sees the relay; ScrollView.SetDelegate and
// ScrollView.Delegate redirect to its observer field.
type delegateRelay struct {
	view     *ScrollView
	observer any // caller-supplied delegate, non-owning, may be nil
}

// Supports reports whether the relay chain handles the given notification
// kind: true if the relay handles it itself, or the attached observer's
// type implements the matching listener interface. The offset-changed
// notification is always supported, since the relay itself consumes it to
// drive the sticky effect.
func (r *delegateRelay) Supports(kind EventKind) bool {
	switch kind {
	case EventScroll:
		return true
	case EventDragBegin, EventDragEnd:
		_, ok := r.observer.(DragListener)
		return ok
	case EventDecelBegin, EventDecelEnd:
		_, ok := r.observer.(DecelerationListener)
		return ok
	case EventScrollDone:
		_, ok := r.observer.(ScrollDoneListener)
		return ok
	}
	return false
}

// scrolled handles the offset-changed notification. The sticky recompute
// runs unconditionally and strictly before the delegate is notified.
func (r *delegateRelay) scrolled(e ScrollEvent) {
	r.view.applyStickyEffect()
	if l, ok := r.observer.(ScrollListener); ok {
		l.OnScroll(e)
	}
}

func (r *delegateRelay) dragBegan(e ScrollEvent) {
	if l, ok := r.observer.(DragListener); ok {
		l.OnDragBegin(e)
	}
}

func (r *delegateRelay) dragEnded(e ScrollEvent) {
	if l, ok := r.observer.(DragListener); ok {
		l.OnDragEnd(e)
	}
}

func (r *delegateRelay) decelBegan(e ScrollEvent) {
	if l, ok := r.observer.(DecelerationListener); ok {
		l.OnDecelBegin(e)
	}
}

func (r *delegateRelay) decelEnded(e ScrollEvent) {
	if l, ok := r.observer.(DecelerationListener); ok {
		l.OnDecelEnd(e)
	}
}

func (r *delegateRelay) scrollDone(e ScrollEvent) {
	if l, ok := r.observer.(ScrollDoneListener); ok {
		l.OnScrollDone(e)
	}
}
