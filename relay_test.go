package stickyscroll

import (
	"testing"
)

// scrollOnly implements just ScrollListener.
type scrollOnly struct {
	events []ScrollEvent
	// header alpha observed at notification time, to prove the sticky
	// recompute runs before the observer is told.
	seenAlpha []float64
	header    *Node
}

func (s *scrollOnly) OnScroll(e ScrollEvent) {
	s.events = append(s.events, e)
	if s.header != nil {
		s.seenAlpha = append(s.seenAlpha, s.header.Alpha)
	}
}

// fullObserver implements every listener interface.
type fullObserver struct {
	scrolls    []ScrollEvent
	dragBegins []ScrollEvent
	dragEnds   []ScrollEvent
	decelBegan int
	decelEnded int
	done       int
}

func (f *fullObserver) OnScroll(e ScrollEvent)     { f.scrolls = append(f.scrolls, e) }
func (f *fullObserver) OnDragBegin(e ScrollEvent)  { f.dragBegins = append(f.dragBegins, e) }
func (f *fullObserver) OnDragEnd(e ScrollEvent)    { f.dragEnds = append(f.dragEnds, e) }
func (f *fullObserver) OnDecelBegin(e ScrollEvent) { f.decelBegan++ }
func (f *fullObserver) OnDecelEnd(e ScrollEvent)   { f.decelEnded++ }
func (f *fullObserver) OnScrollDone(e ScrollEvent) { f.done++ }

func TestSupportsWithoutObserver(t *testing.T) {
	v := newTestView()

	if !v.Supports(EventScroll) {
		t.Error("scroll events are always supported; the view itself consumes them")
	}
	for _, kind := range []EventKind{
		EventDragBegin, EventDragEnd, EventDecelBegin, EventDecelEnd, EventScrollDone,
	} {
		if v.Supports(kind) {
			t.Errorf("kind %v should be unsupported with no observer", kind)
		}
	}
}

func TestSupportsReflectsObserverCapabilities(t *testing.T) {
	v := newTestView()
	v.SetDelegate(&scrollOnly{})

	if !v.Supports(EventScroll) {
		t.Error("EventScroll should be supported")
	}
	if v.Supports(EventDragBegin) || v.Supports(EventScrollDone) {
		t.Error("kinds the observer does not implement must report unsupported")
	}

	v.SetDelegate(&fullObserver{})
	for _, kind := range []EventKind{
		EventScroll, EventDragBegin, EventDragEnd,
		EventDecelBegin, EventDecelEnd, EventScrollDone,
	} {
		if !v.Supports(kind) {
			t.Errorf("kind %v should be supported by a full observer", kind)
		}
	}
}

func TestDelegateTransparency(t *testing.T) {
	v := newTestView()
	obs := &fullObserver{}
	v.SetDelegate(obs)

	got := v.Delegate()
	if got != obs {
		t.Error("Delegate must return exactly what was set, never the relay")
	}

	v.SetDelegate(nil)
	if v.Delegate() != nil {
		t.Error("clearing the delegate should stick")
	}
}

func TestScrollForwardingFidelity(t *testing.T) {
	v := newTestView()
	obs := &scrollOnly{}
	v.SetDelegate(obs)

	v.SetScrollOffset(120)
	v.ScrollBy(30)

	if len(obs.events) != 2 {
		t.Fatalf("got %d events, want 2", len(obs.events))
	}
	if obs.events[0].Offset.Y != 120 || obs.events[0].Delta.Y != 120 {
		t.Errorf("event 0 = %+v, want offset 120 delta 120", obs.events[0])
	}
	if obs.events[1].Offset.Y != 150 || obs.events[1].Delta.Y != 30 {
		t.Errorf("event 1 = %+v, want offset 150 delta 30", obs.events[1])
	}
	if obs.events[0].Dragging || obs.events[0].Decelerating {
		t.Error("programmatic scroll should carry no gesture flags")
	}
}

func TestRecomputeRunsBeforeForwarding(t *testing.T) {
	v := newTestView()
	header := newTestHeader(v)
	v.SetStickyDisplayHeight(50)
	v.SetAlphaRatio(1)

	obs := &scrollOnly{header: header}
	v.SetDelegate(obs)

	v.SetScrollOffset(25)

	if len(obs.seenAlpha) != 1 {
		t.Fatalf("got %d notifications, want 1", len(obs.seenAlpha))
	}
	// alpha = (50 - 25) / 50 = 0.5, already applied when the observer ran
	if !approxEqual(obs.seenAlpha[0], 0.5) {
		t.Errorf("observer saw alpha %v, want 0.5 (recompute must precede forwarding)", obs.seenAlpha[0])
	}
}

func TestRecomputeHappensWithoutObserver(t *testing.T) {
	v := newTestView()
	header := newTestHeader(v)
	v.SetStickyDisplayHeight(50)

	v.SetScrollOffset(25) // no delegate set

	if header.Alpha == 1 {
		t.Error("sticky effect must apply even with no observer attached")
	}
}

func TestUnchangedOffsetEmitsNothing(t *testing.T) {
	v := newTestView()
	obs := &scrollOnly{}
	v.SetDelegate(obs)

	v.SetScrollOffset(100)
	v.SetScrollOffset(100)

	if len(obs.events) != 1 {
		t.Errorf("got %d events, want 1 (no-op offset writes are silent)", len(obs.events))
	}
}
