package stickyscroll

// EventKind identifies a kind of scroll notification.
type EventKind uint8

const (
	EventScroll     EventKind = iota // fires on every scroll offset change
	EventDragBegin                   // fires when pointer movement exceeds the drag dead zone
	EventDragEnd                     // fires when the pointer is released after dragging
	EventDecelBegin                  // fires when a fling starts decelerating
	EventDecelEnd                    // fires when deceleration comes to rest
	EventScrollDone                  // fires when a ScrollTo animation completes
)

// ScrollEvent is the payload delivered with every scroll notification.
// The same value the view produced is forwarded to the delegate unmodified.
type ScrollEvent struct {
	// Offset is the current scroll offset. Only Y is used; positive means
	// the content has moved up (scrolled down).
	Offset Vec2
	// Delta is the offset change since the previous notification.
	// Zero for notifications that do not move the offset.
	Delta Vec2
	// Dragging is true while a pointer drag is driving the offset.
	Dragging bool
	// Decelerating is true while a fling is coasting.
	Decelerating bool
	// WillDecelerate is set on EventDragEnd when the release velocity is
	// high enough to start a fling.
	WillDecelerate bool
}

// ScrollListener receives offset-changed notifications.
type ScrollListener interface {
	OnScroll(e ScrollEvent)
}

// DragListener receives drag lifecycle notifications.
type DragListener interface {
	OnDragBegin(e ScrollEvent)
	OnDragEnd(e ScrollEvent)
}

// DecelerationListener receives fling deceleration notifications.
type DecelerationListener interface {
	OnDecelBegin(e ScrollEvent)
	OnDecelEnd(e ScrollEvent)
}

// ScrollDoneListener is notified when a programmatic scroll animation
// (ScrollTo) reaches its target.
type ScrollDoneListener interface {
	OnScrollDone(e ScrollEvent)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)
