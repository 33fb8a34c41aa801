// Package stickyscroll is a vertical scroll container for [Ebitengine]
// with a "sticky header" background effect.
//
// A [ScrollView] owns a tree of content [Node]s and an optional sticky
// header node. When the user pulls down past the top, the header
// stretches; as the content scrolls up, the header parallax-scrolls
// behind it and fades out, holding in place once the scroll distance
// passes the configured sticky height.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	view := stickyscroll.NewScrollView(stickyscroll.Rect{Width: 400, Height: 640})
//	view.SetStickyImage(stickyscroll.NewImage("header", headerImg))
//	view.SetStickyDisplayHeight(120)
//	view.SetContentHeight(2000)
//	// ... add content nodes to view.Content() ...
//	stickyscroll.Run(view, stickyscroll.RunConfig{
//		Title: "My App", Width: 400, Height: 640,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [ScrollView.Update] and [ScrollView.Draw] directly.
//
// # Scroll notifications
//
// A caller-supplied delegate observes scrolling through
// [ScrollView.SetDelegate]. The delegate may implement any subset of
// [ScrollListener], [DragListener], [DecelerationListener], and
// [ScrollDoneListener]; only the notifications its type supports are
// delivered. The view always applies the sticky effect before the
// delegate sees an offset change, so the delegate observes a visual
// state consistent with the current offset.
//
// Scroll-to animations and overscroll snap-back are driven by [gween]
// tweens; pass any [ease.TweenFunc] to [ScrollView.ScrollTo].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package stickyscroll
