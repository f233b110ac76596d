// Package tether keeps one element positioned relative to another.
//
// A [Tracker] reads the bounding boxes of a source and a target [Element],
// picks a spot for the source's top-left corner with a placement [Rule],
// adds a [Margin] and reports the result to a [Callback]. It never moves
// anything itself: the callback owns the side effect, so the same tracker
// drives an Ebitengine node, a terminal cell box or an ECS entity.
//
// # Rules
//
// Twenty-five rules cover the usual anchors:
//
//   - inside corners and edge centers: [TopLeft] through [BottomRight]
//   - single-axis alignment: [Left], [Top], [Right], [Bottom]; the other
//     coordinate stays where the source already is
//   - outside placements: [TopOutsideLeft] through [RightOutsideBottom];
//     the source sits next to the target without overlapping it
//
// [Resolve] is the pure function behind them. Centers use integer division,
// which truncates toward zero.
//
// # Handles
//
// Trackers hold elements through a [Handle]. [Weak] does not keep the
// element alive; [Strong] does. An element that was collected, or that
// reports [Disposable.IsDisposed], is absent, and the tracker skips its
// update rather than failing.
//
// # Continuous tracking
//
// Bind a tracker to a [FrameSource] with [Tracker.SetSurface] and call
// [Tracker.Start]. It updates once immediately and then once per frame,
// until [Tracker.Stop] or until the surface dies. Hosts embed [FrameHooks]
// to become a frame source.
//
//	tr := tether.NewTracker()
//	tr.SetSource(tether.Weak(badge))
//	tr.SetTarget(tether.Weak(avatar))
//	tr.SetRule(tether.TopOutsideRight)
//	tr.SetMargin(0, -4)
//	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
//		badge.MoveTo(u.Position())
//	}))
//	tr.SetSurface(tether.WeakSurface(scene))
//	tr.Start()
//
// Ready-made hosts live in the scene (Ebitengine) and termhost (tcell)
// packages; the ecs module forwards tracker activity into a Donburi world.
//
// Nothing in this package is safe for concurrent use. Drive trackers from
// the goroutine that runs the redraw loop.
package tether
