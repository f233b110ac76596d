// Package scene is a small retained-mode scene graph on [Ebitengine] that
// hosts tether trackers.
//
// Every element is a [Node]: a rectangle with a local transform, parented
// under [Scene.Root]. Nodes implement [tether.Element], so they can be the
// source, target or dynamic margin provider of a [tether.Tracker]. A
// [Scene] is a [tether.FrameSource]: bind a tracker to it and the tracker
// runs once per [Scene.Update], after transforms and tweens have advanced.
//
//	s := scene.NewScene()
//	target := scene.NewNode("target", 80, 40)
//	badge := scene.NewNode("badge", 20, 10)
//	s.Root().AddChild(target)
//	s.Root().AddChild(badge)
//
//	tr := tether.NewTracker()
//	tr.SetSource(badge.Handle())
//	tr.SetTarget(target.Handle())
//	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
//		badge.PlaceAt(u.Position())
//	}))
//	tr.SetSurface(s.SurfaceHandle())
//	tr.Start()
//
//	scene.Run(s, scene.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// Tweens (via [gween]) move and resize nodes; attach them with
// [Scene.Animate] and trackers follow every intermediate frame.
//
// Like the rest of tether, a scene is single-threaded: build and mutate it
// from the ebiten game loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scene
