package scene

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tether"
)

// Scene owns the node tree and is the redraw surface trackers register on.
// Each Update refreshes world transforms, advances attached tweens and then
// fires the frame hooks, so hooks read this frame's geometry and any nodes
// they move are drawn at their new place.
type Scene struct {
	tether.FrameHooks

	root   *Node
	tweens []*TweenGroup
	debug  bool

	// dt overrides the per-Update time step in seconds; zero uses 1/TPS.
	dt float32
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes transforms, advances tweens and fires frame hooks. It
// returns false when a hook asked for the coming draw to be skipped.
func (s *Scene) Update() bool {
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, false)
	s.advanceTweens(s.step())

	if s.debug {
		stats.transformTime = time.Since(t0)
		stats.hooks = s.NumFrameHooks()
		t0 = time.Now()
	}

	proceed := s.Tick()

	if s.debug {
		stats.hookTime = time.Since(t0)
		s.debugLog(stats)
	}
	return proceed
}

// Animate attaches a tween group; it is advanced every Update and dropped
// once done.
func (s *Scene) Animate(g *TweenGroup) {
	if g != nil && !g.Done {
		s.tweens = append(s.tweens, g)
	}
}

// NumTweens returns the number of running tween groups.
func (s *Scene) NumTweens() int {
	return len(s.tweens)
}

func (s *Scene) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live
}

// SetStep fixes the time step used by Update, in seconds. Zero restores
// 1/TPS. Useful for deterministic tests and replays.
func (s *Scene) SetStep(dt float32) {
	s.dt = dt
}

func (s *Scene) step() float32 {
	if s.dt > 0 {
		return s.dt
	}
	return float32(1.0 / float64(ebiten.TPS()))
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported and per-frame timings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	}
}

// SurfaceHandle returns a weak handle to s for [tether.Tracker.SetSurface].
func (s *Scene) SurfaceHandle() tether.SurfaceHandle {
	return tether.WeakSurface(s)
}

// Close tears the scene down as a redraw surface. Registered trackers stop
// on their next query and no new hooks are accepted.
func (s *Scene) Close() {
	s.FrameHooks.Close()
	s.tweens = nil
}
