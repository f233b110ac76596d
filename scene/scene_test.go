package scene

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/tether"
)

// hookCounter is a FrameHook that counts its calls.
type hookCounter struct {
	calls int
	keep  bool
}

func (h *hookCounter) PreDraw() bool {
	h.calls++
	return h.keep
}

// badgeScene builds a target at (100,50) 80x40 and a 20x10 badge inside a
// HUD container at (10,10).
func badgeScene() (s *Scene, target, hud, badge *Node) {
	s = NewScene()
	target = NewNode("target", 80, 40)
	target.SetPosition(100, 50)
	hud = NewContainer("hud")
	hud.SetPosition(10, 10)
	badge = NewNode("badge", 20, 10)
	s.Root().AddChild(target)
	s.Root().AddChild(hud)
	hud.AddChild(badge)
	return s, target, hud, badge
}

// follow binds badge to target with a callback that moves the badge.
func follow(s *Scene, target, badge *Node, rule tether.Rule) (*tether.Tracker, *int) {
	updates := 0
	tr := tether.NewTracker()
	if err := tr.SetRule(rule); err != nil {
		panic(err)
	}
	if err := tr.SetSpace(tether.SpaceParent); err != nil {
		panic(err)
	}
	tr.SetSource(badge.Handle())
	tr.SetTarget(target.Handle())
	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
		updates++
		badge.PlaceAt(u.Position())
	}))
	tr.SetSurface(s.SurfaceHandle())
	return tr, &updates
}

func TestSceneIsFrameSource(t *testing.T) {
	var _ tether.FrameSource = NewScene()
}

func TestSceneUpdateFiresHooks(t *testing.T) {
	s := NewScene()
	a := &hookCounter{keep: true}
	b := &hookCounter{keep: true}
	s.AddFrameHook(a)
	s.AddFrameHook(b)
	s.AddFrameHook(a)

	if !s.Update() {
		t.Error("Update should proceed")
	}
	s.Update()
	if a.calls != 2 || b.calls != 2 {
		t.Errorf("calls = (%d, %d), want (2, 2)", a.calls, b.calls)
	}
	if n := s.NumFrameHooks(); n != 2 {
		t.Errorf("NumFrameHooks = %d, want 2", n)
	}

	s.RemoveFrameHook(b)
	s.Update()
	if b.calls != 2 {
		t.Errorf("removed hook called: %d", b.calls)
	}
}

func TestSceneUpdateReportsVeto(t *testing.T) {
	s := NewScene()
	veto := &hookCounter{}
	s.AddFrameHook(veto)
	if s.Update() {
		t.Error("Update should report a vetoed pass")
	}
	if veto.calls != 1 {
		t.Errorf("calls = %d, want 1", veto.calls)
	}
}

func TestTrackerFollowsTargetInParentSpace(t *testing.T) {
	s, target, _, badge := badgeScene()
	tr, updates := follow(s, target, badge, tether.TopRight)

	if !tr.Start() {
		t.Fatal("Start should succeed on a live scene")
	}
	if *updates != 1 {
		t.Errorf("updates after Start = %d, want 1", *updates)
	}
	if got := badge.Bounds().Origin(); got != (tether.Point{X: 160, Y: 50}) {
		t.Errorf("badge at %v, want (160,50)", got)
	}
	// Parent-space position, not world.
	if p, _ := tr.LastPosition(); p != (tether.Point{X: 150, Y: 40}) {
		t.Errorf("LastPosition = %v, want (150,40)", p)
	}

	target.SetPosition(200, 100)
	s.Update()
	if got := badge.Bounds().Origin(); got != (tether.Point{X: 260, Y: 100}) {
		t.Errorf("badge at %v after move, want (260,100)", got)
	}
	if *updates != 2 {
		t.Errorf("updates = %d, want 2", *updates)
	}
}

func TestTrackerPlacesBadgeUnderTransformedParent(t *testing.T) {
	cases := []struct {
		name     string
		sx, sy   float64
		rotation float64
	}{
		{"scaled", 2, 2, 0},
		{"uneven scale", 3, 0.5, 0},
		{"rotated", 1, 1, math.Pi / 2},
		{"scaled and rotated", 2, 2, math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, target, hud, badge := badgeScene()
			hud.SetScale(tc.sx, tc.sy)
			hud.SetRotation(tc.rotation)
			tr, _ := follow(s, target, badge, tether.TopLeft)

			if !tr.Start() {
				t.Fatal("Start should succeed on a live scene")
			}
			if got := badge.Bounds().Origin(); got != (tether.Point{X: 100, Y: 50}) {
				t.Errorf("badge at %v, want (100,50)", got)
			}

			target.SetPosition(30, 200)
			s.Update()
			if got := badge.Bounds().Origin(); got != (tether.Point{X: 30, Y: 200}) {
				t.Errorf("badge at %v after move, want (30,200)", got)
			}
		})
	}
}

func TestTrackerOutsideRuleNeverOverlaps(t *testing.T) {
	for _, rule := range tether.Rules() {
		name := rule.String()
		if !strings.Contains(name, "Outside") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			s, target, _, badge := badgeScene()
			tr, _ := follow(s, target, badge, rule)
			tr.Start()
			b, tg := badge.Bounds(), target.Bounds()
			overlap := b.X < tg.Right() && tg.X < b.Right() && b.Y < tg.Bottom() && tg.Y < b.Bottom()
			if overlap {
				t.Errorf("badge %v overlaps target %v", b, tg)
			}
		})
	}
}

func TestDisposedTargetSkipsUpdates(t *testing.T) {
	s, target, _, badge := badgeScene()
	tr, updates := follow(s, target, badge, tether.Center)
	tr.Start()

	target.Dispose()
	s.Update()
	s.Update()
	if *updates != 1 {
		t.Errorf("updates = %d, want 1", *updates)
	}
	if !tr.IsTracking() {
		t.Error("tracker stays registered while the scene lives")
	}
}

func TestDetachedSourceSkipsParentSpace(t *testing.T) {
	s, target, _, badge := badgeScene()
	tr, updates := follow(s, target, badge, tether.Center)
	tr.Start()

	badge.RemoveFromParent()
	s.Update()
	if *updates != 1 {
		t.Errorf("updates = %d, want 1", *updates)
	}
}

func TestSceneCloseStopsTrackers(t *testing.T) {
	s, target, _, badge := badgeScene()
	tr, updates := follow(s, target, badge, tether.TopLeft)

	var states []bool
	tr.SetCallback(&tether.Funcs{
		Update:       func(u tether.Update) { *updates++ },
		StateChanged: func(running bool) { states = append(states, running) },
	})
	tr.Start()
	s.Close()

	if tr.IsTracking() {
		t.Error("tracker should stop once the scene is closed")
	}
	if tr.Start() {
		t.Error("Start on a closed scene should fail")
	}
	if s.NumFrameHooks() != 0 {
		t.Errorf("NumFrameHooks = %d, want 0", s.NumFrameHooks())
	}
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("states = %v, want [true false]", states)
	}
}

func TestSceneDebugModeLogs(t *testing.T) {
	prev := logger
	SetLogger(log.New(io.Discard))
	t.Cleanup(func() { logger = prev })

	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })
	s.AddFrameHook(&hookCounter{keep: true})
	s.Update()
}
