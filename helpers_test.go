package tether

// box is a minimal Element used across the tests.
type box struct {
	r        Rect
	parent   *box
	disposed bool
}

func newBox(x, y, w, h int) *box {
	return &box{r: Rect{X: x, Y: y, Width: w, Height: h}}
}

func (b *box) Bounds() Rect { return b.r }

func (b *box) ParentElement() Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func (b *box) IsDisposed() bool { return b.disposed }

// recorder captures every callback invocation.
type recorder struct {
	updates  []Update
	sources  [][2]Element
	targets  [][2]Element
	states   []bool
	allow    bool
	gateHits int
}

func newRecorder() *recorder {
	return &recorder{allow: true}
}

func (r *recorder) OnUpdate(u Update) { r.updates = append(r.updates, u) }

func (r *recorder) OnSourceChanged(prev, next Element) {
	r.sources = append(r.sources, [2]Element{prev, next})
}

func (r *recorder) OnTargetChanged(prev, next Element) {
	r.targets = append(r.targets, [2]Element{prev, next})
}

func (r *recorder) CanUpdate(source, target Element) bool {
	r.gateHits++
	return r.allow
}

func (r *recorder) OnStateChanged(running bool) { r.states = append(r.states, running) }

func (r *recorder) last() Update { return r.updates[len(r.updates)-1] }

// surface is a FrameSource test double built on FrameHooks.
type surface struct {
	FrameHooks
	dead bool
}

func (s *surface) Alive() bool { return !s.dead && s.FrameHooks.Alive() }

// newTracked returns a tracker with source and target wired through strong
// handles, and its recorder.
func newTracked(source, target *box) (*Tracker, *recorder) {
	rec := newRecorder()
	tr := NewTracker()
	tr.SetCallback(rec)
	tr.SetSource(Strong(source))
	tr.SetTarget(Strong(target))
	return tr, rec
}
