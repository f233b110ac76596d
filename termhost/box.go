package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
)

// Box is a labelled rectangle of terminal cells. Rect is relative to Parent
// when Parent is set, otherwise to the screen. A Box implements
// tether.Element, tether.Nested and tether.Disposable.
type Box struct {
	Rect   tether.Rect
	Label  string
	Style  tcell.Style
	Parent *Box
	Hidden bool

	disposed bool
}

// NewBox creates a box at (x, y) of w by h cells.
func NewBox(label string, x, y, w, h int) *Box {
	return &Box{
		Rect:  tether.Rect{X: x, Y: y, Width: w, Height: h},
		Label: label,
		Style: tcell.StyleDefault,
	}
}

// Bounds returns the box in screen cells.
func (b *Box) Bounds() tether.Rect {
	r := b.Rect
	for p := b.Parent; p != nil; p = p.Parent {
		r.X += p.Rect.X
		r.Y += p.Rect.Y
	}
	return r
}

// ParentElement returns the parent box, or nil.
func (b *Box) ParentElement() tether.Element {
	if b.Parent == nil {
		return nil
	}
	return b.Parent
}

// Handle returns a weak handle to the box.
func (b *Box) Handle() tether.Handle {
	return tether.Weak(b)
}

// PlaceAt moves the box's top-left to p, relative to its parent.
func (b *Box) PlaceAt(p tether.Point) {
	b.Rect.X, b.Rect.Y = p.X, p.Y
}

// Dispose marks the box gone. Trackers treat it as absent and hosts stop
// drawing it.
func (b *Box) Dispose() {
	b.disposed = true
}

// IsDisposed reports whether Dispose was called.
func (b *Box) IsDisposed() bool {
	return b.disposed
}

// draw fills the box and writes its label on the first row, clipped to the
// box and the screen.
func (b *Box) draw(s tcell.Screen) {
	r := b.Bounds()
	sw, sh := s.Size()
	for y := max(r.Y, 0); y < min(r.Bottom(), sh); y++ {
		for x := max(r.X, 0); x < min(r.Right(), sw); x++ {
			s.SetContent(x, y, ' ', nil, b.Style)
		}
	}
	if r.Y < 0 || r.Y >= sh {
		return
	}
	x := r.X
	for _, c := range b.Label {
		if x >= r.Right() || x >= sw {
			break
		}
		if x >= 0 {
			s.SetContent(x, r.Y, c, nil, b.Style)
		}
		x++
	}
}
