package scene

import (
	"testing"

	"github.com/phanxgames/tether"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("box", 20, 10)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "box" {
		t.Errorf("Name = %q, want %q", n.Name, "box")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if got := n.Bounds(); got != (tether.Rect{Width: 20, Height: 10}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestNodeIDsAreUnique(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}

func TestAddChildReparents(t *testing.T) {
	p1, p2 := NewContainer("p1"), NewContainer("p2")
	c := NewNode("c", 1, 1)
	p1.AddChild(c)
	p2.AddChild(c)
	if c.Parent != p2 {
		t.Error("child should belong to p2")
	}
	if p1.NumChildren() != 0 {
		t.Errorf("p1 children = %d, want 0", p1.NumChildren())
	}
	if p2.NumChildren() != 1 || p2.Children()[0] != c {
		t.Error("p2 should hold c")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParent(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewNode("a", 1, 1), NewNode("b", 1, 1), NewNode("c", 1, 1)
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	b.RemoveFromParent()
	if b.Parent != nil {
		t.Error("b should be detached")
	}
	kids := p.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != c {
		t.Errorf("children = %v, want [a c]", kids)
	}
	// No-op when already detached.
	b.RemoveFromParent()
}

func TestParentElement(t *testing.T) {
	p := NewContainer("p")
	c := NewNode("c", 1, 1)
	if c.ParentElement() != nil {
		t.Error("detached node should have no parent element")
	}
	p.AddChild(c)
	if c.ParentElement() != tether.Element(p) {
		t.Error("ParentElement should be p")
	}
}

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	p := NewContainer("p")
	c := NewNode("c", 1, 1)
	root.AddChild(p)
	p.AddChild(c)

	var disposed []string
	p.OnDispose = func(n *Node) { disposed = append(disposed, n.Name) }
	c.OnDispose = func(n *Node) { disposed = append(disposed, n.Name) }

	p.Dispose()
	if !p.IsDisposed() || !c.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("p should be removed from root")
	}
	if len(disposed) != 2 || disposed[0] != "c" || disposed[1] != "p" {
		t.Errorf("OnDispose order = %v, want [c p]", disposed)
	}

	p.Dispose()
	if len(disposed) != 2 {
		t.Error("second Dispose should be a no-op")
	}
}

func TestDisposedNodeHandleIsAbsent(t *testing.T) {
	n := NewNode("n", 4, 4)
	h := n.Handle()
	if h.Element() == nil {
		t.Fatal("live node should resolve")
	}
	n.Dispose()
	// The weak handle still reaches the node; the tracker treats it as
	// absent through IsDisposed.
	d, ok := h.Element().(tether.Disposable)
	if !ok || !d.IsDisposed() {
		t.Error("handle should expose the disposed node")
	}
}

func TestDebugDisposedAddChildPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })

	n := NewNode("n", 1, 1)
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.Root().AddChild(n)
}
