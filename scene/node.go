package scene

import (
	"github.com/phanxgames/tether"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill.
var ColorWhite = Color{1, 1, 1, 1}

// nodeIDCounter hands out node IDs. Scenes are single-threaded, so it needs no lock.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a rectangle in the scene graph. Children inherit their parent's
// transform. A Node implements tether.Element through its world-space
// bounding box, tether.Nested through its parent and tether.Disposable.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Width and Height size the node's rectangle before
	// scaling; the pivot is in the same unscaled units.
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64
	PivotY        float64

	// Computed during Scene.Update / Scene.Draw.
	worldTransform [6]float64
	transformDirty bool

	// Appearance
	Color   Color
	Visible bool
	ZIndex  int

	// OnDispose, if set, runs once when the node is disposed.
	OnDispose func(n *Node)

	disposed bool
}

// NewNode creates a visible node of the given size.
func NewNode(name string, w, h float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Width:          w,
		Height:         h,
		ScaleX:         1,
		ScaleY:         1,
		Color:          ColorWhite,
		Visible:        true,
		transformDirty: true,
	}
}

// NewContainer creates a zero-sized grouping node. It draws nothing itself.
func NewContainer(name string) *Node {
	return NewNode(name, 0, 0)
}

// --- tether.Element ---

// Bounds returns the node's axis-aligned bounding box in world space,
// rounded to whole pixels. It is computed from the current local transforms
// of the node and its ancestors, so it reflects changes made since the last
// Scene.Update.
func (n *Node) Bounds() tether.Rect {
	return roundRect(worldAABB(n.worldMatrix(), n.Width, n.Height))
}

// ParentElement returns the parent node, or nil for a root or detached node.
func (n *Node) ParentElement() tether.Element {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// Handle returns a weak handle to the node for use with a tether.Tracker.
func (n *Node) Handle() tether.Handle {
	return tether.Weak(n)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scene: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("scene: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scene: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Trackers holding the node see
// it as absent from then on.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	if fn := n.OnDispose; fn != nil {
		n.OnDispose = nil
		fn(n)
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
