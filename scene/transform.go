package scene

import (
	"math"

	"github.com/phanxgames/tether"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform computes the node's affine matrix relative to its parent.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func localTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY

	// Pivot offset after scaling.
	px := -n.PivotX * sx
	py := -n.PivotY * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*px - sin*py + n.X,
		sin*px + cos*py + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldMatrix composes the local transforms from the root down to n without
// touching the cached worldTransform.
func (n *Node) worldMatrix() [6]float64 {
	m := localTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(localTransform(p), m)
	}
	return m
}

// updateWorldTransform refreshes the cached worldTransform of a subtree.
// parentRecomputed forces recomputation of clean children of a dirty parent.
func updateWorldTransform(n *Node, parent [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parent, localTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// worldAABB returns the axis-aligned box around the transformed rectangle
// (0, 0, w, h).
func worldAABB(m [6]float64, w, h float64) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		x, y := transformPoint(m, c[0], c[1])
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}
	return x0, y0, x1, y1
}

// roundRect snaps a float box to whole pixels.
func roundRect(x0, y0, x1, y1 float64) tether.Rect {
	l, t := int(math.Round(x0)), int(math.Round(y0))
	return tether.Rect{X: l, Y: t, Width: int(math.Round(x1)) - l, Height: int(math.Round(y1)) - t}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetSize sets the node's unscaled Width and Height and marks it dirty.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// PlaceAt moves the node so that the top-left of its world bounds lands on p,
// where p is relative to the origin of the parent's bounds. This is the usual
// tracker callback: feed it tether.Update positions computed in
// tether.SpaceParent. Scaled and rotated parents are handled by moving the
// node by the world-space offset mapped back into the parent's local space.
func (n *Node) PlaceAt(p tether.Point) {
	wx, wy := float64(p.X), float64(p.Y)
	if n.Parent != nil {
		o := n.Parent.Bounds().Origin()
		wx += float64(o.X)
		wy += float64(o.Y)
	}
	ax, ay, _, _ := worldAABB(n.worldMatrix(), n.Width, n.Height)
	if n.Parent == nil {
		n.SetPosition(n.X+wx-ax, n.Y+wy-ay)
		return
	}
	tx, ty := n.Parent.WorldToLocal(wx, wy)
	cx, cy := n.Parent.WorldToLocal(ax, ay)
	n.SetPosition(n.X+tx-cx, n.Y+ty-cy)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.worldMatrix()), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldMatrix(), lx, ly)
}
