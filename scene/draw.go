package scene

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// fillImage is a 3x3 white image; the center pixel is sampled as a solid
// source so edges never bleed.
var (
	fillImage    *ebiten.Image
	fillSubImage *ebiten.Image
)

func solidSource() *ebiten.Image {
	if fillSubImage == nil {
		fillImage = ebiten.NewImage(3, 3)
		fillImage.Fill(color.White)
		fillSubImage = fillImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return fillSubImage
}

// Draw refreshes world transforms and fills every visible node with its
// color, children over parents, siblings ordered by ZIndex then insertion.
func (s *Scene) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, false)

	var quads []*Node
	collectQuads(s.root, &quads)

	src := solidSource()
	verts := make([]ebiten.Vertex, 0, 4)
	indices := []uint16{0, 1, 2, 0, 2, 3}
	for _, n := range quads {
		verts = quadVertices(verts[:0], n)
		screen.DrawTriangles(verts, indices, src, nil)
	}
}

// collectQuads walks the tree depth-first. Invisible nodes hide their
// subtree.
func collectQuads(n *Node, out *[]*Node) {
	if !n.Visible {
		return
	}
	if n.Width != 0 && n.Height != 0 {
		*out = append(*out, n)
	}
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].ZIndex < children[j].ZIndex
	})
	for _, c := range children {
		collectQuads(c, out)
	}
}

func quadVertices(dst []ebiten.Vertex, n *Node) []ebiten.Vertex {
	m := n.worldTransform
	c := n.Color
	for _, p := range [4][2]float64{{0, 0}, {n.Width, 0}, {n.Width, n.Height}, {0, n.Height}} {
		x, y := transformPoint(m, p[0], p[1])
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R * c.A),
			ColorG: float32(c.G * c.A),
			ColorB: float32(c.B * c.A),
			ColorA: float32(c.A),
		})
	}
	return dst
}
