package tether

import "fmt"

// Point is a position in a tracking space.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width and height pair.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Negative sizes are allowed and
// propagate arithmetically through resolution.
type Rect struct {
	X, Y, Width, Height int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Translate returns r moved so that its origin is expressed relative to o.
func (r Rect) Translate(o Point) Rect {
	return Rect{r.X - o.X, r.Y - o.Y, r.Width, r.Height}
}

// At returns a rectangle of r's size with its origin at p.
func (r Rect) At(p Point) Rect {
	return Rect{p.X, p.Y, r.Width, r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the top and left edges are inside; right and bottom are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}
