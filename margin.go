package tether

// Axis names one of the two coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Sign is the direction a dynamic margin is applied in.
type Sign int8

const (
	Add      Sign = 1
	Subtract Sign = -1
)

// Dimension selects which side of a size provider feeds a dynamic margin.
type Dimension uint8

const (
	Width Dimension = iota
	Height
)

// SizeRef is a dynamic margin term: the current Dimension of the element
// behind Handle, applied with Sign. The element is re-read every cycle.
type SizeRef struct {
	Handle    Handle
	Sign      Sign
	Dimension Dimension
}

// size returns the signed contribution of the ref. An absent provider
// contributes nothing.
func (s *SizeRef) size() int {
	if s == nil {
		return 0
	}
	e := resolve(s.Handle)
	if e == nil {
		return 0
	}
	b := e.Bounds()
	v := b.Width
	if s.Dimension == Height {
		v = b.Height
	}
	if s.Sign == Subtract {
		return -v
	}
	return v
}

// Margin is the offset applied after rule resolution. The fixed part and the
// dynamic part of each axis add up.
type Margin struct {
	X, Y     int
	DynamicX *SizeRef
	DynamicY *SizeRef
}

// Offset composes the effective margin for both axes, querying any dynamic
// providers for their current size.
func (m Margin) Offset() Point {
	return Point{
		X: m.X + m.DynamicX.size(),
		Y: m.Y + m.DynamicY.size(),
	}
}
