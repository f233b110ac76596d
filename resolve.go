package tether

// Resolve returns the top-left position the source must take to satisfy rule
// against target. Both rectangles are expressed in the same tracking space.
// Only the source's size is consulted, except for the single-axis rules
// (Left, Top, Right, Bottom) which keep the source's current coordinate on
// the axis they do not track.
//
// Centering uses integer division, which truncates toward zero: an odd
// difference of 59 shifts by 29 and a difference of -61 shifts by -30.
// Nothing is clamped; a source larger than its target simply overhangs.
// An invalid rule leaves the source where it is.
func Resolve(source, target Rect, rule Rule) Point {
	left := target.X
	right := left + (target.Width - source.Width)
	centerX := left + (target.Width-source.Width)/2

	top := target.Y
	bottom := top + (target.Height - source.Height)
	centerY := top + (target.Height-source.Height)/2

	switch rule {
	case TopLeft:
		return Point{left, top}
	case TopCenter:
		return Point{centerX, top}
	case TopRight:
		return Point{right, top}
	case LeftCenter:
		return Point{left, centerY}
	case Center:
		return Point{centerX, centerY}
	case RightCenter:
		return Point{right, centerY}
	case BottomLeft:
		return Point{left, bottom}
	case BottomCenter:
		return Point{centerX, bottom}
	case BottomRight:
		return Point{right, bottom}

	case Left:
		return Point{left, source.Y}
	case Top:
		return Point{source.X, top}
	case Right:
		return Point{right, source.Y}
	case Bottom:
		return Point{source.X, bottom}

	case TopOutsideLeft:
		return Point{left, top - source.Height}
	case TopOutsideCenter:
		return Point{centerX, top - source.Height}
	case TopOutsideRight:
		return Point{right, top - source.Height}
	case BottomOutsideLeft:
		return Point{left, bottom + source.Height}
	case BottomOutsideCenter:
		return Point{centerX, bottom + source.Height}
	case BottomOutsideRight:
		return Point{right, bottom + source.Height}
	case LeftOutsideTop:
		return Point{left - source.Width, top}
	case LeftOutsideCenter:
		return Point{left - source.Width, centerY}
	case LeftOutsideBottom:
		return Point{left - source.Width, bottom}
	case RightOutsideTop:
		return Point{right + source.Width, top}
	case RightOutsideCenter:
		return Point{right + source.Width, centerY}
	case RightOutsideBottom:
		return Point{right + source.Width, bottom}
	}
	return source.Origin()
}

// tracksX reports whether rule positions the source horizontally.
func tracksX(rule Rule) bool {
	return rule != Top && rule != Bottom
}

// tracksY reports whether rule positions the source vertically.
func tracksY(rule Rule) bool {
	return rule != Left && rule != Right
}
