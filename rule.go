package tether

import (
	"fmt"
	"strings"
)

// Rule selects how the source's top-left corner is placed relative to the
// target's bounding box. The zero value RuleNone is not a usable rule.
type Rule uint8

const (
	RuleNone Rule = iota // unset; rejected by Tracker.SetRule

	TopLeft      // source top-left on target top-left
	TopCenter    // top edges aligned, centered horizontally
	TopRight     // source top-right on target top-right
	LeftCenter   // left edges aligned, centered vertically
	Center       // centered on both axes
	RightCenter  // right edges aligned, centered vertically
	BottomLeft   // source bottom-left on target bottom-left
	BottomCenter // bottom edges aligned, centered horizontally
	BottomRight  // source bottom-right on target bottom-right

	Left   // left edges aligned; y untouched
	Top    // top edges aligned; x untouched
	Right  // right edges aligned; y untouched
	Bottom // bottom edges aligned; x untouched

	TopOutsideLeft      // above the target, left edges aligned
	TopOutsideCenter    // above the target, centered horizontally
	TopOutsideRight     // above the target, right edges aligned
	BottomOutsideLeft   // below the target, left edges aligned
	BottomOutsideCenter // below the target, centered horizontally
	BottomOutsideRight  // below the target, right edges aligned
	LeftOutsideTop      // left of the target, top edges aligned
	LeftOutsideCenter   // left of the target, centered vertically
	LeftOutsideBottom   // left of the target, bottom edges aligned
	RightOutsideTop     // right of the target, top edges aligned
	RightOutsideCenter  // right of the target, centered vertically
	RightOutsideBottom  // right of the target, bottom edges aligned

	ruleCount
)

// DefaultRule is the rule a new Tracker starts with.
const DefaultRule = TopRight

var ruleNames = [ruleCount]string{
	RuleNone:            "None",
	TopLeft:             "TopLeft",
	TopCenter:           "TopCenter",
	TopRight:            "TopRight",
	LeftCenter:          "LeftCenter",
	Center:              "Center",
	RightCenter:         "RightCenter",
	BottomLeft:          "BottomLeft",
	BottomCenter:        "BottomCenter",
	BottomRight:         "BottomRight",
	Left:                "Left",
	Top:                 "Top",
	Right:               "Right",
	Bottom:              "Bottom",
	TopOutsideLeft:      "TopOutsideLeft",
	TopOutsideCenter:    "TopOutsideCenter",
	TopOutsideRight:     "TopOutsideRight",
	BottomOutsideLeft:   "BottomOutsideLeft",
	BottomOutsideCenter: "BottomOutsideCenter",
	BottomOutsideRight:  "BottomOutsideRight",
	LeftOutsideTop:      "LeftOutsideTop",
	LeftOutsideCenter:   "LeftOutsideCenter",
	LeftOutsideBottom:   "LeftOutsideBottom",
	RightOutsideTop:     "RightOutsideTop",
	RightOutsideCenter:  "RightOutsideCenter",
	RightOutsideBottom:  "RightOutsideBottom",
}

// Rules returns every usable rule in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, ruleCount-1)
	for r := TopLeft; r < ruleCount; r++ {
		out = append(out, r)
	}
	return out
}

// Valid reports whether r is one of the usable rules.
func (r Rule) Valid() bool {
	return r > RuleNone && r < ruleCount
}

// SingleAxis reports whether r tracks the target on one axis only.
func (r Rule) SingleAxis() bool {
	return r >= Left && r <= Bottom
}

func (r Rule) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRule, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRule looks a rule up by name. Matching ignores case and any '-', '_'
// or space separators, so "bottom-outside-center" parses as
// BottomOutsideCenter.
func ParseRule(name string) (Rule, error) {
	key := normalizeRuleName(name)
	for r := TopLeft; r < ruleCount; r++ {
		if normalizeRuleName(ruleNames[r]) == key {
			return r, nil
		}
	}
	return RuleNone, fmt.Errorf("%w: %q", ErrInvalidRule, name)
}

func normalizeRuleName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range strings.ToLower(s) {
		switch c {
		case '-', '_', ' ':
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
