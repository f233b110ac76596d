package tether

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Space selects the coordinate space positions are reported in.
type Space uint8

const (
	// SpaceAbsolute reports positions in the elements' shared space, shifted
	// only by the tracker's origin.
	SpaceAbsolute Space = iota
	// SpaceParent reports positions relative to the source's container. The
	// source must implement Nested; without a container no update happens.
	SpaceParent
)

func (s Space) String() string {
	switch s {
	case SpaceAbsolute:
		return "absolute"
	case SpaceParent:
		return "parent"
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) {
	if s > SpaceParent {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpace, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Space) UnmarshalText(text []byte) error {
	switch normalizeRuleName(string(text)) {
	case "absolute", "":
		*s = SpaceAbsolute
	case "parent":
		*s = SpaceParent
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSpace, text)
	}
	return nil
}

// Config carries the declarative part of a tracker's setup. A zero Rule
// leaves the tracker's rule unchanged.
type Config struct {
	Rule    Rule  `toml:"rule"`
	MarginX int   `toml:"margin_x"`
	MarginY int   `toml:"margin_y"`
	Space   Space `toml:"space"`
}

// Tracker keeps a source element positioned relative to a target element.
// It holds both through Handles and never keeps them alive. The zero value
// is not usable; create trackers with NewTracker.
//
// A Tracker is not safe for concurrent use. Configure and drive it from the
// goroutine that owns the redraw loop.
type Tracker struct {
	id uuid.UUID

	source Handle
	target Handle
	rule   Rule
	margin Margin
	space  Space
	origin Point

	callback Callback
	updater  *Updater

	debug bool
	log   *log.Logger

	last    Point
	hasLast bool
}

// NewTracker creates an empty tracker using DefaultRule, no margin and
// SpaceAbsolute.
func NewTracker() *Tracker {
	return &Tracker{
		id:   uuid.New(),
		rule: DefaultRule,
	}
}

// ID returns the tracker's identifier, used in log output.
func (t *Tracker) ID() uuid.UUID {
	return t.id
}

// SetCallback sets the observer of resolved positions. Without one, Update
// does nothing.
func (t *Tracker) SetCallback(cb Callback) {
	t.callback = cb
}

// Callback returns the current observer, or nil.
func (t *Tracker) Callback() Callback {
	return t.callback
}

// SetSource sets the element to position. The new handle always replaces the old one, so
// swapping a Strong handle for a Weak one to the same element releases it.
// A change of element is reported to a SourceChangeListener callback.
func (t *Tracker) SetSource(h Handle) {
	prev := resolve(t.source)
	next := resolve(h)
	t.source = h
	if sameElement(prev, next) {
		return
	}
	if l, ok := t.callback.(SourceChangeListener); ok {
		l.OnSourceChanged(prev, next)
	}
}

// SetTarget sets the element to track. The new handle always replaces the old one, so
// swapping a Strong handle for a Weak one to the same element releases it.
// A change of element is reported to a TargetChangeListener callback.
func (t *Tracker) SetTarget(h Handle) {
	prev := resolve(t.target)
	next := resolve(h)
	t.target = h
	if sameElement(prev, next) {
		return
	}
	if l, ok := t.callback.(TargetChangeListener); ok {
		l.OnTargetChanged(prev, next)
	}
}

// Source returns the source element, or nil if it is gone.
func (t *Tracker) Source() Element {
	return resolve(t.source)
}

// Target returns the target element, or nil if it is gone.
func (t *Tracker) Target() Element {
	return resolve(t.target)
}

// SetRule sets the anchor rule. A rule is always required: RuleNone and
// unknown values return ErrInvalidRule and leave the tracker unchanged.
func (t *Tracker) SetRule(r Rule) error {
	if !r.Valid() {
		return fmt.Errorf("set rule %d: %w", uint8(r), ErrInvalidRule)
	}
	t.rule = r
	return nil
}

// Rule returns the active anchor rule.
func (t *Tracker) Rule() Rule {
	return t.rule
}

// SetMargin sets the fixed offset added after resolution. Positive values
// move the source right and down.
func (t *Tracker) SetMargin(x, y int) {
	t.margin.X = x
	t.margin.Y = y
}

// SetDynamicMargin adds the current width (AxisX) or height (AxisY) of the
// element behind h to that axis' margin, with the given sign. A nil handle
// clears the axis' dynamic term. It stacks with SetMargin.
func (t *Tracker) SetDynamicMargin(axis Axis, h Handle, sign Sign) {
	if h == nil {
		t.setDynamic(axis, nil)
		return
	}
	dim := Width
	if axis == AxisY {
		dim = Height
	}
	t.setDynamic(axis, &SizeRef{Handle: h, Sign: sign, Dimension: dim})
}

// SetDynamicMarginRef sets an axis' dynamic term with an explicit dimension,
// e.g. shifting x by an element's height.
func (t *Tracker) SetDynamicMarginRef(axis Axis, ref SizeRef) {
	t.setDynamic(axis, &ref)
}

func (t *Tracker) setDynamic(axis Axis, ref *SizeRef) {
	if axis == AxisY {
		t.margin.DynamicY = ref
		return
	}
	t.margin.DynamicX = ref
}

// Margin returns the margin configuration.
func (t *Tracker) Margin() Margin {
	return t.margin
}

// SetSpace selects the reporting space.
func (t *Tracker) SetSpace(s Space) error {
	if s > SpaceParent {
		return fmt.Errorf("set space %d: %w", uint8(s), ErrInvalidSpace)
	}
	t.space = s
	return nil
}

// Space returns the reporting space.
func (t *Tracker) Space() Space {
	return t.space
}

// SetOrigin sets an extra origin subtracted from every position, for callers
// whose shared space does not start at (0, 0).
func (t *Tracker) SetOrigin(p Point) {
	t.origin = p
}

// Origin returns the extra origin.
func (t *Tracker) Origin() Point {
	return t.origin
}

// SetDebug enables logging of skipped cycles and tracking state changes.
func (t *Tracker) SetDebug(debug bool) {
	t.debug = debug
	if t.updater != nil {
		t.updater.debug = debug
	}
}

// Apply sets rule, fixed margin and space from c. Nothing is changed if c
// holds an invalid value.
func (t *Tracker) Apply(c Config) error {
	if c.Rule != RuleNone && !c.Rule.Valid() {
		return fmt.Errorf("apply config: rule %d: %w", uint8(c.Rule), ErrInvalidRule)
	}
	if c.Space > SpaceParent {
		return fmt.Errorf("apply config: space %d: %w", uint8(c.Space), ErrInvalidSpace)
	}
	if c.Rule != RuleNone {
		t.rule = c.Rule
	}
	t.SetMargin(c.MarginX, c.MarginY)
	t.space = c.Space
	return nil
}

// LastPosition returns the position most recently reported to the callback.
func (t *Tracker) LastPosition() (Point, bool) {
	return t.last, t.hasLast
}

// Update resolves the source position once and reports it to the callback.
// It returns false, without error, when there is no callback, when the
// source, target or (in SpaceParent) the source's container is gone, or when
// the callback's UpdateGate vetoes the cycle.
func (t *Tracker) Update() bool {
	if t.callback == nil {
		t.skip("no callback")
		return false
	}
	source := resolve(t.source)
	if source == nil {
		t.skip("source absent")
		return false
	}
	target := resolve(t.target)
	if target == nil {
		t.skip("target absent")
		return false
	}

	origin := t.origin
	var parent Element
	if t.space == SpaceParent {
		parent = parentOf(source)
		if parent == nil {
			t.skip("parent absent")
			return false
		}
		origin = origin.Add(parent.Bounds().Origin())
	}

	if gate, ok := t.callback.(UpdateGate); ok && !gate.CanUpdate(source, target) {
		t.skip("vetoed by callback")
		return false
	}

	src := source.Bounds().Translate(origin)
	dst := target.Bounds().Translate(origin)
	pos := Resolve(src, dst, t.rule)

	off := t.margin.Offset()
	if tracksX(t.rule) {
		pos.X += off.X
	}
	if tracksY(t.rule) {
		pos.Y += off.Y
	}

	t.last, t.hasLast = pos, true
	t.callback.OnUpdate(Update{
		X:      pos.X,
		Y:      pos.Y,
		Rule:   t.rule,
		Source: source,
		Target: target,
		Parent: parent,
	})
	return true
}

// Updater returns the tracker's continuous updater, creating it on first use.
// Its state changes are forwarded to a StateListener callback.
func (t *Tracker) Updater() *Updater {
	if t.updater == nil {
		u := NewUpdater(t)
		u.debug = t.debug
		u.log = t.logger()
		u.OnStateChanged = t.stateChanged
		t.updater = u
	}
	return t.updater
}

// SetSurface binds the tracker's updater to a redraw surface. See
// Updater.SetSurface for the behavior while tracking.
func (t *Tracker) SetSurface(s SurfaceHandle) {
	t.Updater().SetSurface(s)
}

// Start begins tracking on every redraw pass of the bound surface and
// reports whether tracking is active.
func (t *Tracker) Start() bool {
	return t.Updater().Start()
}

// Stop ends continuous tracking.
func (t *Tracker) Stop() {
	if t.updater != nil {
		t.updater.Stop()
	}
}

// IsTracking reports whether continuous tracking is active.
func (t *Tracker) IsTracking() bool {
	return t.updater != nil && t.updater.IsStarted()
}

func (t *Tracker) stateChanged(running bool) {
	if l, ok := t.callback.(StateListener); ok {
		l.OnStateChanged(running)
	}
}

func (t *Tracker) skip(reason string) {
	if t.debug {
		t.logger().Info("update skipped", "reason", reason, "rule", t.rule)
	}
}

func (t *Tracker) logger() *log.Logger {
	if t.log == nil {
		t.log = logger.With("tracker", t.id.String())
	}
	return t.log
}
