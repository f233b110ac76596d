package tether

// Update describes one successful resolution. X and Y are the source's new
// top-left in the tracking space, margins included. Parent is the resolved
// container in SpaceParent and nil otherwise.
type Update struct {
	X, Y   int
	Rule   Rule
	Source Element
	Target Element
	Parent Element
}

// Position returns the resolved coordinates as a Point.
func (u Update) Position() Point {
	return Point{u.X, u.Y}
}

// Callback receives resolved positions. It is the only required hook; the
// optional listener interfaces below are detected on the same value.
type Callback interface {
	OnUpdate(u Update)
}

// SourceChangeListener is notified when a tracker's source is replaced by a
// different element. Either side may be nil.
type SourceChangeListener interface {
	OnSourceChanged(prev, next Element)
}

// TargetChangeListener is notified when a tracker's target is replaced by a
// different element. Either side may be nil.
type TargetChangeListener interface {
	OnTargetChanged(prev, next Element)
}

// UpdateGate may veto a cycle. Returning false skips OnUpdate without it
// being treated as an error.
type UpdateGate interface {
	CanUpdate(source, target Element) bool
}

// StateListener is notified when continuous tracking starts or stops.
type StateListener interface {
	OnStateChanged(running bool)
}

// Funcs adapts plain functions to Callback and every listener interface.
// Nil fields fall back to the defaults: no-op hooks and a gate that always
// allows the update.
type Funcs struct {
	Update        func(Update)
	SourceChanged func(prev, next Element)
	TargetChanged func(prev, next Element)
	Gate          func(source, target Element) bool
	StateChanged  func(running bool)
}

// OnUpdate implements Callback.
func (f *Funcs) OnUpdate(u Update) {
	if f.Update != nil {
		f.Update(u)
	}
}

// OnSourceChanged implements SourceChangeListener.
func (f *Funcs) OnSourceChanged(prev, next Element) {
	if f.SourceChanged != nil {
		f.SourceChanged(prev, next)
	}
}

// OnTargetChanged implements TargetChangeListener.
func (f *Funcs) OnTargetChanged(prev, next Element) {
	if f.TargetChanged != nil {
		f.TargetChanged(prev, next)
	}
}

// CanUpdate implements UpdateGate.
func (f *Funcs) CanUpdate(source, target Element) bool {
	if f.Gate != nil {
		return f.Gate(source, target)
	}
	return true
}

// OnStateChanged implements StateListener.
func (f *Funcs) OnStateChanged(running bool) {
	if f.StateChanged != nil {
		f.StateChanged(running)
	}
}

// OnUpdateFunc adapts a single function to Callback.
type OnUpdateFunc func(Update)

// OnUpdate implements Callback.
func (fn OnUpdateFunc) OnUpdate(u Update) {
	fn(u)
}
