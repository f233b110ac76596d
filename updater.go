package tether

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Updatable is anything an Updater can drive. Update reports whether a
// recomputation actually happened.
type Updatable interface {
	Update() bool
}

// Updater re-runs an Updatable on every redraw pass of a FrameSource. It has
// two states, stopped and running, and is not safe for concurrent use: drive
// it from the goroutine that owns the surface.
type Updater struct {
	target     Updatable
	surface    SurfaceHandle
	started    bool
	registered bool

	// OnStateChanged, when set, is called once per actual transition
	// between stopped and running.
	OnStateChanged func(running bool)

	debug bool
	log   *log.Logger
}

// NewUpdater creates a stopped updater driving target. Bind a surface with
// SetSurface before calling Start.
func NewUpdater(target Updatable) *Updater {
	return &Updater{target: target}
}

// SetUpdatable replaces what the updater drives. Takes effect on the next tick.
func (u *Updater) SetUpdatable(target Updatable) {
	u.target = target
}

// Updatable returns what the updater drives.
func (u *Updater) Updatable() Updatable {
	return u.target
}

// Surface returns the bound redraw surface, or nil if none is bound or it
// has been collected.
func (u *Updater) Surface() FrameSource {
	if u.surface == nil {
		return nil
	}
	return u.surface.Surface()
}

// SetSurface binds the updater to a redraw surface. A running updater moves
// to the new surface and keeps running. If it cannot start there, SetSurface
// panics with an error wrapping ErrSurfaceLost: the caller would otherwise
// believe tracking is active when it is not. Rebinding to the surface already
// bound only replaces the handle.
func (u *Updater) SetSurface(h SurfaceHandle) {
	var next FrameSource
	if h != nil {
		next = h.Surface()
	}
	if cur := u.Surface(); cur != nil && sameIdentity(cur, next) {
		u.surface = h
		return
	}
	running := u.IsStarted()
	u.unregister()
	u.surface = h
	if !running {
		return
	}
	if !u.Start() {
		panic(fmt.Errorf("%w: cannot start on new surface", ErrSurfaceLost))
	}
}

// Start begins continuous updates. A running updater is re-registered
// without any state notification. If the surface is missing or dead the
// updater ends up stopped. Otherwise one update runs immediately and the
// frame hook is registered. Returns the resulting running state.
func (u *Updater) Start() bool {
	u.unregister()
	s := u.Surface()
	if s == nil || !s.Alive() {
		u.setStarted(false)
		return false
	}
	if u.target != nil {
		u.target.Update()
	}
	s.AddFrameHook(u)
	u.registered = true
	u.setStarted(true)
	return true
}

// Stop ends continuous updates. Safe to call in any state.
func (u *Updater) Stop() {
	u.unregister()
	u.setStarted(false)
}

// IsStarted reports whether the updater is running. An updater whose
// surface has died or been collected since Start is moved to stopped here.
func (u *Updater) IsStarted() bool {
	if u.started && !u.surfaceAlive() {
		u.registered = false
		u.setStarted(false)
	}
	return u.started
}

// PreDraw implements FrameHook. It never alters the current pass.
func (u *Updater) PreDraw() bool {
	if !u.IsStarted() {
		return true
	}
	if u.target != nil {
		u.target.Update()
	}
	return true
}

// SetDebug turns on logging of registration changes.
func (u *Updater) SetDebug(debug bool) {
	u.debug = debug
}

func (u *Updater) logger() *log.Logger {
	if u.log != nil {
		return u.log
	}
	return logger
}

// surfaceAlive reports whether a bound surface still exists and is alive.
func (u *Updater) surfaceAlive() bool {
	s := u.Surface()
	return s != nil && s.Alive()
}

func (u *Updater) unregister() {
	if !u.registered {
		return
	}
	u.registered = false
	if s := u.Surface(); s != nil && s.Alive() {
		s.RemoveFrameHook(u)
	}
}

func (u *Updater) setStarted(started bool) {
	if u.started == started {
		return
	}
	u.started = started
	if u.debug {
		u.logger().Info("frame hook", "registered", started)
	}
	if u.OnStateChanged != nil {
		u.OnStateChanged(started)
	}
}
