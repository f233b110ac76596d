package tether

import "weak"

// FrameHook is called once per redraw pass, before the pass draws. PreDraw
// must only read geometry; anything it changes shows up on the next pass.
// The return value tells the surface to proceed with the current pass and
// is always true for trackers.
type FrameHook interface {
	PreDraw() bool
}

// FrameSource is a redraw signal a host exposes: a scene, a terminal screen,
// a window. Hooks are compared by identity; adding a hook that is already
// registered must not register it twice.
type FrameSource interface {
	Alive() bool
	AddFrameHook(h FrameHook)
	RemoveFrameHook(h FrameHook)
}

// SurfaceHandle is a lookup of a FrameSource. Updaters hold their surface
// through one so that a tracker never keeps a scene or screen alive.
// Surface returns nil once the surface is gone.
type SurfaceHandle interface {
	Surface() FrameSource
}

type weakSurface[T any, P interface {
	*T
	FrameSource
}] struct {
	ptr weak.Pointer[T]
}

// WeakSurface returns a handle that does not keep p reachable. Hosts expose
// it as their SurfaceHandle method. A nil p yields a handle to nothing.
func WeakSurface[T any, P interface {
	*T
	FrameSource
}](p P) SurfaceHandle {
	if p == nil {
		return weakSurface[T, P]{}
	}
	return weakSurface[T, P]{ptr: weak.Make((*T)(p))}
}

func (h weakSurface[T, P]) Surface() FrameSource {
	v := h.ptr.Value()
	if v == nil {
		return nil
	}
	return P(v)
}

type strongSurface struct {
	s FrameSource
}

// StrongSurface returns a handle that keeps s alive. Use it only for
// surfaces whose lifetime the caller already ties to the tracker's.
func StrongSurface(s FrameSource) SurfaceHandle {
	return strongSurface{s: s}
}

func (h strongSurface) Surface() FrameSource {
	return h.s
}

// FrameHooks is a ready-made FrameSource for hosts to embed. The zero value
// is alive and has no hooks. It is not safe for concurrent use; call it from
// the goroutine that drives the redraw loop.
type FrameHooks struct {
	hooks  []FrameHook
	fire   []FrameHook // reused snapshot buffer
	closed bool
}

// Alive reports whether the surface can still deliver ticks.
func (f *FrameHooks) Alive() bool {
	return !f.closed
}

// AddFrameHook registers h. Re-adding a registered hook moves it to the end
// rather than duplicating it. Ignored once closed.
func (f *FrameHooks) AddFrameHook(h FrameHook) {
	if h == nil || f.closed {
		return
	}
	f.RemoveFrameHook(h)
	f.hooks = append(f.hooks, h)
}

// RemoveFrameHook unregisters h. No-op if h is not registered.
// Uses copy+nil to avoid retaining a dangling hook in the backing array.
func (f *FrameHooks) RemoveFrameHook(h FrameHook) {
	for i, c := range f.hooks {
		if c == h {
			copy(f.hooks[i:], f.hooks[i+1:])
			f.hooks[len(f.hooks)-1] = nil
			f.hooks = f.hooks[:len(f.hooks)-1]
			return
		}
	}
}

// NumFrameHooks returns the number of registered hooks.
func (f *FrameHooks) NumFrameHooks() int {
	return len(f.hooks)
}

// Tick runs every registered hook once, in registration order. Hooks may add
// or remove hooks while running; changes take effect on the next tick.
// Returns false if any hook asked the pass to be skipped.
func (f *FrameHooks) Tick() bool {
	if f.closed || len(f.hooks) == 0 {
		return true
	}
	f.fire = append(f.fire[:0], f.hooks...)
	proceed := true
	for i, h := range f.fire {
		if !h.PreDraw() {
			proceed = false
		}
		f.fire[i] = nil
	}
	f.fire = f.fire[:0]
	return proceed
}

// Close marks the surface dead and drops every hook. Updaters bound to it
// stop on their next query.
func (f *FrameHooks) Close() {
	f.closed = true
	clear(f.hooks)
	f.hooks = nil
}
