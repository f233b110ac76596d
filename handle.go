package tether

import (
	"reflect"
	"weak"
)

// Element is anything that occupies a rectangle in a shared coordinate space.
// Bounds is read every update cycle and must report the element's current
// absolute position and size. Elements are compared by identity, so
// implementations should be pointer types.
type Element interface {
	Bounds() Rect
}

// Nested is implemented by elements that live inside a container. Trackers in
// SpaceParent resolve positions relative to the container's origin.
type Nested interface {
	ParentElement() Element
}

// Disposable is implemented by elements that can be torn down while still
// reachable. A disposed element resolves as absent.
type Disposable interface {
	IsDisposed() bool
}

// Handle is a non-owning lookup of an element. Element returns nil once the
// element is gone; the tracker never keeps an element alive through it.
type Handle interface {
	Element() Element
}

// weakHandle resolves through a weak pointer so the element can be collected.
type weakHandle[T any, P interface {
	*T
	Element
}] struct {
	ptr weak.Pointer[T]
}

// Weak returns a handle that does not keep p reachable. A nil p yields a
// handle that always resolves to nil.
func Weak[T any, P interface {
	*T
	Element
}](p P) Handle {
	if p == nil {
		return weakHandle[T, P]{}
	}
	return weakHandle[T, P]{ptr: weak.Make((*T)(p))}
}

func (h weakHandle[T, P]) Element() Element {
	v := h.ptr.Value()
	if v == nil {
		return nil
	}
	return P(v)
}

// strongHandle wraps an element whose lifetime the caller already manages.
type strongHandle struct {
	e Element
}

// Strong returns a handle that always resolves to e. Use it for elements that
// are not pointers or whose lifetime is owned elsewhere; disposal is still
// honored when e implements Disposable. Values of a non-comparable type never
// match a previous element, so setting one always reports a change.
func Strong(e Element) Handle {
	return strongHandle{e: e}
}

func (h strongHandle) Element() Element {
	return h.e
}

// resolve follows h, treating nil handles and disposed elements as absent.
func resolve(h Handle) Element {
	if h == nil {
		return nil
	}
	e := h.Element()
	if e == nil {
		return nil
	}
	if d, ok := e.(Disposable); ok && d.IsDisposed() {
		return nil
	}
	return e
}

// parentOf resolves the container of e, or nil if e is not Nested or its
// container is absent or disposed.
func parentOf(e Element) Element {
	n, ok := e.(Nested)
	if !ok {
		return nil
	}
	p := n.ParentElement()
	if p == nil {
		return nil
	}
	if d, ok := p.(Disposable); ok && d.IsDisposed() {
		return nil
	}
	return p
}

// sameElement reports whether a and b are the same element.
func sameElement(a, b Element) bool {
	return sameIdentity(a, b)
}

// sameIdentity compares two interface values without panicking. Values whose
// dynamic type is not comparable are never the same as anything, so a
// Strong handle around such a value is always treated as a change.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
