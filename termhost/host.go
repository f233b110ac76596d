// Package termhost hosts tether trackers on a tcell terminal screen.
//
// A [Host] owns a list of [Box] elements and is the frame source its
// trackers register on: every [Host.Frame] fires the hooks, then redraws
// the boxes. [Host.Run] drives frames from a ticker and terminal events.
package termhost

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
)

// DefaultInterval is the frame interval used by Run.
const DefaultInterval = 16 * time.Millisecond

// Host draws boxes on a tcell screen and ticks trackers once per frame.
type Host struct {
	tether.FrameHooks

	screen   tcell.Screen
	boxes    []*Box
	interval time.Duration
	log      *log.Logger

	// OnKey, if set, receives key events other than Esc and Ctrl-C.
	// Returning false ends Run.
	OnKey func(ev *tcell.EventKey) bool
	// OnTick, if set, runs before each ticker-driven frame.
	OnTick func()
}

// NewHost wraps an initialised screen.
func NewHost(screen tcell.Screen) *Host {
	return &Host{
		screen:   screen,
		interval: DefaultInterval,
		log:      log.New(io.Discard),
	}
}

// SetLogger sets where the host logs. The default discards everything,
// since stderr shares the terminal with the screen.
func (h *Host) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	h.log = l
}

// SetInterval sets the ticker period used by Run.
func (h *Host) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	h.interval = d
}

// Screen returns the wrapped screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Size returns the screen size in cells.
func (h *Host) Size() tether.Size {
	w, ht := h.screen.Size()
	return tether.Size{Width: w, Height: ht}
}

// Add appends b to the draw list. Later boxes draw over earlier ones.
func (h *Host) Add(b *Box) {
	if b == nil || slices.Contains(h.boxes, b) {
		return
	}
	h.boxes = append(h.boxes, b)
}

// Remove drops b from the draw list.
func (h *Host) Remove(b *Box) {
	if i := slices.Index(h.boxes, b); i >= 0 {
		h.boxes = slices.Delete(h.boxes, i, i+1)
	}
}

// Boxes returns the draw list. The caller must not modify it.
func (h *Host) Boxes() []*Box {
	return h.boxes
}

// Frame fires the frame hooks and redraws. A vetoed pass leaves the screen
// as it was. Disposed boxes are dropped from the draw list.
func (h *Host) Frame() {
	if !h.Alive() {
		return
	}
	if !h.Tick() {
		h.log.Debug("frame skipped")
		return
	}
	h.boxes = slices.DeleteFunc(h.boxes, (*Box).IsDisposed)
	h.screen.Clear()
	for _, b := range h.boxes {
		if !b.Hidden {
			b.draw(h.screen)
		}
	}
	h.screen.Show()
}

// Run draws frames every interval and handles terminal events until ctx is
// done, the terminal input ends, or the user presses Esc or Ctrl-C. Only the
// last case returns nil.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return io.EOF
			}
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if h.OnTick != nil {
				h.OnTick()
			}
			h.Frame()
		}
	}
}

// handle reacts to one event. It returns false to end Run.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if h.OnKey != nil {
			return h.OnKey(ev)
		}
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.log.Debug("resize", "width", w, "height", ht)
		h.screen.Sync()
		h.Frame()
	}
	return true
}

// SurfaceHandle returns a weak handle to h, so trackers bound to it do not
// keep the host alive.
func (h *Host) SurfaceHandle() tether.SurfaceHandle {
	return tether.WeakSurface(h)
}

// Close stops every tracker bound to the host and finalises the screen.
func (h *Host) Close() {
	if !h.Alive() {
		return
	}
	h.FrameHooks.Close()
	h.screen.Fini()
}
