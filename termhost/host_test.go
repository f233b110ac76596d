package termhost

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/tether"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	h := NewHost(screen)
	t.Cleanup(h.Close)
	return h, screen
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestBoxBoundsFollowParents(t *testing.T) {
	panel := NewBox("panel", 10, 5, 30, 10)
	inner := NewBox("inner", 2, 1, 4, 1)
	inner.Parent = panel

	assert.Equal(t, tether.Rect{X: 12, Y: 6, Width: 4, Height: 1}, inner.Bounds())
	assert.Equal(t, tether.Element(panel), inner.ParentElement())
	assert.Nil(t, panel.ParentElement())
}

func TestFrameDrawsLabels(t *testing.T) {
	h, screen := newTestHost(t)
	h.Add(NewBox("hello", 3, 2, 10, 3))
	h.Add(NewBox("clipped", 78, 0, 10, 1))
	h.Frame()

	assert.Equal(t, 'h', cell(screen, 3, 2))
	assert.Equal(t, 'o', cell(screen, 7, 2))
	assert.Equal(t, 'c', cell(screen, 78, 0))
	assert.Equal(t, 'l', cell(screen, 79, 0))
}

func TestAddIsIdempotent(t *testing.T) {
	h, _ := newTestHost(t)
	b := NewBox("b", 0, 0, 1, 1)
	h.Add(b)
	h.Add(b)
	h.Add(nil)
	assert.Len(t, h.Boxes(), 1)

	h.Remove(b)
	assert.Empty(t, h.Boxes())
}

func TestFrameDropsDisposedBoxes(t *testing.T) {
	h, _ := newTestHost(t)
	b := NewBox("b", 0, 0, 1, 1)
	h.Add(b)
	b.Dispose()
	h.Frame()
	assert.Empty(t, h.Boxes())
}

func TestTrackerPlacesBadge(t *testing.T) {
	h, screen := newTestHost(t)
	target := NewBox("target", 10, 5, 20, 6)
	badge := NewBox("!", 0, 0, 3, 1)
	h.Add(target)
	h.Add(badge)

	tr := tether.NewTracker()
	require.NoError(t, tr.SetRule(tether.RightOutsideTop))
	tr.SetSource(badge.Handle())
	tr.SetTarget(target.Handle())
	tr.SetMargin(1, 0)
	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
		badge.PlaceAt(u.Position())
	}))
	tr.SetSurface(h.SurfaceHandle())
	require.True(t, tr.Start())

	h.Frame()
	assert.Equal(t, tether.Point{X: 31, Y: 5}, badge.Bounds().Origin())
	assert.Equal(t, '!', cell(screen, 31, 5))

	target.Rect.X = 40
	h.Frame()
	assert.Equal(t, tether.Point{X: 61, Y: 5}, badge.Bounds().Origin())
	assert.Equal(t, '!', cell(screen, 61, 5))
}

func TestCloseStopsTrackers(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	h := NewHost(screen)

	tr := tether.NewTracker()
	tr.SetSource(NewBox("a", 0, 0, 1, 1).Handle())
	tr.SetCallback(tether.OnUpdateFunc(func(tether.Update) {}))
	tr.SetSurface(h.SurfaceHandle())
	tr.Start()
	require.True(t, tr.IsTracking())

	h.Close()
	assert.False(t, tr.IsTracking())
	h.Close()
}

func TestRunQuitsOnEscape(t *testing.T) {
	h, screen := newTestHost(t)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, h.Run(ctx))
}

func TestRunPassesKeys(t *testing.T) {
	h, screen := newTestHost(t)
	var got []rune
	h.OnKey = func(ev *tcell.EventKey) bool {
		got = append(got, ev.Rune())
		return ev.Rune() != 'q'
	}
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, h.Run(ctx))
	assert.Equal(t, []rune{'a', 'q'}, got)
}

func TestRunStopsOnContext(t *testing.T) {
	h, _ := newTestHost(t)
	ticks := 0
	h.SetInterval(time.Millisecond)
	h.OnTick = func() { ticks++ }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, h.Run(ctx), context.DeadlineExceeded)
	assert.Positive(t, ticks)
}
