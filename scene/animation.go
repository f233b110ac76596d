package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors and either call Update(dt)
// each frame or hand it to Scene.Animate. The group auto-applies values and
// marks the node dirty. If the target node is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

func newGroup(node *Node, duration float32, fn ease.TweenFunc, pairs ...tweenPair) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[i] = p.field
	}
	return g
}

type tweenPair struct {
	field *float64
	to    float64
}

// TweenPosition animates node.X and node.Y to the given coordinates over
// duration seconds using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		tweenPair{&node.X, toX},
		tweenPair{&node.Y, toY})
}

// TweenSize animates node.Width and node.Height. Trackers using the node as
// a dynamic margin provider pick up every intermediate size.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		tweenPair{&node.Width, toW},
		tweenPair{&node.Height, toH})
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn,
		tweenPair{&node.Color.R, to.R},
		tweenPair{&node.Color.G, to.G},
		tweenPair{&node.Color.B, to.B},
		tweenPair{&node.Color.A, to.A})
}
