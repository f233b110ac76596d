package scene

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger receives debug output. Nothing is written unless debug mode is on.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "scene"})

// SetLogger replaces the debug logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// frameStats holds per-frame timing. Only populated in debug mode.
type frameStats struct {
	transformTime time.Duration
	hookTime      time.Duration
	hooks         int
}

func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	logger.Debug("frame",
		"transform", stats.transformTime,
		"hooks", stats.hooks,
		"hookTime", stats.hookTime)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scene debug: %s on disposed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth past which debug mode warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree too deep", "depth", depth, "limit", debugMaxTreeDepth, "node", n.Name)
	}
}
