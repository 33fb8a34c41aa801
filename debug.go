package stickyscroll

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set view debug flag so that node
// operations (which lack a view pointer) can check it cheaply. Only valid
// with a single view; multiple views with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed
// node is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("stickyscroll debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugLogRegime prints a sticky regime transition to stderr.
func debugLogRegime(r stickyRegime, offsetY float64) {
	name := "parallax"
	if r == regimeStretch {
		name = "stretch"
	}
	_, _ = fmt.Fprintf(os.Stderr, "[stickyscroll] sticky regime: %s (offset %.1f)\n", name, offsetY)
}
