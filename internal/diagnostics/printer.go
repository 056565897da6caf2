package diagnostics

import (
	"fmt"
	"io"

	"github.com/hdbn/BAT-LZ/internal/blz"
)

// PrintTree writes a depth-indented dump of tree's structure to w,
// the Go analogue of the original source's `ST_PrintTree`/
// `ST_PrintFullNode`. Gated behind `-print-tree`; never on the default
// path (spec §1 names tree-printing as an out-of-scope collaborator).
func PrintTree(w io.Writer, tree *blz.Tree) error {
	fmt.Fprintln(w, "root")
	return tree.Walk(func(depth int, label string, isLeaf bool) error {
		kind := "internal"
		if isLeaf {
			kind = "leaf"
		}
		_, err := fmt.Fprintf(w, "%*s%s (%s)\n", depth*2, "", label, kind)
		return err
	})
}
