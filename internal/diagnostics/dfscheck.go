// Package diagnostics holds the tooling that is not on the program's
// critical path: DFS sanity re-checks, a tree-printing aid, and a
// whole-input integrity checksum. Spec §1 scopes these out of the core
// component list but names them as existing collaborators.
package diagnostics

import (
	"fmt"

	"github.com/hdbn/BAT-LZ/internal/blz"
)

// CheckDFS re-derives the leaf count from the tree shape and compares it
// against textLen+1 (one leaf per suffix, including the sentinel-only
// suffix), the Go analogue of the original source's
// `nn := dfsForInversePointers(...); if nn != tree->length ...` check
// (Testable Property 7, "idempotence of DFS"). inversePointers,
// maxStrDepth and strDepth are not re-checked.
func CheckDFS(tree *blz.Tree, textLen int) (string, error) {
	leaves := tree.CountLeaves()
	if leaves != textLen+1 {
		return "", fmt.Errorf("diagnostics: text length = %d, suffix tree leaves = %d", textLen, leaves)
	}
	return "dfs matches", nil
}
