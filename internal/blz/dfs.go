package blz

import "golang.org/x/exp/slices"

// dfsFinalize runs the post-construction DFS (spec §4.1): computes
// strDepth for every node, populates inversePointers for every leaf, and
// writes the raw (non-monotone) maxStrDepth values, then makes
// maxStrDepth prefix-max monotone in a second linear pass.
func (t *Tree) dfsFinalize() int {
	leaves := t.dfsWalk(t.root, 0)

	for i := 2; i < len(t.maxStrDepth); i++ {
		if t.maxStrDepth[i-1] > t.maxStrDepth[i] {
			t.maxStrDepth[i] = t.maxStrDepth[i-1]
		}
	}

	return leaves
}

// dfsWalk recurses into id's subtree, setting strDepth to depth and
// returning the number of leaves found.
func (t *Tree) dfsWalk(id nodeID, depth int) int {
	n := t.at(id)
	n.annot.minMax = infCost
	n.annot.optimisticMinMax = infCost
	n.strDepth = depth

	if n.isLeaf() {
		t.inversePointers[n.pathPosition] = id
		fatherStrDepth := t.at(n.father).strDepth
		t.maxStrDepth[n.pathPosition] = n.pathPosition + fatherStrDepth - 1
		n.annot.optimisticTextPos = n.pathPosition
		n.annot.textPos = n.pathPosition
		return 1
	}

	n.annot.textPos = 0
	n.annot.optimisticTextPos = 0

	leaves := 0
	child := n.firstChild
	for child != nilNode {
		c := t.at(child)
		childDepth := depth + (c.edgeEnd - c.edgeStart) + 1
		leaves += t.dfsWalk(child, childDepth)
		child = t.at(child).rightSibling
	}
	return leaves
}

// CountLeaves re-derives the leaf count from the tree shape alone,
// without touching any annotation field — the read-only half of
// Testable Property 7 ("idempotence of DFS"), safe to call after
// parsing has already mutated cost-derived annotations.
func (t *Tree) CountLeaves() int {
	return t.countLeavesWalk(t.root)
}

// Walk visits every node in the tree depth-first, calling visit with
// the node's depth (number of edges from the root), the text of its
// incoming edge label, and whether it is a leaf. It is read-only: the
// diagnostics package's tree printer is the only caller.
//
// Children are visited in sorted-by-first-byte order rather than raw
// sibling-list (arrival) order, so that two runs over the same text
// always print identically regardless of construction history — the
// same stable-ordering concern ulikunitz/lz's osap.go addresses by
// sorting suffix-array segments before turning them into edges.
func (t *Tree) Walk(visit func(depth int, label string, isLeaf bool) error) error {
	return t.walkNode(t.root, 0, visit)
}

func (t *Tree) walkNode(id nodeID, depth int, visit func(int, string, bool) error) error {
	n := t.at(id)
	if id != t.root {
		label := string(t.text.Slice(n.edgeStart, t.edgeLabelEnd(id)))
		if err := visit(depth, label, n.isLeaf()); err != nil {
			return err
		}
	}

	var children []nodeID
	for child := n.firstChild; child != nilNode; child = t.at(child).rightSibling {
		children = append(children, child)
	}
	slices.SortFunc(children, func(a, b nodeID) int {
		return int(t.text.At(t.at(a).edgeStart)) - int(t.text.At(t.at(b).edgeStart))
	})

	for _, child := range children {
		if err := t.walkNode(child, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) countLeavesWalk(id nodeID) int {
	n := t.at(id)
	if n.isLeaf() {
		return 1
	}
	count := 0
	child := n.firstChild
	for child != nilNode {
		count += t.countLeavesWalk(child)
		child = t.at(child).rightSibling
	}
	return count
}
