package blz

// nodeID indexes into Tree.nodes. nilNode (zero value) means "no node",
// the arena convention from spec §9: a contiguous node arena with 32-bit
// indices in place of the original C source's raw pointers, since the
// suffix-link retargeting Ukkonen's algorithm performs needs stable
// cross-references that a growing Go slice can't give through pointers
// once it reallocates.
type nodeID int32

const nilNode nodeID = 0

// infCost is the "+∞" sentinel for annotation.minMax/optimisticMinMax.
const infCost = int(^uint(0) >> 1)

// annotation is the per-node record from spec §3: conservative
// (minMax/textPos) and optimistic (optimisticMinMax/optimisticTextPos)
// estimates of the cheapest cappedMax achievable among candidate
// occurrences represented by this node's subtree.
type annotation struct {
	minMax, optimisticMinMax   int
	textPos, optimisticTextPos int
}

// node is one vertex of the suffix tree: an internal node or a leaf.
// Children form a doubly-linked sibling list; the parent owns only the
// first child (node.sons in the original source), matching the teacher's
// convention of a tree node owning its one canonical reference while
// using siblings/back-pointers for everything else (app/diyredis/streams's
// RxNode owns a `children []RxNode` slice rather than a list, but the
// father-owns-the-entry-point shape generalizes the same way here).
type node struct {
	father, firstChild, leftSibling, rightSibling nodeID
	suffixLink                                    nodeID

	// edgeStart/edgeEnd are 1-based inclusive indices into the Text
	// describing the incoming edge's label. For a leaf, edgeEnd is
	// ignored; Tree.e (the global virtual end) is used instead.
	edgeStart, edgeEnd int

	pathPosition int
	strDepth     int

	annot annotation
}

func (n *node) isLeaf() bool { return n.firstChild == nilNode }

// edgeLen returns the label length of the incoming edge, given the
// current value of the tree's virtual end e (used for leaves).
func (n *node) edgeLen(e int) int {
	if n.isLeaf() {
		return e - n.edgeStart + 1
	}
	return n.edgeEnd - n.edgeStart + 1
}

func newInternalAnnotation() annotation {
	return annotation{
		minMax:            infCost,
		optimisticMinMax:  infCost,
		textPos:           0,
		optimisticTextPos: 0,
	}
}
