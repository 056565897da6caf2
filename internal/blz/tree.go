package blz

// Tree is the suffix tree over a Text, built by Ukkonen's algorithm
// (spec §4.1). Nodes live in a contiguous arena (tree.nodes); nodeID 0 is
// reserved to mean "no node", matching spec §9's arena design note.
type Tree struct {
	text  *Text
	nodes []node
	root  nodeID
	e     int // global virtual end, shared by every leaf's incoming edge

	inversePointers []nodeID
	maxStrDepth     []int

	cost []int // U, 1-indexed length n+2
	segm *segTree
	dist *distanceArray

	// costBound is C, the parser's admissibility bound, set once by
	// NewParser before any call into propagateAnnotation.
	costBound int

	// Diagnostic counters, analogous to the original source's globals
	// `counter` (atomic-operation count) and `heap` (bytes allocated),
	// but carried on the tree value instead of as package globals.
	counter, heap int
}

// path is a pair of 1-based inclusive indices into the text, the
// argument type for trace_string/trace_single_edge in the original
// source.
type path struct {
	begin, end int
}

func (p path) length() int { return p.end - p.begin + 1 }

// treePos is a position in the tree during construction: a node plus an
// offset into that node's incoming edge.
type treePos struct {
	node    nodeID
	edgePos int
}

// builder carries the per-construction state Ukkonen's algorithm needs
// across phases and extensions. Spec §9: "pass it as a field of a
// Builder value, not a process global" — this replaces the original
// source's file-level global suffixless; counter/heap live on Tree.
type builder struct {
	tree       *Tree
	suffixless nodeID
}

// BuildTree runs Ukkonen's algorithm over t in O(n), returning the
// annotated, DFS-finalized suffix tree.
func BuildTree(t *Text) (*Tree, error) {
	n := t.Len() + 1 // length including the appended sentinel

	tree := &Tree{
		text: t,
		// node 0 is the reserved nilNode; preallocate generously since
		// a suffix tree over n+1 symbols has at most 2n+1 nodes.
		nodes:           make([]node, 1, 2*n+4),
		inversePointers: make([]nodeID, n+2),
		maxStrDepth:     make([]int, n+2),
		cost:            make([]int, n+2),
	}
	for i := range tree.cost {
		tree.cost[i] = n + 1 // "unassigned, worse than anything" (spec §3)
	}
	tree.segm = newSegTree(n + 1)
	tree.dist = newDistanceArray(n)

	b := &builder{tree: tree}

	tree.root = tree.newNode(nilNode, 0, 0, 0)

	pos := treePos{node: tree.root, edgePos: 0}

	extension := 2
	repeatedExtension := false

	// Phase 0/1 are handled implicitly by manually inserting the first
	// leaf (the longest suffix, starting at position 1), matching the
	// original source's bootstrap before the explicit phase loop begins
	// at phase 2.
	firstLeaf := tree.newNode(tree.root, 1, n, 1)
	tree.nodes[tree.root].firstChild = firstLeaf

	for phase := 2; phase < n; phase++ {
		b.spa(&pos, phase, &extension, &repeatedExtension)
	}

	tree.dfsFinalize()

	return tree, nil
}

// newNode appends a node to the arena and returns its id.
func (t *Tree) newNode(father nodeID, start, end, pathPosition int) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		father:       father,
		edgeStart:    start,
		edgeEnd:      end,
		pathPosition: pathPosition,
		annot:        newInternalAnnotation(),
	})
	t.heap++
	return id
}

func (t *Tree) at(id nodeID) *node { return &t.nodes[id] }

// findSon returns the child of node whose incoming edge begins with ch,
// or nilNode if none.
func (t *Tree) findSon(id nodeID, ch byte) nodeID {
	child := t.at(id).firstChild
	for child != nilNode && t.text.At(t.at(child).edgeStart) != ch {
		t.counter++
		child = t.at(child).rightSibling
	}
	return child
}

// edgeLabelEnd returns the end index of id's incoming edge, substituting
// the virtual end e for leaves.
func (t *Tree) edgeLabelEnd(id nodeID) int {
	n := t.at(id)
	if n.isLeaf() {
		return t.e
	}
	return n.edgeEnd
}

func (t *Tree) edgeLabelLength(id nodeID) int {
	return t.edgeLabelEnd(id) - t.at(id).edgeStart + 1
}

func (t *Tree) isLastCharInEdge(id nodeID, edgePos int) bool {
	return edgePos == t.edgeLabelLength(id)-1
}

func (t *Tree) connectSiblings(left, right nodeID) {
	if left != nilNode {
		t.at(left).rightSibling = right
	}
	if right != nilNode {
		t.at(right).leftSibling = left
	}
}

// applyRule2NewSon appends a new leaf as the last sibling under node's
// children (spec §4.1 rule 4).
func (t *Tree) applyRule2NewSon(parent nodeID, edgeBegin, edgeEnd, pathPos int) nodeID {
	leaf := t.newNode(parent, edgeBegin, edgeEnd, pathPos)
	son := t.at(parent).firstChild
	for t.at(son).rightSibling != nilNode {
		son = t.at(son).rightSibling
	}
	t.connectSiblings(son, leaf)
	return leaf
}

// applyRule2Split splits nodeID's incoming edge at edgePos, inserting a
// new internal node with nodeID and a fresh leaf as its children (spec
// §4.1 rule 5).
func (t *Tree) applyRule2Split(id nodeID, edgeBegin, edgeEnd, pathPos, edgePos int) nodeID {
	n := t.at(id)
	father := n.father
	newInternal := t.newNode(father, n.edgeStart, n.edgeStart+edgePos, n.pathPosition)

	t.at(id).edgeStart += edgePos + 1

	newLeaf := t.newNode(newInternal, edgeBegin, edgeEnd, pathPos)

	left, right := t.at(id).leftSibling, t.at(id).rightSibling
	t.connectSiblings(left, newInternal)
	t.connectSiblings(newInternal, right)
	t.at(id).leftSibling = nilNode

	if t.at(father).firstChild == id {
		t.at(father).firstChild = newInternal
	}

	t.at(newInternal).firstChild = id
	t.at(id).father = newInternal
	t.connectSiblings(id, newLeaf)

	return newInternal
}

type skipMode bool

const (
	skip   skipMode = true
	noSkip skipMode = false
)

// traceSingleEdge searches for str in a single outgoing edge of node,
// without crossing into further edges (spec §4.1, "skip/count trick").
func (t *Tree) traceSingleEdge(id nodeID, str path, mode skipMode) (result nodeID, edgePos, charsFound int, searchDone bool) {
	searchDone = true

	cont := t.findSon(id, t.text.At(str.begin))
	if cont == nilNode {
		return id, t.edgeLabelLength(id) - 1, 0, true
	}

	id = cont
	length := t.edgeLabelLength(id)
	strLen := str.length()

	if mode == skip {
		t.counter++
		if length <= strLen {
			charsFound = length
			edgePos = length - 1
			if length < strLen {
				searchDone = false
			}
		} else {
			charsFound = strLen
			edgePos = strLen - 1
		}
		return id, edgePos, charsFound, searchDone
	}

	cmpLen := length
	if strLen < cmpLen {
		cmpLen = strLen
	}
	edgePos, charsFound = 1, 1
	start := t.at(id).edgeStart
	for ; edgePos < cmpLen; charsFound, edgePos = charsFound+1, edgePos+1 {
		t.counter++
		if t.text.At(start+edgePos) != t.text.At(str.begin+edgePos) {
			edgePos--
			return id, edgePos, charsFound, true
		}
	}
	edgePos--

	if charsFound < strLen {
		searchDone = false
	}
	return id, edgePos, charsFound, searchDone
}

// traceString walks str through the tree from node, crossing edges as
// needed (spec §4.1).
func (t *Tree) traceString(id nodeID, str path, mode skipMode) (result nodeID, edgePos, charsFound int) {
	searchDone := false
	for !searchDone {
		var edgeChars int
		id, edgePos, edgeChars, searchDone = t.traceSingleEdge(id, str, mode)
		str.begin += edgeChars
		charsFound += edgeChars
	}
	return id, edgePos, charsFound
}

// followSuffixLink moves pos to the position representing the suffix of
// pos's current path with the first character removed (spec §4.1 rule 1).
func (t *Tree) followSuffixLink(pos *treePos) {
	if pos.node == t.root {
		return
	}

	n := t.at(pos.node)
	if n.suffixLink == nilNode || !t.isLastCharInEdge(pos.node, pos.edgePos) {
		if n.father == t.root {
			pos.node = t.root
			return
		}

		gama := path{begin: n.edgeStart, end: n.edgeStart + pos.edgePos}
		start := t.at(n.father).suffixLink
		pos.node, pos.edgePos, _ = t.traceString(start, gama, skip)
		return
	}

	pos.node = n.suffixLink
	pos.edgePos = t.edgeLabelLength(pos.node) - 1
}

// sea is the Single Extension Algorithm: ensures the current extension is
// present in the tree, applying rule 2 (new-son or split) if it is not
// already, or reporting rule 3 if it is (spec §4.1).
func (b *builder) sea(pos *treePos, str path, afterRule3 bool) (ruleApplied int) {
	t := b.tree
	pathPos := str.begin
	var charsFound int

	if !afterRule3 {
		t.followSuffixLink(pos)
	}

	if pos.node == t.root {
		pos.node, pos.edgePos, charsFound = t.traceString(t.root, str, noSkip)
	} else {
		str.begin = str.end
		charsFound = 0

		if t.isLastCharInEdge(pos.node, pos.edgePos) {
			if next := t.findSon(pos.node, t.text.At(str.end)); next != nilNode {
				pos.node = next
				pos.edgePos = 0
				charsFound = 1
			}
		} else {
			n := t.at(pos.node)
			if t.text.At(n.edgeStart+pos.edgePos+1) == t.text.At(str.end) {
				pos.edgePos++
				charsFound = 1
			}
		}
	}

	if charsFound == str.end-str.begin+1 {
		if b.suffixless != nilNode {
			t.at(b.suffixless).suffixLink = t.at(pos.node).father
			b.suffixless = nilNode
		}
		return 3
	}

	if t.isLastCharInEdge(pos.node, pos.edgePos) || pos.node == t.root {
		if t.at(pos.node).firstChild != nilNode {
			t.applyRule2NewSon(pos.node, str.begin+charsFound, str.end, pathPos)
			if b.suffixless != nilNode {
				t.at(b.suffixless).suffixLink = pos.node
				b.suffixless = nilNode
			}
		}
		return 2
	}

	tmp := t.applyRule2Split(pos.node, str.begin+charsFound, str.end, pathPos, pos.edgePos)
	if b.suffixless != nilNode {
		t.at(b.suffixless).suffixLink = tmp
	}
	if t.edgeLabelLength(tmp) == 1 && t.at(tmp).father == t.root {
		t.at(tmp).suffixLink = t.root
		b.suffixless = nilNode
	} else {
		b.suffixless = tmp
	}
	pos.node = tmp
	return 2
}

// spa is the Single Phase Algorithm: applies explicit extensions from
// *extension through phase+1, or until rule 3 stops the phase early
// (spec §4.1).
func (b *builder) spa(pos *treePos, phase int, extension *int, repeatedExtension *bool) {
	t := b.tree
	t.e = phase + 1

	for *extension <= phase+1 {
		str := path{begin: *extension, end: phase + 1}
		rule := b.sea(pos, str, *repeatedExtension)

		if rule == 3 {
			*repeatedExtension = true
			return
		}
		*repeatedExtension = false
		*extension++
	}
}
