package blz

// Match is the result of a longest-admissible-match query: the source
// position (1-based, into Text) and length of the best cost-admissible
// occurrence found for the wanted substring (spec §4.3.3).
type Match struct {
	Pos    int
	Length int
}

// FindSubstring is ST_FindSubstring from spec §4.3.3: it descends the
// tree from the root looking for the longest extension of W = T[from..]
// (capped at maxLen characters) whose cost never reaches the tree's
// cost bound, pruning subtrees whose optimisticMinMax is already known
// to be +∞ (no admissible candidate) or == C (capped, but possibly
// still useful as a tie-break candidate via D[]).
func (t *Tree) FindSubstring(from, maxLen int) (Match, error) {
	var best Match

	node := t.findSon(t.root, t.text.At(from))
	j := 0

	for node != nilNode {
		n := t.at(node)

		if n.annot.optimisticMinMax == infCost {
			return best, nil
		}
		if n.annot.optimisticMinMax == t.costBound {
			if d := t.dist.at(n.annot.optimisticTextPos); d > best.Length {
				best = Match{Pos: n.annot.optimisticTextPos, Length: d}
			}
			return best, nil
		}

		edgeEnd := t.edgeLabelEnd(node)
		k := n.edgeStart
		for j < maxLen && k <= edgeEnd && t.text.At(k) == t.text.At(from+j) {
			j++
			k++
		}

		if n.annot.optimisticTextPos == 0 {
			return best, ErrUninitializedMatch
		}
		best = Match{Pos: n.annot.optimisticTextPos, Length: j}

		switch {
		case j == maxLen:
			return best, nil
		case k > edgeEnd:
			node = t.findSon(node, t.text.At(from+j))
		default:
			return best, nil
		}
	}

	return best, nil
}
