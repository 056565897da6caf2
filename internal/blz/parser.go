package blz

import "fmt"

// Phrase is one parser output unit (spec §4.4, §6): a reference to an
// earlier occurrence of length L starting at Src (0-based, so Text
// position Src+1), followed by one literal byte. Src is meaningless when
// Length == 0.
type Phrase struct {
	Src     int
	Length  int
	Literal byte
}

// Parser holds the state the greedy bounded-cost parse loop threads
// through every iteration (spec §4.4): the tree being consumed,
// textPos (next position to encode), the phrase count z, and
// positionOfPreviousC, the last position whose cost reached the bound.
type Parser struct {
	tree *Tree

	textPos             int
	z                   int
	positionOfPreviousC int
}

// NewParser builds a Parser over tree bound by cost C. It sets
// tree.costBound, mirroring the original source's `tree->COST =
// atoi(argv[2])` assignment made once, between tree construction and
// the parse loop.
func NewParser(tree *Tree, costBound int) *Parser {
	tree.costBound = costBound
	return &Parser{tree: tree, textPos: 1}
}

// Run executes the full greedy parse (spec §4.4), returning the emitted
// phrases in order. If onPhrase is non-nil, it is called once per phrase
// as soon as that phrase is computed — while textPos is still the start
// of the phrase just emitted, and before the parse advances — mirroring
// the original source's parseBLZ, which interleaves its progress
// fprintf(stderr, "%i MB\n", ...) with phrase computation inside the
// same while loop rather than after it finishes. An error returned by
// onPhrase aborts the parse immediately. Run returns ErrCostExceeded if
// a cost update would exceed the bound, which signals an invariant
// violation rather than a recoverable condition.
func (p *Parser) Run(onPhrase func(textPos int, phrase Phrase) error) ([]Phrase, error) {
	t := p.tree
	n := t.text.Len()

	var phrases []Phrase

	for p.textPos <= n {
		match, err := t.FindSubstring(p.textPos, n-p.textPos+1)
		if err != nil {
			return nil, fmt.Errorf("parser: at textPos=%d: %w", p.textPos, err)
		}
		length := match.Length
		src := match.Pos

		k := 0
		for i := 0; i < length; i++ {
			pos := p.textPos + i
			candidateCost := t.cost[src+k] + 1

			if candidateCost > t.costBound {
				return nil, fmt.Errorf("%w: U[%d] would become %d at textPos=%d (C=%d)",
					ErrCostExceeded, pos, candidateCost, p.textPos, t.costBound)
			}

			t.cost[pos] = candidateCost
			if t.cost[pos] == t.costBound {
				t.dist.set(pos, 0)
				for q := pos - 1; q > p.positionOfPreviousC; q-- {
					t.dist.set(q, t.dist.at(q+1)+1)
				}
				p.positionOfPreviousC = pos
			}
			t.segm.update(pos, t.cost[pos])

			k++
			if src+k == p.textPos {
				k = 0
			}
		}

		literalPos := p.textPos + length
		t.cost[literalPos] = 0
		t.segm.update(literalPos, 0)

		t.propagateAnnotation(p.textPos, length)

		phrase := Phrase{
			Src:     src - 1,
			Length:  length,
			Literal: t.text.At(literalPos),
		}
		phraseTextPos := p.textPos

		phrases = append(phrases, phrase)
		p.z++

		if onPhrase != nil {
			if err := onPhrase(phraseTextPos, phrase); err != nil {
				return nil, fmt.Errorf("parser: onPhrase at textPos=%d: %w", phraseTextPos, err)
			}
		}

		p.textPos += length + 1
	}

	return phrases, nil
}

// PhraseCount returns z, the number of phrases emitted so far.
func (p *Parser) PhraseCount() int { return p.z }
