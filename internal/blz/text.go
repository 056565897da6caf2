package blz

import "fmt"

// DefaultSentinel is the reserved terminator byte appended to every Text.
// The original BAT-LZ source uses the zero byte; spec note 5 allows any
// byte outside the payload's alphabet, but the CLI always picks zero.
const DefaultSentinel byte = 0x00

// Text is a 1-indexed byte buffer: bytes[0] is unused padding, bytes[1..n]
// is the payload, and bytes[n+1] holds the sentinel appended at
// construction time. Keeping the buffer 1-indexed mirrors the suffix
// tree's pathPosition/edgeStart/edgeEnd fields, which are all 1-based text
// offsets in the original source.
type Text struct {
	bytes    []byte
	n        int
	sentinel byte
}

// NewText validates payload and wraps it in a 1-indexed Text with sentinel
// appended at position n+1. It rejects a payload containing the sentinel
// byte (spec §3: "The terminator MUST NOT appear inside T[1..n]").
func NewText(payload []byte, sentinel byte) (*Text, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	for i, b := range payload {
		if b == sentinel {
			return nil, fmt.Errorf("%w: at payload offset %d", ErrSentinelByte, i)
		}
	}

	n := len(payload)
	buf := make([]byte, n+2)
	copy(buf[1:], payload)
	buf[n+1] = sentinel

	return &Text{bytes: buf, n: n, sentinel: sentinel}, nil
}

// Len returns n, the payload length (not counting the sentinel).
func (t *Text) Len() int { return t.n }

// At returns the byte at 1-based position i, where i may run up to n+1 to
// reach the sentinel.
func (t *Text) At(i int) byte { return t.bytes[i] }

// Slice returns the 1-based inclusive range T[from..to] as a Go slice.
func (t *Text) Slice(from, to int) []byte { return t.bytes[from : to+1] }
