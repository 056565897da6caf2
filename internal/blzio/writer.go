package blzio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hdbn/BAT-LZ/internal/blz"
)

// PhraseWriter renders a parse to stdout in the exact format spec §6
// requires: an `n = <length>` header, one `(<src0>, <length>,
// <literal-byte-value>)` line per phrase, and a trailing `z = <count>
// phrases` footer.
type PhraseWriter struct {
	w *bufio.Writer
}

func NewPhraseWriter(w io.Writer) *PhraseWriter {
	return &PhraseWriter{w: bufio.NewWriter(w)}
}

func (pw *PhraseWriter) WriteHeader(n int) error {
	_, err := fmt.Fprintf(pw.w, "n = %d\n", n)
	return err
}

func (pw *PhraseWriter) WritePhrase(p blz.Phrase) error {
	_, err := fmt.Fprintf(pw.w, "(%d, %d, %d)\n", p.Src, p.Length, p.Literal)
	return err
}

func (pw *PhraseWriter) WriteFooter(z int) error {
	if _, err := fmt.Fprintf(pw.w, "\nz = %d phrases\n", z); err != nil {
		return err
	}
	return pw.w.Flush()
}
