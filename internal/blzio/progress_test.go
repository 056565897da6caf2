package blzio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportOnlyLogsOnBoundaryCrossing(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf)

	p.Report(1, 0) // well within the first MB, no line expected
	assert.Empty(t, buf.String())

	p.Report(mebibyte-2, 5) // crosses into the 1 MB mark
	assert.Contains(t, buf.String(), "1 MB")
}

func TestDoneLogsPhraseCount(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf)
	p.Done(42)
	assert.Contains(t, buf.String(), "42 phrases")
}
