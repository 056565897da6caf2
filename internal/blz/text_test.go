package blz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextRejectsEmptyPayload(t *testing.T) {
	_, err := NewText(nil, DefaultSentinel)
	require.ErrorIs(t, err, ErrEmptyPayload)
}

func TestNewTextRejectsSentinelInPayload(t *testing.T) {
	_, err := NewText([]byte{'a', 'b', 0x00, 'c'}, DefaultSentinel)
	require.ErrorIs(t, err, ErrSentinelByte)
}

func TestNewTextAppendsSentinel(t *testing.T) {
	text, err := NewText([]byte("abab"), DefaultSentinel)
	require.NoError(t, err)

	assert.Equal(t, 4, text.Len())
	assert.Equal(t, byte('a'), text.At(1))
	assert.Equal(t, byte('b'), text.At(4))
	assert.Equal(t, DefaultSentinel, text.At(5))
	assert.Equal(t, []byte("ab"), text.Slice(1, 2))
}
