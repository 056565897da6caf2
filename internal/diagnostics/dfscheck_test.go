package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdbn/BAT-LZ/internal/blz"
)

func TestCheckDFSMatchesAfterConstruction(t *testing.T) {
	text, err := blz.NewText([]byte("mississippi"), blz.DefaultSentinel)
	require.NoError(t, err)
	tree, err := blz.BuildTree(text)
	require.NoError(t, err)

	msg, err := CheckDFS(tree, text.Len())
	require.NoError(t, err)
	assert.Equal(t, "dfs matches", msg)
}

func TestCheckDFSSurvivesAfterParsing(t *testing.T) {
	// Testable Property 7: re-deriving the leaf count must still match
	// after the parser has mutated cost-derived annotation fields.
	text, err := blz.NewText([]byte("aaaa"), blz.DefaultSentinel)
	require.NoError(t, err)
	tree, err := blz.BuildTree(text)
	require.NoError(t, err)

	parser := blz.NewParser(tree, 2)
	_, err = parser.Run(nil)
	require.NoError(t, err)

	msg, err := CheckDFS(tree, text.Len())
	require.NoError(t, err)
	assert.Equal(t, "dfs matches", msg)
}
