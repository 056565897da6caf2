package blzcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiresFileAndCost(t *testing.T) {
	_, err := Parse([]string{})
	require.Error(t, err)

	_, err = Parse([]string{"only-a-file"})
	require.Error(t, err)
}

func TestParseHappyPath(t *testing.T) {
	cfg, err := Parse([]string{"payload.bin", "3"})
	require.NoError(t, err)
	assert.Equal(t, "payload.bin", cfg.InputFile)
	assert.Equal(t, 3, cfg.CostBound)
	assert.False(t, cfg.PrintTree)
	assert.False(t, cfg.VerifyLZF)
}

func TestParseFlagsBeforePositionalArgs(t *testing.T) {
	cfg, err := Parse([]string{"-print-tree", "-verify-lzf", "payload.bin", "5"})
	require.NoError(t, err)
	assert.True(t, cfg.PrintTree)
	assert.True(t, cfg.VerifyLZF)
	assert.Equal(t, 5, cfg.CostBound)
}

func TestValidateRejectsNonPositiveCost(t *testing.T) {
	cfg := &Config{InputFile: "x", CostBound: 0}
	require.Error(t, cfg.Validate())

	cfg.CostBound = -1
	require.Error(t, cfg.Validate())

	cfg.CostBound = 1
	require.NoError(t, cfg.Validate())
}

func TestCostFilenameMatchesOriginalNamingScheme(t *testing.T) {
	cfg := &Config{InputFile: "corpus.txt", CostBound: 7}
	assert.Equal(t, "corpus.txt_greedier7.cost", cfg.CostFilename())
}
