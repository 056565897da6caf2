// Package blzcli wires the command-line surface of the batlz program:
// flag parsing against a long-lived Config, matching the teacher's
// `flag.StringVar(&server.Field, ...)` convention in app/main.go.
package blzcli

import (
	"errors"
	"flag"
	"fmt"
)

// Config holds every value parsed from argv before construction begins.
type Config struct {
	InputFile string
	CostBound int

	PrintTree bool
	VerifyLZF bool
}

// Parse populates a Config from args (excluding argv[0]), mirroring
// spec §6's invocation `program <input-file> <C>` plus optional
// diagnostic flags carried over from the teacher's habit of exposing
// debug switches (`-dir`, `-dbfilename`) alongside required arguments.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("batlz", flag.ContinueOnError)
	cfg := &Config{}
	fs.BoolVar(&cfg.PrintTree, "print-tree", false, "print the constructed suffix tree to stderr before parsing")
	fs.BoolVar(&cfg.VerifyLZF, "verify-lzf", false, "cross-check output size against an independent LZF compression pass")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return nil, fmt.Errorf("usage: %s [-print-tree] [-verify-lzf] <input-file> <C>", "batlz")
	}

	cfg.InputFile = rest[0]

	cost, err := parseCost(rest[1])
	if err != nil {
		return nil, err
	}
	cfg.CostBound = cost

	return cfg, cfg.Validate()
}

func parseCost(s string) (int, error) {
	var c int
	if _, err := fmt.Sscanf(s, "%d", &c); err != nil {
		return 0, fmt.Errorf("blzcli: cost bound %q is not an integer: %w", s, err)
	}
	return c, nil
}

// Validate checks invariants Parse alone can't: C must be a positive
// integer (spec §6).
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("blzcli: input file is required")
	}
	if c.CostBound <= 0 {
		return fmt.Errorf("blzcli: cost bound must be positive, got %d", c.CostBound)
	}
	return nil
}

// CostFilename reproduces the original source's unused
// `filename_cost` construction (`<input-file>_greedier<C>.cost`), kept
// as a no-op per spec §9 Open Question 2: computed and logged, never
// opened or written.
func (c *Config) CostFilename() string {
	return fmt.Sprintf("%s_greedier%d.cost", c.InputFile, c.CostBound)
}
