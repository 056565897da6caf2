// Command batlz parses a byte payload into a bounded-cost LZ phrase
// stream (spec §6): `batlz [-print-tree] [-verify-lzf] <input-file> <C>`.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hdbn/BAT-LZ/internal/blz"
	"github.com/hdbn/BAT-LZ/internal/blzcli"
	"github.com/hdbn/BAT-LZ/internal/blzio"
	"github.com/hdbn/BAT-LZ/internal/diagnostics"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	errLog := log.New(os.Stderr, "", 0)

	cfg, err := blzcli.Parse(args)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("batlz: can't open file: %w", err)
	}

	errLog.Println("Constructing tree...")
	text, err := blz.NewText(payload, blz.DefaultSentinel)
	if err != nil {
		return err
	}

	tree, err := blz.BuildTree(text)
	if err != nil {
		return err
	}

	if msg, dfsErr := diagnostics.CheckDFS(tree, text.Len()); dfsErr != nil {
		errLog.Println(dfsErr)
	} else {
		errLog.Println(msg)
	}

	if cfg.PrintTree {
		if err := diagnostics.PrintTree(os.Stderr, tree); err != nil {
			return err
		}
	}

	errLog.Println("Parsing...")
	errLog.Println("filename_cost:", cfg.CostFilename())

	progress := blzio.NewProgress()
	parser := blz.NewParser(tree, cfg.CostBound)

	out := blzio.NewPhraseWriter(os.Stdout)
	if err := out.WriteHeader(text.Len()); err != nil {
		return err
	}

	_, err = parser.Run(func(textPos int, phrase blz.Phrase) error {
		progress.Report(textPos, phrase.Length)
		return out.WritePhrase(phrase)
	})
	if err != nil {
		return err
	}

	if err := out.WriteFooter(parser.PhraseCount()); err != nil {
		return err
	}
	progress.Done(parser.PhraseCount())

	if cfg.VerifyLZF {
		blzio.VerifyAgainstLZF(progress, payload, parser.PhraseCount())
	}

	errLog.Printf("checksum: %016x\n", diagnostics.Checksum(payload))

	return nil
}
