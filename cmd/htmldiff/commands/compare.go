// Package commands implements the htmldiff CLI commands.
package commands

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/htmldiff/htmldiff"
	"github.com/htmldiff/htmldiff/cmd/htmldiff/internal/ui"
	"github.com/htmldiff/htmldiff/internal/config"
	"github.com/htmldiff/htmldiff/internal/history"
)

// Compare diffs pairs of HTML files and prints one line per difference.
// An unreadable file is reported and the remaining pairs still run; only
// usage mistakes abort the whole command.
func Compare(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	maxDepth := fs.Int("max-depth", cfg.MaxDepth, "recursion depth limit")
	minify := fs.Bool("minify", cfg.Minify, "minify inputs before comparing")
	record := fs.Bool("record", false, "record the run in the history database")
	noColor := fs.Bool("no-color", false, "plain output without styling")
	historyPath := fs.String("db", cfg.HistoryPath, "history database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("no files given")
	}
	if len(files)%2 != 0 {
		return fmt.Errorf("need to pass an even number of HTML files")
	}

	var store *history.Store
	if *record {
		if *historyPath == "" {
			return fmt.Errorf("-record requires a history database path (flag -db or config history_path)")
		}
		store, err = history.Open(*historyPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	opts := []htmldiff.Option{htmldiff.WithMaxDepth(*maxDepth)}
	if *minify {
		opts = append(opts, htmldiff.WithMinify())
	}

	for i := 0; i < len(files); i += 2 {
		comparePair(files[i], files[i+1], opts, store, !*noColor)
	}
	return nil
}

// comparePair runs one file pair. I/O and comparison failures are reported
// per pair so a bad file never aborts the rest of the run.
func comparePair(firstPath, secondPath string, opts []htmldiff.Option, store *history.Store, color bool) {
	first, err1 := os.ReadFile(firstPath)
	second, err2 := os.ReadFile(secondPath)
	if err1 != nil || err2 != nil {
		printReadError(firstPath, err1)
		printReadError(secondPath, err2)
		return
	}

	diffs, err := htmldiff.CompareHTML(string(first), string(second), opts...)
	if err != nil {
		fmt.Printf("%q vs %q: error: %v\n", firstPath, secondPath, err)
		return
	}

	for _, d := range diffs {
		fmt.Println(ui.Render(d, color))
	}

	if store != nil {
		if _, err := store.Add(history.Summarize(firstPath, secondPath, diffs)); err != nil {
			log.Printf("failed to record run: %v", err)
		}
	}
}

func printReadError(path string, err error) {
	if err != nil {
		fmt.Printf("%q: error: %v\n", path, err)
	}
}
