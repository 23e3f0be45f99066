package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/htmldiff/htmldiff"
	"github.com/htmldiff/htmldiff/internal/config"
	"github.com/htmldiff/htmldiff/internal/live"
)

// Serve watches two HTML files and serves their live diff over HTTP and
// WebSocket until interrupted.
func Serve(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.ServeAddr, "listen address")
	interval := fs.Duration("interval", cfg.Interval(), "file poll interval")
	maxDepth := fs.Int("max-depth", cfg.MaxDepth, "recursion depth limit")
	minify := fs.Bool("minify", cfg.Minify, "minify inputs before comparing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) != 2 {
		return fmt.Errorf("serve needs exactly two HTML files")
	}
	if *interval <= 0 {
		*interval = 500 * time.Millisecond
	}

	opts := []htmldiff.Option{htmldiff.WithMaxDepth(*maxDepth)}
	if *minify {
		opts = append(opts, htmldiff.WithMinify())
	}

	server := live.New(files[0], files[1], *interval, opts...)
	return server.Run(*addr)
}
