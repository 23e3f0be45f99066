package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/htmldiff/htmldiff/cmd/htmldiff/commands"
)

// Version information (can be overridden at build time with -ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error

	switch command {
	case "compare":
		err = commands.Compare(args)
	case "serve":
		err = commands.Serve(args)
	case "history":
		err = commands.History(args)
	case "version", "--version", "-v":
		printVersion()
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		// Bare file arguments are treated as an implicit compare, matching
		// `htmldiff a.html b.html`.
		if strings.HasPrefix(command, "-") {
			printUsage()
			os.Exit(1)
		}
		err = commands.Compare(os.Args[1:])
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("htmldiff %s (commit %s, built %s)\n", version, commit, date)
}

func printUsage() {
	fmt.Println(`htmldiff - structural diff for HTML documents

Usage:
  htmldiff compare <a.html> <b.html> [more pairs...]   Compare file pairs
  htmldiff serve <a.html> <b.html> [-addr host:port]   Watch two files and serve the live diff
  htmldiff history [-db path] [-n count]               List recorded comparison runs
  htmldiff version                                     Print version information
  htmldiff help                                        Show this help

Compare flags:
  -max-depth N    Recursion depth limit (default from config)
  -minify         Minify inputs before comparing
  -record         Record the run in the history database
  -no-color       Plain output without styling

Differences are printed one per line as: path: [kind] message.
A clean exit with no output means the documents are structurally equal.`)
}
