package commands

import (
	"flag"
	"fmt"

	"github.com/htmldiff/htmldiff/internal/config"
	"github.com/htmldiff/htmldiff/internal/history"
)

// History lists recent recorded comparison runs, newest first.
func History(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.HistoryPath, "history database path")
	count := fs.Int("n", 20, "number of runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" {
		return fmt.Errorf("no history database configured (flag -db or config history_path)")
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(*count)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  %s vs %s: %d difference(s)", r.RanAt.Format("2006-01-02 15:04:05"), r.FirstFile, r.SecondFile, r.Total)
		if r.Total > 0 {
			fmt.Printf(" (type=%d name=%d attrs=%d text=%d missing=%d)",
				r.NodeType, r.NodeName, r.NodeAttributes, r.NodeText, r.NotPresentCount)
		}
		fmt.Println()
	}
	return nil
}
