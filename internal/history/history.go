// Package history records comparison runs in a SQLite database.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/htmldiff/htmldiff"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Record is one stored comparison run.
type Record struct {
	ID         int64
	RanAt      time.Time
	FirstFile  string
	SecondFile string

	Total           int
	NodeType        int
	NodeName        int
	NodeAttributes  int
	NodeText        int
	NotPresentCount int
}

// Summarize builds a record from one comparison's output.
func Summarize(firstFile, secondFile string, diffs []htmldiff.Difference) Record {
	r := Record{
		RanAt:      time.Now().UTC(),
		FirstFile:  firstFile,
		SecondFile: secondFile,
		Total:      len(diffs),
	}
	for _, d := range diffs {
		switch d.Kind {
		case htmldiff.NodeType:
			r.NodeType++
		case htmldiff.NodeName:
			r.NodeName++
		case htmldiff.NodeAttributes:
			r.NodeAttributes++
		case htmldiff.NodeText:
			r.NodeText++
		case htmldiff.NotPresent:
			r.NotPresentCount++
		}
	}
	return r
}

// Store records comparison runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the run database at path, creating it if needed, and brings
// the schema up to date. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; cap the pool so every
	// statement sees the same database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// runMigrations brings the schema up to date from the embedded migrations
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores one run and returns its id.
func (s *Store) Add(r Record) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO runs (ran_at, first_file, second_file, total, node_type, node_name, node_attributes, node_text, not_present)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RanAt, r.FirstFile, r.SecondFile,
		r.Total, r.NodeType, r.NodeName, r.NodeAttributes, r.NodeText, r.NotPresentCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

// Recent returns the most recent n runs, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, ran_at, first_file, second_file, total, node_type, node_name, node_attributes, node_text, not_present
		FROM runs ORDER BY ran_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.RanAt, &r.FirstFile, &r.SecondFile,
			&r.Total, &r.NodeType, &r.NodeName, &r.NodeAttributes, &r.NodeText, &r.NotPresentCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return records, nil
}
