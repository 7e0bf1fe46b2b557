// Package journal keeps an append-only SQLite log of every intent the desk
// handled, applied or rejected. It backs the activity view and the
// `intents` command.
package journal

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/inkpress/inkpress-admin/pkg/actions"
)

//go:embed schema.sql
var schemaSQL string

// ErrClosed is returned after Close
var ErrClosed = errors.New("journal is closed")

// Entry is one journaled intent
type Entry struct {
	Seq    int64          `json:"seq" yaml:"seq"`
	Table  string         `json:"table" yaml:"table"`
	Intent actions.Intent `json:"intent" yaml:"intent"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the desk rejected the intent
func (e Entry) Failed() bool { return e.Error != "" }

// Journal is safe for concurrent use
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the journal at path. Use ":memory:" in tests.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases alive between calls
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database handle
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// Record appends an intent. applyErr is the desk's verdict, nil on success.
func (j *Journal) Record(table string, intent actions.Intent, applyErr error) error {
	targets, err := json.Marshal(intent.TargetIDs)
	if err != nil {
		return fmt.Errorf("failed to encode targets: %w", err)
	}
	args, err := json.Marshal(intent.Args)
	if err != nil {
		return fmt.Errorf("failed to encode args: %w", err)
	}
	msg := ""
	if applyErr != nil {
		msg = applyErr.Error()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return ErrClosed
	}

	_, err = j.db.Exec(
		`INSERT INTO intents (id, table_name, action_id, target_ids, args, error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		intent.ID, table, intent.ActionID, string(targets), string(args), msg, intent.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record intent %s: %w", intent.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. An empty table lists
// every table; limit <= 0 means no limit.
func (j *Journal) Recent(table string, limit int) ([]Entry, error) {
	query := `SELECT seq, id, table_name, action_id, target_ids, args, error, created_at FROM intents`
	var params []any
	if table != "" {
		query += ` WHERE table_name = ?`
		params = append(params, table)
	}
	query += ` ORDER BY seq DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		params = append(params, limit)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil, ErrClosed
	}

	rows, err := j.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e             Entry
			targets, args string
			createdAt     string
		)
		if err := rows.Scan(&e.Seq, &e.Intent.ID, &e.Table, &e.Intent.ActionID, &targets, &args, &e.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		if err := json.Unmarshal([]byte(targets), &e.Intent.TargetIDs); err != nil {
			return nil, fmt.Errorf("corrupt targets in journal row %d: %w", e.Seq, err)
		}
		if err := json.Unmarshal([]byte(args), &e.Intent.Args); err != nil {
			return nil, fmt.Errorf("corrupt args in journal row %d: %w", e.Seq, err)
		}
		if e.Intent.At, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("corrupt timestamp in journal row %d: %w", e.Seq, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of journaled intents
func (j *Journal) Count() (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM intents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count intents: %w", err)
	}
	return n, nil
}
