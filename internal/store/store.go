// Package store provides the optional SQLite fragment database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rap-core/digest"
)

// Store is the fragment database handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := Init(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Init applies pragmas and the schema to db.
func Init(db *sql.DB) error {
	for _, p := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 10000"} {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("store: schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// RunInfo describes a run being recorded.
type RunInfo struct {
	Window  digest.Window
	Enzymes []string // NAME:SEQ:POS, catalog order
	Inputs  []string
}

// Run records the fragments of one invocation inside a single transaction.
type Run struct {
	ID string

	tx   *sql.Tx
	stmt *sql.Stmt
	n    int
}

// BeginRun inserts the run row and prepares fragment inserts.
func (s *Store) BeginRun(ctx context.Context, info RunInfo) (*Run, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: begin: %w", err)
	}
	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, lower_size, upper_size, enzymes, inputs) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UnixMilli(), info.Window.Lower, info.Window.Upper,
		strings.Join(info.Enzymes, ","), strings.Join(info.Inputs, ","),
	)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("store: insert run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fragments (run_id, seq, sequence_id, start_pos, end_pos, upstream, length, downstream) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("store: prepare: %w", err)
	}
	return &Run{ID: id, tx: tx, stmt: stmt}, nil
}

// Add inserts one fragment.
func (r *Run) Add(ctx context.Context, f digest.Fragment) error {
	r.n++
	if _, err := r.stmt.ExecContext(ctx, r.ID, r.n, f.SequenceID, f.Start, f.End, f.Upstream, f.Length, f.Downstream); err != nil {
		return fmt.Errorf("store: insert fragment: %w", err)
	}
	return nil
}

// Commit stores the run totals and commits.
func (r *Run) Commit(ctx context.Context, records, bases int) error {
	defer r.stmt.Close()
	_, err := r.tx.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, records = ?, bases = ?, fragments = ? WHERE id = ?`,
		time.Now().UnixMilli(), records, bases, r.n, r.ID)
	if err != nil {
		_ = r.tx.Rollback()
		return fmt.Errorf("store: finish run: %w", err)
	}
	if err := r.tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// Rollback discards the run.
func (r *Run) Rollback() error {
	_ = r.stmt.Close()
	return r.tx.Rollback()
}

// Fragments returns the stored fragments of a run in emission order.
func (s *Store) Fragments(ctx context.Context, runID string) ([]digest.Fragment, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT sequence_id, start_pos, end_pos, upstream, length, downstream FROM fragments WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()
	var out []digest.Fragment
	for rows.Next() {
		var f digest.Fragment
		if err := rows.Scan(&f.SequenceID, &f.Start, &f.End, &f.Upstream, &f.Length, &f.Downstream); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
