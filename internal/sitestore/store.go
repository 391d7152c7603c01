// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitestore persists extraction output — rendered citations,
// assembled meetings, and their entity rosters — to a SQLite database the
// archive site builder reads.
package sitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/seminar-engine/pkg/types"
)

// Store manages the site SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the site database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS citations (
			id TEXT PRIMARY KEY,
			html TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meetings (
			fragment TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			html TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meeting_entities (
			meeting_fragment TEXT NOT NULL REFERENCES meetings(fragment),
			category TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			label TEXT,
			fragment TEXT,
			roles TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_meeting_entities_meeting
			ON meeting_entities(meeting_fragment)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Export replaces the stored extraction output with the given bibliography
// and meetings, atomically.
func (s *Store) Export(bibliography map[string]string, meetings []types.Meeting) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"meeting_entities", "meetings", "citations"} {
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for id, html := range bibliography {
		if _, err = tx.Exec(`INSERT INTO citations (id, html) VALUES (?, ?)`, id, html); err != nil {
			return fmt.Errorf("inserting citation %q: %w", id, err)
		}
	}

	for _, m := range meetings {
		if _, err = tx.Exec(
			`INSERT INTO meetings (fragment, date, html) VALUES (?, ?, ?)`,
			m.Fragment, m.Date.UTC().Format(time.RFC3339), m.HTML,
		); err != nil {
			return fmt.Errorf("inserting meeting %q: %w", m.Fragment, err)
		}
		for _, e := range m.Entities {
			if _, err = tx.Exec(
				`INSERT INTO meeting_entities
					(meeting_fragment, category, entity_id, label, fragment, roles)
					VALUES (?, ?, ?, ?, ?, ?)`,
				m.Fragment, e.Category, e.ID, e.Label, e.Fragment, strings.Join(e.Roles, ","),
			); err != nil {
				return fmt.Errorf("inserting entity %q for meeting %q: %w", e.ID, m.Fragment, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// Summary holds row counts from the last export.
type Summary struct {
	Citations int
	Meetings  int
	Entities  int
}

// Summarize reports how many rows each table holds.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"citations", &sum.Citations},
		{"meetings", &sum.Meetings},
		{"meeting_entities", &sum.Entities},
	} {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + q.table).Scan(q.dst); err != nil {
			return Summary{}, fmt.Errorf("counting %s: %w", q.table, err)
		}
	}
	return sum, nil
}
