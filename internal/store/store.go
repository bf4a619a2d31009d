// Package store holds a roster table in an in-memory SQLite database. The
// flat export file is the source of truth; SQLite is the query engine used
// for name lookup and bulk predicate updates until the table is saved.
package store

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Store is a loaded roster table.
type Store struct {
	schema   *types.Schema
	db       *sql.DB
	preamble []string
	rows     int
}

// Open creates an empty Store for schema.
func Open(schema *types.Schema) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL(schema)); err != nil {
		db.Close()
		return nil, fmt.Errorf("create roster table: %w", err)
	}
	return &Store{schema: schema, db: db}, nil
}

// OpenFile opens a Store for schema and loads path into it.
func OpenFile(schema *types.Schema, path string) (*Store, error) {
	s, err := Open(schema)
	if err != nil {
		return nil, err
	}
	if err := s.Load(path); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Schema returns the column layout of the table.
func (s *Store) Schema() *types.Schema { return s.schema }

// Preamble returns the raw comment lines that precede the first data row:
// the banner, the header block, and the // sentinel.
func (s *Store) Preamble() []string {
	out := make([]string, len(s.preamble))
	copy(out, s.preamble)
	return out
}

// Len returns the number of data rows.
func (s *Store) Len() int { return s.rows }

// Load replaces the table contents with the roster file at path.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := s.LoadFrom(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Save writes the table to path atomically. The preamble is written only
// when keepPreamble is set.
func (s *Store) Save(path string, keepPreamble bool) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	return writeAtomic(path, func(w io.Writer) error {
		return s.Export(w, keepPreamble)
	})
}
