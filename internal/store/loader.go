package store

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// commentChar starts comment lines: the banner, the header block, the //
// sentinel, and any comment between data rows.
const commentChar = '/'

// LoadFrom replaces the table contents with the roster read from r. Loading
// is transactional: on any error the table keeps its previous contents.
// Every data row must have exactly one field per schema column.
func (s *Store) LoadFrom(r io.Reader) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading roster: %w", err)
	}

	preamble, err := readPreamble(data)
	if err != nil {
		return err
	}
	records, err := readRecords(data, s.schema.Len())
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + tableName); err != nil {
		return fmt.Errorf("clearing roster table: %w", err)
	}
	if err := insertRecords(tx, s.schema, records); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}

	s.preamble = preamble
	s.rows = len(records)
	return nil
}

// readPreamble returns the leading run of comment lines with line
// terminators removed.
func readPreamble(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, string(commentChar)) {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning preamble: %w", err)
	}
	return lines, nil
}

// readRecords parses every non-comment, non-blank line as a CSV record of
// exactly width fields.
func readRecords(data []byte, width int) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comment = commentChar
	cr.FieldsPerRecord = width
	cr.LazyQuotes = true

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %v", types.ErrSchemaMismatch, err)
			}
			return nil, fmt.Errorf("parsing roster rows: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// insertRecords inserts records in file order, numbering them from zero.
func insertRecords(tx *sql.Tx, schema *types.Schema, records [][]string) error {
	placeholders := make([]string, schema.Len()+1)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		tableName,
		selectColumns(schema),
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing roster insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, schema.Len()+1)
	for pos, rec := range records {
		args[0] = pos
		for i, v := range rec {
			args[i+1] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", pos, err)
		}
	}
	return nil
}
