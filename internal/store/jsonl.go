package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// JournalFile is the journal's file name inside the data directory.
const JournalFile = "edits.jsonl"

// Journal is an append-only record of applied contract edits, one JSON
// object per line.
type Journal struct {
	path string
}

// OpenJournal creates dataDir and an empty journal file when they do not
// exist.
func OpenJournal(dataDir string) (*Journal, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(dataDir, JournalFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("creating %s: %w", JournalFile, err)
		}
	}
	return &Journal{path: path}, nil
}

// Path returns the journal file path.
func (j *Journal) Path() string { return j.path }

// Record appends e, filling EditID and AppliedAt when they are empty.
func (j *Journal) Record(e types.ContractEdit) error {
	if e.EditID == "" {
		e.EditID = NewID()
	}
	if e.AppliedAt.IsZero() {
		e.AppliedAt = time.Now().UTC()
	}

	records, err := readJSONL(j.path)
	if err != nil {
		return err
	}
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling edit: %w", err)
	}
	records = append(records, json.RawMessage(line))
	return writeJSONL(j.path, records)
}

// Entries returns every recorded edit in order. Malformed lines are skipped.
func (j *Journal) Entries() ([]types.ContractEdit, error) {
	records, err := readJSONL(j.path)
	if err != nil {
		return nil, err
	}
	out := make([]types.ContractEdit, 0, len(records))
	for _, rec := range records {
		var e types.ContractEdit
		if err := json.Unmarshal(rec, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// NewID returns a UUID v7, falling back to v4.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// readJSONL reads a JSONL file and returns each non-empty, valid line.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically rewrites path with records.
func writeJSONL(path string, records []json.RawMessage) error {
	return writeAtomic(path, func(w io.Writer) error {
		for _, rec := range records {
			if _, err := w.Write(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing newline: %w", err)
			}
		}
		return nil
	})
}
