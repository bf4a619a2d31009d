package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// writeAtomic writes a file using the temp-file, fsync, rename pattern so a
// failed save never leaves a truncated roster behind.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Export writes every row to w in file order as comma-separated values with
// no header line. With keepPreamble the original banner, header block, and
// sentinel are written first so the output can be loaded again.
func (s *Store) Export(w io.Writer, keepPreamble bool) error {
	if keepPreamble {
		for _, line := range s.preamble {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return fmt.Errorf("writing preamble: %w", err)
			}
		}
	}

	return s.EachRow(func(r types.Row) error {
		if _, err := io.WriteString(w, encodeRecord(r.Values)); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Pos, err)
		}
		return nil
	})
}

// encodeRecord joins values with commas and a trailing newline. A field is
// quoted only when the loader could not read it back bare: it holds a
// comma or a line break, or it starts with a quote. Every other field,
// including one with a stray quote inside or a leading space, is written
// exactly as loaded.
func encodeRecord(values []string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		if needsQuotes(v) {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte('"')
			continue
		}
		b.WriteString(v)
	}
	b.WriteByte('\n')
	return b.String()
}

func needsQuotes(field string) bool {
	return strings.ContainsAny(field, ",\r\n") || strings.HasPrefix(field, `"`)
}
