package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one player record in file order.
type Row struct {
	Pos    int      // Zero-based position among data rows.
	Values []string // Raw field values, one per schema column.
	schema *Schema
}

// NewRow binds values to schema. Returns ErrSchemaMismatch when the value
// count differs from the column count.
func NewRow(pos int, values []string, schema *Schema) (Row, error) {
	if len(values) != schema.Len() {
		return Row{}, fmt.Errorf("%w: row %d has %d fields, want %d",
			ErrSchemaMismatch, pos, len(values), schema.Len())
	}
	return Row{Pos: pos, Values: values, schema: schema}, nil
}

// Get returns the raw value of the named column, or "" when the column is
// not part of the schema.
func (r Row) Get(column string) string {
	i, ok := r.schema.Index(column)
	if !ok {
		return ""
	}
	return r.Values[i]
}

// Int parses the named column as an integer.
func (r Row) Int(column string) (int, error) {
	i, err := r.schema.Lookup(column)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.Values[i]))
	if err != nil {
		return 0, fmt.Errorf("row %d column %q: %w", r.Pos, column, err)
	}
	return n, nil
}
