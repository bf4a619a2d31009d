package store

import (
	"fmt"
	"strings"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// tableName is the single SQLite table holding roster rows.
const tableName = "roster"

// sqlColumn returns the SQLite column for schema position i. Roster column
// names contain spaces, parentheses, and % signs, so SQL uses positional
// names and the schema maps between the two.
func sqlColumn(i int) string {
	return fmt.Sprintf("c%d", i)
}

// createTableSQL builds the DDL for schema: a pos primary key preserving
// file order, one TEXT column per schema column, and indexes on the player
// id and name columns when the schema has them.
func createTableSQL(schema *types.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n    pos INTEGER PRIMARY KEY", tableName)
	for i := 0; i < schema.Len(); i++ {
		fmt.Fprintf(&b, ",\n    %s TEXT NOT NULL", sqlColumn(i))
	}
	b.WriteString("\n);\n")

	if i, ok := schema.Index(types.ColPlayerID); ok {
		fmt.Fprintf(&b, "CREATE INDEX idx_roster_player ON %s (%s);\n", tableName, sqlColumn(i))
	}
	first, okFirst := schema.Index(types.ColFirstName)
	last, okLast := schema.Index(types.ColLastName)
	if okFirst && okLast {
		fmt.Fprintf(&b, "CREATE INDEX idx_roster_name ON %s (%s, %s);\n",
			tableName, sqlColumn(first), sqlColumn(last))
	}
	return b.String()
}

// selectColumns returns "pos, c0, c1, ..." for full-row queries.
func selectColumns(schema *types.Schema) string {
	cols := make([]string, 0, schema.Len()+1)
	cols = append(cols, "pos")
	for i := 0; i < schema.Len(); i++ {
		cols = append(cols, sqlColumn(i))
	}
	return strings.Join(cols, ", ")
}
