package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// EachRow calls fn for every row in file order. Rows are read before the
// first call, so fn may query or update the store. Iteration stops at the
// first error fn returns.
func (s *Store) EachRow(fn func(types.Row) error) error {
	rows, err := s.selectRows("", nil)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Column returns the values of the named column in file order.
func (s *Store) Column(name string) ([]string, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	i, err := s.schema.Lookup(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(fmt.Sprintf("SELECT %s FROM %s ORDER BY pos", sqlColumn(i), tableName))
	if err != nil {
		return nil, fmt.Errorf("querying column %q: %w", name, err)
	}
	defer rows.Close()

	out := make([]string, 0, s.rows)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning column %q: %w", name, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// FindPlayers returns the players whose first and last names match exactly,
// in file order. An empty result is not an error.
func (s *Store) FindPlayers(first, last string) ([]types.Player, error) {
	where, args, err := s.predicate(map[string]string{
		types.ColFirstName: first,
		types.ColLastName:  last,
	})
	if err != nil {
		return nil, err
	}
	rows, err := s.selectRows(where, args)
	if err != nil {
		return nil, err
	}

	players := make([]types.Player, 0, len(rows))
	for _, r := range rows {
		p, err := types.PlayerFromRow(r)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// UpdateWhere sets the columns in set on every row whose columns equal all
// values in match, and returns the number of rows changed. An empty match
// updates every row.
func (s *Store) UpdateWhere(match, set map[string]string) (int64, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}
	if len(set) == 0 {
		return 0, nil
	}

	assignments := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+len(match))
	for _, col := range sortedKeys(set) {
		i, err := s.schema.Lookup(col)
		if err != nil {
			return 0, err
		}
		assignments = append(assignments, sqlColumn(i)+" = ?")
		args = append(args, set[col])
	}

	where, whereArgs, err := s.predicate(match)
	if err != nil {
		return 0, err
	}
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s", tableName, strings.Join(assignments, ", "))
	if where != "" {
		query += " WHERE " + where
	}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating roster: %w", err)
	}
	return res.RowsAffected()
}

// ApplyContract writes c into every row whose player id is playerID and
// returns the number of rows changed.
func (s *Store) ApplyContract(playerID string, c types.Contract) (int64, error) {
	return s.UpdateWhere(map[string]string{types.ColPlayerID: playerID}, c.Fields())
}

// predicate builds an AND of column equalities.
func (s *Store) predicate(match map[string]string) (string, []any, error) {
	clauses := make([]string, 0, len(match))
	args := make([]any, 0, len(match))
	for _, col := range sortedKeys(match) {
		i, err := s.schema.Lookup(col)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, sqlColumn(i)+" = ?")
		args = append(args, match[col])
	}
	return strings.Join(clauses, " AND "), args, nil
}

// selectRows returns full rows matching where (all rows when empty) in file
// order.
func (s *Store) selectRows(where string, args []any) ([]types.Row, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	query := fmt.Sprintf("SELECT %s FROM %s", selectColumns(s.schema), tableName)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY pos"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()
	return scanRows(rows, s.schema)
}

func scanRows(rows *sql.Rows, schema *types.Schema) ([]types.Row, error) {
	var out []types.Row
	dest := make([]any, schema.Len()+1)
	for rows.Next() {
		var pos int
		values := make([]string, schema.Len())
		dest[0] = &pos
		for i := range values {
			dest[i+1] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		r, err := types.NewRow(pos, values, schema)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
