package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterSchema(t *testing.T) {
	s := RosterSchema()
	assert.Equal(t, 156, s.Len())

	for _, col := range []string{
		ColPlayerID, ColTeamID, ColTeamName, ColLeagueName,
		ColFirstName, ColLastName, ColPosition, ColContractCurrentYear,
	} {
		_, ok := s.Index(col)
		assert.True(t, ok, "missing column %q", col)
	}
	for y := 1; y <= ContractYears; y++ {
		_, ok := s.Index(ContractColumn(y))
		assert.True(t, ok, "missing contract year %d", y)
	}

	i, ok := s.Index(ColPlayerID)
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestNewSchemaRejectsBadColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
	}{
		{"empty", nil},
		{"blank name", []string{"id", ""}},
		{"duplicate", []string{"id", "HBP", "HBP"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.columns)
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestSchemaLookup(t *testing.T) {
	s, err := NewSchema([]string{"a", "b"})
	require.NoError(t, err)

	i, err := s.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = s.Lookup("c")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestSchemaColumnsIsCopy(t *testing.T) {
	s, err := NewSchema([]string{"a", "b"})
	require.NoError(t, err)
	cols := s.Columns()
	cols[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Columns())
}

func TestRowAccessors(t *testing.T) {
	s, err := NewSchema([]string{"id", "team_id", "name"})
	require.NoError(t, err)

	_, err = NewRow(0, []string{"1", "2"}, s)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	r, err := NewRow(3, []string{"17", " 4 ", "x"}, s)
	require.NoError(t, err)
	assert.Equal(t, "17", r.Get("id"))
	assert.Equal(t, "", r.Get("missing"))

	n, err := r.Int("team_id")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = r.Int("name")
	assert.Error(t, err)
	_, err = r.Int("missing")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
