package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterRow(t *testing.T, pos int, fields map[string]string) Row {
	t.Helper()
	s := RosterSchema()
	values := make([]string, s.Len())
	for i := range values {
		values[i] = "0"
	}
	for col, v := range fields {
		i, ok := s.Index(col)
		require.True(t, ok, "unknown column %q", col)
		values[i] = v
	}
	r, err := NewRow(pos, values, s)
	require.NoError(t, err)
	return r
}

func TestPlayerFromRow(t *testing.T) {
	r := rosterRow(t, 4, map[string]string{
		ColPlayerID:       "1234",
		ColTeamID:         "1",
		ColTeamName:       "Boston Red Sox",
		ColFirstName:      "Mookie",
		ColLastName:       "Betts",
		ColPosition:       "9",
		ContractColumn(1): "20000000",
	})

	p, err := PlayerFromRow(r)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Pos)
	assert.Equal(t, "1234", p.ID)
	assert.Equal(t, 1, p.TeamID)
	assert.Equal(t, "Mookie Betts", p.Name())
	assert.Equal(t, int64(20000000), p.Contract.Years[0])
	assert.Contains(t, p.Summary(), "id=1234 Mookie Betts")
	assert.Contains(t, p.Summary(), "contract 20000000")
}

func TestPlayerFromRowBadTeam(t *testing.T) {
	r := rosterRow(t, 0, map[string]string{ColTeamID: "Boston"})
	_, err := PlayerFromRow(r)
	assert.ErrorIs(t, err, ErrInvalidTeamID)
}

func TestCandidates(t *testing.T) {
	players := []Player{
		{ID: "10", FirstName: "Will", LastName: "Smith", Pos: 3},
		{ID: "11", FirstName: "Will", LastName: "Smith", Pos: 8},
	}
	got := Candidates(players)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, "10", got[0].PlayerID)
	assert.Equal(t, 1, got[1].Index)
	assert.Contains(t, got[1].Summary, "row 8")
	assert.Contains(t, got[1].Summary, "contract none")
}
