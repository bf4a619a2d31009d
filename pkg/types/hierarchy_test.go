package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHierarchySeedsFreeAgents(t *testing.T) {
	h := NewHierarchy()

	name, ok := h.Name(FreeAgentTeamID)
	require.True(t, ok)
	assert.Equal(t, "FA", name)

	league, ok := h.League(FreeAgentTeamID)
	require.True(t, ok)
	assert.Equal(t, "FA", league)

	assert.False(t, h.IsMajor(FreeAgentTeamID))
	assert.Empty(t, h.Majors())
	assert.Equal(t, 1, h.Len())
}

func TestHierarchyMajorsAndAffiliates(t *testing.T) {
	h := NewHierarchy()
	h.AddMajor(1, "Boston Red Sox", "Major League")
	h.AddMajor(2, "New York Yankees", "Major League")

	require.NoError(t, h.AddAffiliate(1, 5, "Worcester Red Sox", "International League"))
	require.NoError(t, h.AddAffiliate(2, 7, "Scranton RailRiders", "International League"))

	id, ok := h.MajorID("Boston Red Sox")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	assert.Equal(t, []int{5}, h.Affiliates(1))
	assert.Equal(t, []int{7}, h.Affiliates(2))
	assert.Nil(t, h.Affiliates(5))
	assert.Equal(t, []int{1, 2}, h.Majors())

	league, _ := h.League(5)
	assert.Equal(t, "International League", league)

	err := h.AddAffiliate(9, 10, "x", "y")
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestHierarchyAffiliatesIsCopy(t *testing.T) {
	h := NewHierarchy()
	h.AddMajor(1, "A", "Major League")
	require.NoError(t, h.AddAffiliate(1, 5, "B", "AAA"))

	affs := h.Affiliates(1)
	affs[0] = 99
	assert.Equal(t, []int{5}, h.Affiliates(1))
}

func TestHierarchyTeams(t *testing.T) {
	h := NewHierarchy()
	h.AddMajor(1, "A", "Major League")
	h.AddMajor(2, "B", "Major League")
	require.NoError(t, h.AddAffiliate(1, 5, "A-AAA", "AAA"))

	teams := h.Teams()
	require.Len(t, teams, 4)
	assert.Equal(t, Team{ID: 0, Name: "FA", League: "FA"}, teams[0])
	assert.Equal(t, Team{ID: 1, Name: "A", League: "Major League", Major: true, Affiliates: []int{5}}, teams[1])
	assert.Equal(t, Team{ID: 5, Name: "A-AAA", League: "AAA"}, teams[2])
	assert.Equal(t, Team{ID: 2, Name: "B", League: "Major League", Major: true, Affiliates: []int{}}, teams[3])
}
