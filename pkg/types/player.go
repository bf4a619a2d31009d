package types

import (
	"fmt"
	"strings"
)

// Player is the editor's view of one roster row.
type Player struct {
	Pos       int
	ID        string
	TeamID    int
	TeamName  string
	FirstName string
	LastName  string
	Position  string
	Contract  Contract
}

// PlayerFromRow extracts the player fields of r.
func PlayerFromRow(r Row) (Player, error) {
	teamID, err := r.Int(ColTeamID)
	if err != nil {
		return Player{}, fmt.Errorf("%w: %v", ErrInvalidTeamID, err)
	}
	c, err := ContractFromRow(r)
	if err != nil {
		return Player{}, err
	}
	return Player{
		Pos:       r.Pos,
		ID:        r.Get(ColPlayerID),
		TeamID:    teamID,
		TeamName:  r.Get(ColTeamName),
		FirstName: r.Get(ColFirstName),
		LastName:  r.Get(ColLastName),
		Position:  r.Get(ColPosition),
		Contract:  c,
	}, nil
}

// Name returns "First Last".
func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// Summary is a one-line description used to tell same-named players apart.
func (p Player) Summary() string {
	years := make([]string, 0, ContractYears)
	for _, y := range p.Contract.Years[:p.Contract.Length()] {
		years = append(years, fmt.Sprint(y))
	}
	contract := "none"
	if len(years) > 0 {
		contract = strings.Join(years, "/")
	}
	return fmt.Sprintf("id=%s %s, %s (team %d), pos %s, row %d, contract %s",
		p.ID, p.Name(), p.TeamName, p.TeamID, p.Position, p.Pos, contract)
}

// Candidate is one ranked entry of a name lookup.
type Candidate struct {
	Index    int    `json:"index"`
	PlayerID string `json:"player_id"`
	Summary  string `json:"summary"`
}

// Candidates ranks players in file order.
func Candidates(players []Player) []Candidate {
	out := make([]Candidate, len(players))
	for i, p := range players {
		out[i] = Candidate{Index: i, PlayerID: p.ID, Summary: p.Summary()}
	}
	return out
}
