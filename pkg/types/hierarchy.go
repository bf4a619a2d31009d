package types

import "fmt"

// FreeAgentTeamID is the reserved team id of the free-agent pool.
const FreeAgentTeamID = 0

// FreeAgentName is both the name and the league of the free-agent pool.
const FreeAgentName = "FA"

// Team is the report view of one team in a Hierarchy.
type Team struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	League     string `json:"league" yaml:"league"`
	Major      bool   `json:"major" yaml:"major"`
	Affiliates []int  `json:"affiliates,omitempty" yaml:"affiliates,omitempty"`
}

// Hierarchy holds the team lookup tables: id to name, id to league, major
// team name to id, and major team id to its ordered affiliate ids. It is
// filled once by the resolver and read afterwards.
type Hierarchy struct {
	names      map[int]string
	leagues    map[int]string
	majorIDs   map[string]int
	affiliates map[int][]int
	majorOrder []int
}

// NewHierarchy returns an empty Hierarchy with the free-agent pool seeded.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		names:      map[int]string{FreeAgentTeamID: FreeAgentName},
		leagues:    map[int]string{FreeAgentTeamID: FreeAgentName},
		majorIDs:   make(map[string]int),
		affiliates: make(map[int][]int),
	}
}

// AddMajor registers a major team with an empty affiliate list. A repeated
// id overwrites name and league and clears the affiliates.
func (h *Hierarchy) AddMajor(id int, name, league string) {
	if _, ok := h.affiliates[id]; !ok {
		h.majorOrder = append(h.majorOrder, id)
	}
	h.names[id] = name
	h.leagues[id] = league
	h.majorIDs[name] = id
	h.affiliates[id] = []int{}
}

// AddAffiliate appends minor to major's affiliate list and records the minor
// team's name and league. Returns ErrUnknownTeam if major is not registered.
func (h *Hierarchy) AddAffiliate(major, minor int, name, league string) error {
	list, ok := h.affiliates[major]
	if !ok {
		return fmt.Errorf("%w: major team %d", ErrUnknownTeam, major)
	}
	h.affiliates[major] = append(list, minor)
	h.names[minor] = name
	h.leagues[minor] = league
	return nil
}

// IsMajor reports whether id is a registered major team.
func (h *Hierarchy) IsMajor(id int) bool {
	_, ok := h.affiliates[id]
	return ok
}

// Name returns the display name of team id.
func (h *Hierarchy) Name(id int) (string, bool) {
	n, ok := h.names[id]
	return n, ok
}

// League returns the league name of team id.
func (h *Hierarchy) League(id int) (string, bool) {
	l, ok := h.leagues[id]
	return l, ok
}

// MajorID returns the id of the major team with the given name.
func (h *Hierarchy) MajorID(name string) (int, bool) {
	id, ok := h.majorIDs[name]
	return id, ok
}

// Affiliates returns a copy of the affiliate ids of major team id in
// discovery order. Nil when id is not a major team.
func (h *Hierarchy) Affiliates(id int) []int {
	list, ok := h.affiliates[id]
	if !ok {
		return nil
	}
	out := make([]int, len(list))
	copy(out, list)
	return out
}

// Majors returns the major team ids in header order.
func (h *Hierarchy) Majors() []int {
	out := make([]int, len(h.majorOrder))
	copy(out, h.majorOrder)
	return out
}

// Len returns the number of named teams, including the free-agent pool.
func (h *Hierarchy) Len() int { return len(h.names) }

// Teams returns every team for reporting: the free-agent pool, then each
// major team in header order followed by its affiliates.
func (h *Hierarchy) Teams() []Team {
	out := make([]Team, 0, len(h.names))
	out = append(out, Team{ID: FreeAgentTeamID, Name: FreeAgentName, League: FreeAgentName})
	for _, id := range h.majorOrder {
		affs := h.Affiliates(id)
		out = append(out, Team{ID: id, Name: h.names[id], League: h.leagues[id], Major: true, Affiliates: affs})
		for _, m := range affs {
			out = append(out, Team{ID: m, Name: h.names[m], League: h.leagues[m]})
		}
	}
	return out
}
