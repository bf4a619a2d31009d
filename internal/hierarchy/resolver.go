// Package hierarchy rebuilds the major/minor team structure of a roster
// export. Major teams are declared in the header block; affiliates carry no
// parent field and are attributed to the most recently seen major team in
// row order.
package hierarchy

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Sentinel is the line that ends the header block.
const Sentinel = "//"

// headerPrefixLen is the width of the comment marker on header lines.
const headerPrefixLen = 2

// minHeaderTokens is the id, three ignored tokens, and at least one name
// token.
const minHeaderTokens = 5

// RowSource iterates roster rows in file order.
type RowSource interface {
	EachRow(fn func(types.Row) error) error
}

// Resolver builds a Hierarchy from a header block and roster rows. It holds
// no state between calls.
type Resolver struct {
	majorLeague string
	strict      bool
	log         *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMajorLeague sets the league name given to header-declared teams.
func WithMajorLeague(name string) Option {
	return func(r *Resolver) { r.majorLeague = name }
}

// WithStrict controls whether a contiguity violation is an error (true) or a
// logged warning (false).
func WithStrict(strict bool) Option {
	return func(r *Resolver) { r.strict = strict }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver returns a strict Resolver labelling majors with
// types.DefaultMajorLeague.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		majorLeague: types.DefaultMajorLeague,
		strict:      true,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the header phase over preamble and the affiliate phase over
// rows.
func (r *Resolver) Resolve(preamble []string, rows RowSource) (*types.Hierarchy, error) {
	h := types.NewHierarchy()
	if err := r.ParseHeader(h, preamble); err != nil {
		return nil, err
	}
	if err := r.ResolveAffiliates(h, rows); err != nil {
		return nil, err
	}
	r.log.Debug("resolved team hierarchy",
		zap.Int("majors", len(h.Majors())),
		zap.Int("teams", h.Len()))
	return h, nil
}

// ParseHeader registers every team declared between the banner line and the
// sentinel as a major team. Lines after the sentinel are not examined.
func (r *Resolver) ParseHeader(h *types.Hierarchy, lines []string) error {
	if len(lines) == 0 {
		return types.ErrMissingSentinel
	}
	for n, line := range lines[1:] {
		line = strings.TrimRight(line, "\r\n")
		if line == Sentinel {
			return nil
		}
		id, name, err := parseHeaderLine(line)
		if err != nil {
			return fmt.Errorf("header line %d: %w", n+2, err)
		}
		h.AddMajor(id, name, r.majorLeague)
		r.log.Debug("major team", zap.Int("team_id", id), zap.String("name", name))
	}
	return types.ErrMissingSentinel
}

// parseHeaderLine reads "XX<id> <a> <b> <c> <name...>".
func parseHeaderLine(line string) (int, string, error) {
	if len(line) < headerPrefixLen {
		return 0, "", fmt.Errorf("%w: %q", types.ErrMalformedHeader, line)
	}
	tokens := strings.Split(line[headerPrefixLen:], " ")
	if len(tokens) < minHeaderTokens {
		return 0, "", fmt.Errorf("%w: %q has %d tokens, want at least %d",
			types.ErrMalformedHeader, line, len(tokens), minHeaderTokens)
	}
	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: team id %q: %v", types.ErrMalformedHeader, tokens[0], err)
	}
	return id, strings.Join(tokens[minHeaderTokens-1:], " "), nil
}

// ResolveAffiliates walks rows in file order. The first row of an unseen
// team either makes it the current major team (declared majors) or appends
// it to the current major team's affiliates, taking its name and league from
// the row. Rows of seen teams do not change the tables, but a seen affiliate
// showing up under a different major team means its rows are not
// contiguous.
func (r *Resolver) ResolveAffiliates(h *types.Hierarchy, rows RowSource) error {
	lastMajor := types.FreeAgentTeamID
	seen := map[int]bool{types.FreeAgentTeamID: true}
	owner := make(map[int]int)

	return rows.EachRow(func(row types.Row) error {
		teamID, err := row.Int(types.ColTeamID)
		if err != nil {
			return fmt.Errorf("%w: %v", types.ErrInvalidTeamID, err)
		}

		if seen[teamID] {
			major, isMinor := owner[teamID]
			if isMinor && major != lastMajor {
				return r.contiguityViolation(row, teamID, major, lastMajor)
			}
			return nil
		}

		if !h.IsMajor(teamID) {
			if lastMajor == types.FreeAgentTeamID {
				return fmt.Errorf("%w: team %d at row %d", types.ErrOrphanAffiliate, teamID, row.Pos)
			}
			name := row.Get(types.ColTeamName)
			if err := h.AddAffiliate(lastMajor, teamID, name, row.Get(types.ColLeagueName)); err != nil {
				return err
			}
			owner[teamID] = lastMajor
			r.log.Debug("affiliate team",
				zap.Int("team_id", teamID),
				zap.String("name", name),
				zap.Int("major_id", lastMajor))
		} else {
			lastMajor = teamID
		}

		seen[teamID] = true
		return nil
	})
}

func (r *Resolver) contiguityViolation(row types.Row, teamID, major, current int) error {
	err := fmt.Errorf("%w: team %d (affiliate of %d) at row %d follows major team %d",
		types.ErrNonContiguousAffiliate, teamID, major, row.Pos, current)
	if r.strict {
		return err
	}
	r.log.Warn("affiliate rows out of order",
		zap.Int("team_id", teamID),
		zap.Int("major_id", major),
		zap.Int("current_major_id", current),
		zap.Int("row", row.Pos))
	return nil
}
