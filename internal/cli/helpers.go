package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/owenc21/ootp-roster-editor/internal/hierarchy"
	"github.com/owenc21/ootp-roster-editor/internal/paths"
	"github.com/owenc21/ootp-roster-editor/internal/store"
	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

var (
	errNoInput  = errors.New("no input roster (use --in or set input in config.yaml)")
	errNoOutput = errors.New("no output roster (use --out or set output in config.yaml)")
)

// dataDir resolves the data directory from flag, config, env, or default.
func (a *app) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return dir, nil
}

// rosterPath picks flag over the config value and expands the result.
func rosterPath(flag, configValue string, missing error) (string, error) {
	p := flag
	if p == "" {
		p = configValue
	}
	if p == "" {
		return "", missing
	}
	return paths.Expand(p)
}

// loadRoster opens the input roster into a Store. The caller must Close it.
func (a *app) loadRoster(in string) (*store.Store, error) {
	path, err := rosterPath(in, a.cfg.Input, errNoInput)
	if err != nil {
		return nil, err
	}
	s, err := store.OpenFile(types.RosterSchema(), path)
	if err != nil {
		return nil, err
	}
	a.log.Info("roster loaded", zap.String("path", path), zap.Int("rows", s.Len()))
	return s, nil
}

// resolveTeams builds the team hierarchy of a loaded roster.
func (a *app) resolveTeams(s *store.Store) (*types.Hierarchy, error) {
	r := hierarchy.NewResolver(
		hierarchy.WithMajorLeague(a.cfg.MajorLeague),
		hierarchy.WithStrict(a.cfg.StrictAffiliates),
		hierarchy.WithLogger(a.log),
	)
	h, err := r.Resolve(s.Preamble(), s)
	if err != nil {
		return nil, fmt.Errorf("resolve teams: %w", err)
	}
	a.log.Info("teams resolved", zap.Int("majors", len(h.Majors())), zap.Int("teams", h.Len()))
	return h, nil
}
