// Package rostertest builds OOTP roster export files for tests.
package rostertest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Banner is the first line of every generated file.
const Banner = "//ID ABBR NICK LG NAME"

// Major is a team declared in the header block.
type Major struct {
	ID   int
	Name string
}

// HeaderLine formats the header-block line declaring a major team.
func HeaderLine(id int, name string) string {
	return fmt.Sprintf("//%d BOS BOS AL %s", id, name)
}

// Fields overrides column values of a generated row.
type Fields map[string]string

// Player returns Fields for a player on a team.
func Player(id string, teamID int, teamName, league, first, last string) Fields {
	return Fields{
		types.ColPlayerID:   id,
		types.ColTeamID:     strconv.Itoa(teamID),
		types.ColTeamName:   teamName,
		types.ColLeagueName: league,
		types.ColFirstName:  first,
		types.ColLastName:   last,
	}
}

// Row returns a full roster row: every column "0" except the overrides.
func Row(f Fields) []string {
	schema := types.RosterSchema()
	values := make([]string, schema.Len())
	for i := range values {
		values[i] = "0"
	}
	for col, v := range f {
		i, ok := schema.Index(col)
		if !ok {
			panic("rostertest: unknown column " + col)
		}
		values[i] = v
	}
	return values
}

// Line returns Row(f) as one comma-separated line.
func Line(f Fields) string {
	return strings.Join(Row(f), ",")
}

// Preamble returns the banner, one header line per major, and the sentinel.
func Preamble(majors []Major) []string {
	lines := []string{Banner}
	for _, m := range majors {
		lines = append(lines, HeaderLine(m.ID, m.Name))
	}
	return append(lines, "//")
}

// File returns a complete roster export.
func File(majors []Major, rows ...Fields) string {
	var b strings.Builder
	for _, line := range Preamble(majors) {
		b.WriteString(line + "\n")
	}
	for _, r := range rows {
		b.WriteString(Line(r) + "\n")
	}
	return b.String()
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// Sample returns a small league: Boston (1) with affiliates Worcester (5)
// and Portland (6), New York (2) with affiliate Scranton (7), and one free
// agent.
func Sample() string {
	majors := []Major{{1, "Boston Red Sox"}, {2, "New York Yankees"}}
	return File(majors,
		Player("100", 1, "Boston Red Sox", "American League", "Mookie", "Betts"),
		Player("101", 1, "Boston Red Sox", "American League", "Rafael", "Devers"),
		Player("102", 5, "Worcester Red Sox", "International League", "Will", "Smith"),
		Player("103", 6, "Portland Sea Dogs", "Eastern League", "Joe", "Minor"),
		Player("104", 2, "New York Yankees", "American League", "Aaron", "Judge"),
		Player("105", 7, "Scranton RailRiders", "International League", "Will", "Smith"),
		Player("106", 0, "FA", "FA", "Free", "Agent"),
	)
}
