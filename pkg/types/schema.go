package types

import "fmt"

// Column names the store, resolver, and editor address directly.
const (
	ColPlayerID            = "id"
	ColTeamID              = "team_id"
	ColTeamName            = "Team Name"
	ColLeagueName          = "League Name"
	ColLastName            = "LastName"
	ColFirstName           = "FirstName"
	ColPosition            = "Position"
	ColContractCurrentYear = "contract current year (0 = first year)"
)

// ContractColumn returns the column name of contract year y (1-based).
func ContractColumn(year int) string {
	return fmt.Sprintf("contract y%d", year)
}

// RosterColumns is the ordered column layout of an OOTP roster export.
// The export names two columns "HBP"; they are split into HBP_hitter and
// HBP_pitcher so every name is unique.
var RosterColumns = []string{
	"id", "del", "team_id", "Team Name", "League Name", "LastName", "FirstName",
	"NickName", "UniformNumber", "DayOB", "MonthOB", "YearOB", "NationalityID",
	"Nation", "CityID", "City", "facial_type", "Height (cm)", "Weight (kg)",
	"Bats", "Throws", "Position", "ML Service", "40 man roster service",
	"pro years", "options used", "Contact vL", "Gap vL", "Power vL", "Eye vL",
	"Avoid K vL", "BABIP vL", "Contract Vr", "Gap Vr", "Power vR", "Eye vR",
	"Ks vR", "BABIP vR", "Contact Pot", "Gap Pot", "Power Pot", "Eye Pot",
	"Ks Pot", "BABIP Pot", "HBP_hitter", "GB Batter type", "FB Batter type",
	"speed", "steal rate", "steal", "running", "sac bunt", "bunt hit",
	"Move vL", "Control vL", "Movement vR", "Control vR", "Move Pot",
	"Control Pot", "HBP_pitcher", "WP", "Balk", "Stamina", "Hold", "GB%",
	"Velocity", "ArmSlot", "Infield Range", "Infield Error", "Infield Arm",
	"DP", "CatcherAbil", "Catcher Arm", "OF Range", "OF Error", "OF Arm",
	"PExp", "CExp", "1bExp", "2bExp", "3bExp", "ssExp", "LFExp", "CFExp",
	"RFExp", "use expected", "expected level", "expected ab", "expected avg",
	"expected 2b", "expected 3b", "expected hr", "expected bb", "expected k",
	"expected hbp", "contract y1", "contract y2", "contract y3", "contract y4",
	"contract y5", "contract y6", "contract y7", "contract y8", "contract y9",
	"contract y10", "contract current year (0 = first year)", "extension y1",
	"extension y2", "extension y3", "extension y4", "extension y5",
	"extension y6", "extension y7", "extension y8", "extension y9",
	"extension y10", "greed", "loyalty", "play_for_winner", "work_ethic",
	"intelligence", "leader ability", "Stuff Overall", "Stuff R/L split",
	"Stuff Pot.", "Fastball (scale: 0-5)", "Slider", "Curveball", "Changeup",
	"Cutter", "Sinker", "Splitter", "Forkball", "Screwball", "Circlechange",
	"Knucklecurve", "Knuckleball", "Fastball Pot.(scale: 0-5)", "Slider Pot.",
	"Curveball Pot.", "Changeup Pot.", "Cutter Pot.", "Sinker Pot.",
	"Splitter Pot.", "Forkball Pot.", "Screwball Pot.", "Circlechange Pot.",
	"Knucklecurve Pot.", "Knuckleball Pot.", "Hitter 3B/2B ratio", "pbabip",
	"lahman_id", "bbref_id", "bbrefminors_id", "twitter_handle",
	"Catcher Framing",
}

// Schema is an ordered list of unique column names with a name index.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a Schema from columns. Returns ErrInvalidSchema when a
// name is empty or repeated.
func NewSchema(columns []string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidSchema)
	}
	s := &Schema{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidSchema, i)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, name)
		}
		s.columns[i] = name
		s.index[name] = i
	}
	return s, nil
}

// RosterSchema returns the Schema for RosterColumns.
func RosterSchema() *Schema {
	s, err := NewSchema(RosterColumns)
	if err != nil {
		panic(err)
	}
	return s
}

// Columns returns a copy of the column names in order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Index returns the position of the named column.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Lookup returns the position of the named column or ErrUnknownColumn.
func (s *Schema) Lookup(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return i, nil
}
