// Package contract runs the interactive contract edit session: look a
// player up by name, settle on one row, read a new schedule, and write it to
// every row sharing that player's id.
package contract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// State is a step of the edit session.
type State int

// Session states.
const (
	AwaitName State = iota
	ResolveMatch
	DisambiguateIndex
	CollectContract
	Apply
	Done
)

func (s State) String() string {
	switch s {
	case AwaitName:
		return "AwaitName"
	case ResolveMatch:
		return "ResolveMatch"
	case DisambiguateIndex:
		return "DisambiguateIndex"
	case CollectContract:
		return "CollectContract"
	case Apply:
		return "Apply"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Operator prompts.
const (
	PromptName   = "Enter Player Name ('0' to finish): "
	PromptIndex  = "Enter row (0 indexed): "
	PromptLength = "Contract Length (no more than 10, 0 for minor-league deal): "
	promptAmount = "Enter $ for year %d: "

	// FinishName ends the session when entered as a name.
	FinishName = "0"
)

// Players is the table the editor reads and writes.
type Players interface {
	FindPlayers(first, last string) ([]types.Player, error)
	ApplyContract(playerID string, c types.Contract) (int64, error)
}

// Recorder receives every applied edit.
type Recorder interface {
	Record(e types.ContractEdit) error
}

// nameInput is a parsed "First Last" answer.
type nameInput struct {
	First string `validate:"required"`
	Last  string `validate:"required"`
}

// lengthInput is the number of guaranteed years.
type lengthInput struct {
	Years int64 `validate:"gte=0,lte=10"`
}

// amountInput is one year's salary.
type amountInput struct {
	Amount int64 `validate:"gte=0"`
}

// Editor is one edit session.
type Editor struct {
	players   Players
	prompt    *Prompter
	out       io.Writer
	recorder  Recorder
	log       *zap.Logger
	validate  *validator.Validate
	sessionID string

	state    State
	name     nameInput
	matches  []types.Player
	target   types.Player
	contract types.Contract
	applied  int
	pending  []types.ContractEdit
}

// Option configures an Editor.
type Option func(*Editor)

// WithRecorder sets where Commit sends the applied edits.
func WithRecorder(r Recorder) Option {
	return func(e *Editor) { e.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// WithSessionID tags journal records and log lines.
func WithSessionID(id string) Option {
	return func(e *Editor) { e.sessionID = id }
}

// NewEditor returns an Editor in state AwaitName reading answers from in and
// writing prompts and results to out.
func NewEditor(players Players, in io.Reader, out io.Writer, opts ...Option) *Editor {
	e := &Editor{
		players:  players,
		prompt:   NewPrompter(in, out),
		out:      out,
		log:      zap.NewNop(),
		validate: validator.New(),
		state:    AwaitName,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(zap.String("session_id", e.sessionID))
	return e
}

// State returns the current state.
func (e *Editor) State() State { return e.state }

// Applied returns the number of contracts written so far.
func (e *Editor) Applied() int { return e.applied }

// Pending returns the applied edits not yet committed.
func (e *Editor) Pending() []types.ContractEdit {
	out := make([]types.ContractEdit, len(e.pending))
	copy(out, e.pending)
	return out
}

// Commit hands the pending edits to the recorder in the order they were
// applied. Call it once the table has been saved. Edits the recorder
// rejects stay pending.
func (e *Editor) Commit() error {
	if e.recorder == nil {
		e.pending = nil
		return nil
	}
	for len(e.pending) > 0 {
		if err := e.recorder.Record(e.pending[0]); err != nil {
			return fmt.Errorf("record edit for player %s: %w", e.pending[0].PlayerID, err)
		}
		e.pending = e.pending[1:]
	}
	return nil
}

// Run steps the session until Done. Edits applied before an error stay in
// the table.
func (e *Editor) Run() error {
	for e.state != Done {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs the work of the current state and moves to the next one.
func (e *Editor) Step() error {
	from := e.state
	var err error
	switch e.state {
	case AwaitName:
		err = e.awaitName()
	case ResolveMatch:
		err = e.resolveMatch()
	case DisambiguateIndex:
		err = e.disambiguate()
	case CollectContract:
		err = e.collectContract()
	case Apply:
		err = e.apply()
	case Done:
		return nil
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w (in %s)", types.ErrInputClosed, from)
	}
	if err != nil {
		return err
	}
	e.log.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", e.state))
	return nil
}

func (e *Editor) awaitName() error {
	err := e.prompt.Ask(PromptName, func(answer string) error {
		answer = strings.TrimSpace(answer)
		if answer == FinishName {
			e.state = Done
			return nil
		}
		name, err := e.parseName(answer)
		if err != nil {
			return err
		}
		e.name = name
		e.state = ResolveMatch
		return nil
	})
	if errors.Is(err, io.EOF) {
		e.state = Done
		return nil
	}
	return err
}

// parseName splits "First Last". Middle names, suffixes, and single names
// are rejected.
func (e *Editor) parseName(answer string) (nameInput, error) {
	tokens := strings.Fields(answer)
	if len(tokens) != 2 {
		return nameInput{}, fmt.Errorf("%w: enter exactly a first and a last name", types.ErrInvalidInput)
	}
	name := nameInput{First: tokens[0], Last: tokens[1]}
	if err := e.validate.Struct(name); err != nil {
		return nameInput{}, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	return name, nil
}

func (e *Editor) resolveMatch() error {
	players, cands, err := Lookup(e.players, e.name.First, e.name.Last)
	if err != nil {
		return err
	}
	e.matches = players

	switch len(players) {
	case 0:
		fmt.Fprintf(e.out, "No player named %s %s\n", e.name.First, e.name.Last)
		e.state = AwaitName
	case 1:
		e.target = players[0]
		e.state = CollectContract
	default:
		RenderCandidates(e.out, cands)
		e.state = DisambiguateIndex
	}
	return nil
}

func (e *Editor) disambiguate() error {
	rule := fmt.Sprintf("gte=0,lt=%d", len(e.matches))
	idx, err := e.prompt.Int(PromptIndex, func(v int64) error {
		if err := e.validate.Var(v, rule); err != nil {
			return fmt.Errorf("%w: row must be between 0 and %d", types.ErrInvalidInput, len(e.matches)-1)
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.target = e.matches[idx]
	e.state = CollectContract
	return nil
}

func (e *Editor) collectContract() error {
	length, err := e.prompt.Int(PromptLength, func(v int64) error {
		if err := e.validate.Struct(lengthInput{Years: v}); err != nil {
			return fmt.Errorf("%w: length must be between 0 and %d", types.ErrInvalidInput, types.ContractYears)
		}
		return nil
	})
	if err != nil {
		return err
	}

	amounts := make([]int64, length)
	for year := 1; year <= int(length); year++ {
		amounts[year-1], err = e.prompt.Int(fmt.Sprintf(promptAmount, year), func(v int64) error {
			if err := e.validate.Struct(amountInput{Amount: v}); err != nil {
				return fmt.Errorf("%w: amount must not be negative", types.ErrInvalidInput)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	e.contract, err = types.NewContract(amounts)
	if err != nil {
		return err
	}
	e.state = Apply
	return nil
}

func (e *Editor) apply() error {
	n, err := e.players.ApplyContract(e.target.ID, e.contract)
	if err != nil {
		return fmt.Errorf("apply contract for player %s: %w", e.target.ID, err)
	}
	e.applied++
	e.log.Info("contract applied",
		zap.String("player_id", e.target.ID),
		zap.String("player", e.target.Name()),
		zap.Int("years", e.contract.Length()),
		zap.Int64("total", e.contract.Total()),
		zap.Int64("rows", n))
	fmt.Fprintf(e.out, "Updated %d row(s) for %s\n", n, e.target.Name())

	e.pending = append(e.pending, types.ContractEdit{
		SessionID:   e.sessionID,
		PlayerID:    e.target.ID,
		FirstName:   e.target.FirstName,
		LastName:    e.target.LastName,
		Contract:    e.contract,
		RowsUpdated: n,
	})

	e.name = nameInput{}
	e.matches = nil
	e.target = types.Player{}
	e.contract = types.Contract{}
	e.state = AwaitName
	return nil
}

// Lookup returns the players named first last in file order together with
// their ranked candidate entries.
func Lookup(players Players, first, last string) ([]types.Player, []types.Candidate, error) {
	found, err := players.FindPlayers(first, last)
	if err != nil {
		return nil, nil, fmt.Errorf("find %s %s: %w", first, last, err)
	}
	return found, types.Candidates(found), nil
}

// RenderCandidates prints one "[index] summary" line per candidate.
func RenderCandidates(w io.Writer, cands []types.Candidate) {
	for _, c := range cands {
		fmt.Fprintf(w, "[%d] %s\n", c.Index, c.Summary)
	}
}
