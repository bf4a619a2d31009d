package contract

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenc21/ootp-roster-editor/internal/rostertest"
	"github.com/owenc21/ootp-roster-editor/internal/store"
	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// recorder collects edits in memory.
type recorder struct {
	edits []types.ContractEdit
	err   error
}

func (r *recorder) Record(e types.ContractEdit) error {
	if r.err != nil {
		return r.err
	}
	r.edits = append(r.edits, e)
	return nil
}

// failingPlayers returns err from every call.
type failingPlayers struct{ err error }

func (f failingPlayers) FindPlayers(first, last string) ([]types.Player, error) {
	return nil, f.err
}

func (f failingPlayers) ApplyContract(id string, c types.Contract) (int64, error) {
	return 0, f.err
}

func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(types.RosterSchema())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.LoadFrom(strings.NewReader(rostertest.Sample())))
	return s
}

func contractOf(t *testing.T, s *store.Store, first, last string) []types.Contract {
	t.Helper()
	players, err := s.FindPlayers(first, last)
	require.NoError(t, err)
	out := make([]types.Contract, len(players))
	for i, p := range players {
		out[i] = p.Contract
	}
	return out
}

func input(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestEditorSingleMatch(t *testing.T) {
	s := sampleStore(t)
	rec := &recorder{}
	var out bytes.Buffer

	e := NewEditor(s, input("Mookie Betts", "2", "30000000", "30000000", "0"), &out,
		WithRecorder(rec), WithSessionID("session-1"))
	require.NoError(t, e.Run())

	assert.Equal(t, Done, e.State())
	assert.Equal(t, 1, e.Applied())

	want, err := types.NewContract([]int64{30000000, 30000000})
	require.NoError(t, err)
	assert.Equal(t, []types.Contract{want}, contractOf(t, s, "Mookie", "Betts"))

	assert.Empty(t, rec.edits, "nothing recorded before commit")
	require.Len(t, e.Pending(), 1)
	require.NoError(t, e.Commit())
	assert.Empty(t, e.Pending())

	require.Len(t, rec.edits, 1)
	assert.Equal(t, "100", rec.edits[0].PlayerID)
	assert.Equal(t, "session-1", rec.edits[0].SessionID)
	assert.Equal(t, int64(1), rec.edits[0].RowsUpdated)

	assert.Contains(t, out.String(), PromptLength)
	assert.Contains(t, out.String(), "Enter $ for year 2: ")
	assert.NotContains(t, out.String(), "Enter $ for year 3: ")
	assert.Contains(t, out.String(), "Updated 1 row(s) for Mookie Betts")
}

func TestEditorMinorLeagueDeal(t *testing.T) {
	s := sampleStore(t)
	e := NewEditor(s, input("Rafael Devers", "0", "0"), &bytes.Buffer{})
	require.NoError(t, e.Run())
	assert.Equal(t, []types.Contract{{}}, contractOf(t, s, "Rafael", "Devers"))
}

func TestEditorDisambiguates(t *testing.T) {
	s := sampleStore(t)
	var out bytes.Buffer

	e := NewEditor(s, input("Will Smith", "1", "1", "750000", "0"), &out)
	require.NoError(t, e.Run())

	assert.Contains(t, out.String(), "[0] id=102 Will Smith")
	assert.Contains(t, out.String(), "[1] id=105 Will Smith")

	got := contractOf(t, s, "Will", "Smith")
	require.Len(t, got, 2)
	assert.Zero(t, got[0].Years[0])
	assert.Equal(t, int64(750000), got[1].Years[0])
}

func TestEditorRepromptsBadInput(t *testing.T) {
	s := sampleStore(t)
	var out bytes.Buffer

	e := NewEditor(s, input(
		"Mookie",              // one token
		"Mookie Lynn Betts",   // three tokens
		"",                    // empty
		"Will Smith",          // two matches
		"7",                   // out of range
		"-1",                  // out of range
		"first",               // not a number
		"0",                   // first candidate
		"11",                  // too long
		"two",                 // not a number
		"1",                   // one year
		"-5",                  // negative
		"500000",              // ok
		"0",                   // finish
	), &out)
	require.NoError(t, e.Run())

	assert.Equal(t, 1, e.Applied())
	got := contractOf(t, s, "Will", "Smith")
	assert.Equal(t, int64(500000), got[0].Years[0])
	assert.Zero(t, got[1].Years[0])

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "enter exactly a first and a last name"))
	assert.Equal(t, 2, strings.Count(text, "row must be between 0 and 1"))
	assert.Contains(t, text, `"first" is not a whole number`)
	assert.Contains(t, text, "length must be between 0 and 10")
	assert.Contains(t, text, "amount must not be negative")
}

func TestEditorNoMatchReturnsToName(t *testing.T) {
	s := sampleStore(t)
	var out bytes.Buffer

	e := NewEditor(s, input("Babe Ruth", "Mookie Betts", "1", "100", "0"), &out)
	require.NoError(t, e.Run())

	assert.Contains(t, out.String(), "No player named Babe Ruth")
	assert.Equal(t, 1, e.Applied())
	assert.Equal(t, 3, strings.Count(out.String(), PromptName))
}

func TestEditorEndOfInput(t *testing.T) {
	t.Run("at name prompt ends cleanly", func(t *testing.T) {
		s := sampleStore(t)
		e := NewEditor(s, strings.NewReader(""), &bytes.Buffer{})
		require.NoError(t, e.Run())
		assert.Equal(t, Done, e.State())
	})

	t.Run("mid edit is an error and keeps earlier edits", func(t *testing.T) {
		s := sampleStore(t)
		e := NewEditor(s, input("Mookie Betts", "1", "5", "Rafael Devers", "3", "1"), &bytes.Buffer{})

		err := e.Run()
		assert.ErrorIs(t, err, types.ErrInputClosed)
		assert.Equal(t, CollectContract, e.State())
		assert.Equal(t, int64(5), contractOf(t, s, "Mookie", "Betts")[0].Years[0])
		assert.Zero(t, contractOf(t, s, "Rafael", "Devers")[0].Years[0])
	})
}

func TestEditorStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	e := NewEditor(failingPlayers{err: boom}, input("Mookie Betts"), &bytes.Buffer{})
	err := e.Run()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ResolveMatch, e.State())
}

func TestEditorRecorderError(t *testing.T) {
	s := sampleStore(t)
	boom := errors.New("disk full")
	e := NewEditor(s, input("Mookie Betts", "0", "0"), &bytes.Buffer{}, WithRecorder(&recorder{err: boom}))
	require.NoError(t, e.Run())
	assert.ErrorIs(t, e.Commit(), boom)
	assert.Len(t, e.Pending(), 1)
}

func TestEditorAbortedSessionRecordsNothing(t *testing.T) {
	s := sampleStore(t)
	rec := &recorder{}
	e := NewEditor(s, input("Mookie Betts", "1", "5", "Rafael Devers", "2"), &bytes.Buffer{},
		WithRecorder(rec))

	assert.ErrorIs(t, e.Run(), types.ErrInputClosed)
	assert.Equal(t, 1, e.Applied())
	assert.Len(t, e.Pending(), 1)
	assert.Empty(t, rec.edits)
}

func TestEditorCommitWithoutRecorder(t *testing.T) {
	s := sampleStore(t)
	e := NewEditor(s, input("Mookie Betts", "0", "0"), &bytes.Buffer{})
	require.NoError(t, e.Run())
	require.NoError(t, e.Commit())
	assert.Empty(t, e.Pending())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "AwaitName", AwaitName.String())
	assert.Equal(t, "Done", Done.String())
	assert.Equal(t, "State(42)", State(42).String())
}
