package types

import "errors"

// Schema and store errors.
var (
	ErrInvalidSchema  = errors.New("invalid schema")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrSchemaMismatch = errors.New("row does not match schema")
	ErrStoreClosed    = errors.New("store is closed")
)

// Hierarchy resolution errors. All of them mean the input file is corrupt
// or violates the row-ordering convention; none are recoverable.
var (
	ErrMalformedHeader        = errors.New("malformed header line")
	ErrMissingSentinel        = errors.New("header block has no // sentinel")
	ErrInvalidTeamID          = errors.New("invalid team id")
	ErrOrphanAffiliate        = errors.New("affiliate team appears before any major team")
	ErrNonContiguousAffiliate = errors.New("affiliate rows are not contiguous with their major team")
	ErrUnknownTeam            = errors.New("unknown team")
)

// Contract and editor errors.
var (
	ErrContractTooLong = errors.New("contract longer than 10 years")
	ErrNegativeAmount  = errors.New("contract amount must not be negative")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInputClosed     = errors.New("input closed before the edit finished")
)

// Config validation errors.
var (
	ErrMajorLeagueEmpty = errors.New("major league name must not be empty")
	ErrLogLevelUnknown  = errors.New("unknown log level")
)
