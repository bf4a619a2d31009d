package types

import "time"

// ContractEdit is the journal record of one applied contract change.
type ContractEdit struct {
	EditID      string    `json:"edit_id"`
	SessionID   string    `json:"session_id"`
	PlayerID    string    `json:"player_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Contract    Contract  `json:"contract"`
	RowsUpdated int64     `json:"rows_updated"`
	AppliedAt   time.Time `json:"applied_at"`
}
