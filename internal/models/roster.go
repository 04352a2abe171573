// internal/models/roster.go
package models

import "time"

// RosterEntry is a denormalized snapshot of an applicant at selection time,
// appended to the owning department's selected list. It is a copy, not a live
// reference: re-statusing the applicant later does not rewrite history.
type RosterEntry struct {
	Applicant
	PostID     string    `json:"post_id"`
	SelectedAt time.Time `json:"selected_at"`
}

// TieBreakRecord maps applicant ids to opaque test references for the
// applicants tied at a posting's maximum score. Re-issuing replaces the
// record wholesale.
type TieBreakRecord struct {
	PostID     string            `json:"post_id"`
	Score      float64           `json:"score"`
	References map[string]string `json:"links"`
	IssuedAt   time.Time         `json:"issued_at"`
}
