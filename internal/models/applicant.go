// internal/models/applicant.go
package models

// Status is the admission workflow state of an applicant.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusSelected Status = "selected"
	StatusRejected Status = "rejected"
)

// SocialCategory values eligible for the affirmative-action bonus.
var ReservedCategories = map[string]bool{
	"SC":  true,
	"ST":  true,
	"OBC": true,
	"EWS": true,
}

// Applicant is a candidate who applied to exactly one posting. The Score
// pointer stays nil until the scorer has run; Status is mutated only by the
// allocator and by manual select/reject. Applicants are never deleted, only
// re-statused.
type Applicant struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Skills            []string `json:"skills"`
	Qualifications    string   `json:"qualifications"`
	Location          string   `json:"location"`
	SectorInterests   []string `json:"sector_interests"`
	Rural             bool     `json:"rural"`
	SocialCategory    string   `json:"social_category"`
	PastParticipation int      `json:"past_participation"`
	Score             *float64 `json:"score"`
	Status            Status   `json:"status"`
}

// Clone returns a deep copy. Roster entries are point-in-time snapshots, so
// later mutation of the original must not leak into them.
func (a *Applicant) Clone() Applicant {
	cp := *a
	cp.Skills = append([]string(nil), a.Skills...)
	cp.SectorInterests = append([]string(nil), a.SectorInterests...)
	if a.Score != nil {
		s := *a.Score
		cp.Score = &s
	}
	return cp
}
