// internal/models/posting.go
package models

// Posting is an internship opening with a fixed position capacity. Invariant:
// 0 <= PositionsFilled <= Positions. PositionsFilled is mutated only by the
// allocator and manual select/reject, never by scoring or ranking.
type Posting struct {
	ID                 string   `json:"id"`
	DepartmentID       string   `json:"department_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Stipend            string   `json:"stipend"`
	Positions          int      `json:"positions"`
	PositionsFilled    int      `json:"positions_filled"`
	Applied            int      `json:"applied"`
	SkillsRequired     []string `json:"skills_required"`
	LocationPreference string   `json:"location_preference"`
	Sector             string   `json:"sector"`
}

// Remaining returns the posting's remaining capacity.
func (p *Posting) Remaining() int {
	return p.Positions - p.PositionsFilled
}

// Filled reports whether every position has been filled.
func (p *Posting) Filled() bool {
	return p.PositionsFilled >= p.Positions
}

// Clone returns a copy safe to hand out of the registry lock.
func (p *Posting) Clone() Posting {
	cp := *p
	cp.SkillsRequired = append([]string(nil), p.SkillsRequired...)
	return cp
}
