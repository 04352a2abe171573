// internal/engine/match.go
package engine

import (
	"internship-allocator/internal/models"
)

// MatchSummary is the trimmed applicant view returned to the shortlist table.
type MatchSummary struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Skills         []string      `json:"skills"`
	Qualifications string        `json:"qualifications"`
	Location       string        `json:"location"`
	Score          float64       `json:"score"`
	Status         models.Status `json:"status"`
}

// MatchResult reports whether ranking ran and the top slice it produced.
type MatchResult struct {
	Ranked     bool           `json:"ranked"`
	MatchedTop []MatchSummary `json:"matched_top"`
}

// Match scores and ranks a posting's applicant pool and returns the top
// slice by percent. A missing posting or empty pool yields Ranked=false
// rather than an error.
func (e *Engine) Match(postID string, topPercent int) *MatchResult {
	unlock := e.lockPosting(postID)
	defer unlock()

	posting, ok := e.postings.Find(postID)
	applicants := e.applicants.List(postID)
	if !ok || len(applicants) == 0 {
		return &MatchResult{Ranked: false, MatchedTop: []MatchSummary{}}
	}

	e.applicants.Mutate(func() { ScorePool(applicants, posting) })
	ranked := Rank(applicants)
	top := TopPercent(ranked, topPercent)

	summaries := make([]MatchSummary, 0, len(top))
	for _, a := range top {
		summaries = append(summaries, MatchSummary{
			ID:             a.ID,
			Name:           a.Name,
			Email:          a.Email,
			Skills:         append([]string(nil), a.Skills...),
			Qualifications: a.Qualifications,
			Location:       a.Location,
			Score:          scoreOf(a),
			Status:         a.Status,
		})
	}

	e.logger.Info("pool scored and ranked", map[string]interface{}{
		"postId":   postID,
		"pool":     len(applicants),
		"topCount": len(summaries),
	})

	return &MatchResult{Ranked: true, MatchedTop: summaries}
}

// RankedPool scores any unscored applicants with zero and returns the ranked
// pool snapshot for read-only consumers (top-email campaigns).
func (e *Engine) RankedPool(postID string) []models.Applicant {
	unlock := e.lockPosting(postID)
	defer unlock()

	applicants := e.applicants.List(postID)
	e.applicants.Mutate(func() {
		for _, a := range applicants {
			if a.Score == nil {
				zero := 0.0
				a.Score = &zero
			}
		}
	})
	ranked := Rank(applicants)

	out := make([]models.Applicant, 0, len(ranked))
	for _, a := range ranked {
		out = append(out, a.Clone())
	}
	return out
}
