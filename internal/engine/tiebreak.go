// internal/engine/tiebreak.go
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"internship-allocator/internal/common/metrics"
	"internship-allocator/internal/models"
)

// TieBreakResult reports the references issued for the applicants tied at the
// maximum score.
type TieBreakResult struct {
	Created int               `json:"created"`
	Links   map[string]string `json:"links"`
	Score   float64           `json:"score,omitempty"`
}

// IssueTieBreak generates one supplementary-test reference per applicant tied
// at the posting's maximum score and replaces any prior record for the
// posting. Re-issuing is destructive: previously issued references are
// dropped, not merged. An empty or unscored pool yields zero references.
func (e *Engine) IssueTieBreak(postID string) *TieBreakResult {
	unlock := e.lockPosting(postID)
	defer unlock()

	applicants := e.applicants.List(postID)
	tied, max := TiedAtMax(applicants)
	if len(tied) == 0 {
		return &TieBreakResult{Created: 0, Links: map[string]string{}}
	}

	links := make(map[string]string, len(tied))
	for _, a := range tied {
		links[a.ID] = fmt.Sprintf("%s/%s/%s/%s", e.assessBaseURL, postID, a.ID, uuid.New().String())
	}

	e.tieMu.Lock()
	e.tieRecs[postID] = &models.TieBreakRecord{
		PostID:     postID,
		Score:      max,
		References: links,
		IssuedAt:   time.Now().UTC(),
	}
	e.tieMu.Unlock()

	metrics.TieBreaksIssued.Add(float64(len(links)))
	e.logger.Info("tie-break tests issued", map[string]interface{}{
		"postId": postID,
		"count":  len(links),
		"score":  max,
	})

	return &TieBreakResult{Created: len(links), Links: links, Score: max}
}

// TieBreak returns the current references for a posting, if any were issued.
func (e *Engine) TieBreak(postID string) (map[string]string, bool) {
	e.tieMu.RLock()
	defer e.tieMu.RUnlock()
	rec, ok := e.tieRecs[postID]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(rec.References))
	for k, v := range rec.References {
		out[k] = v
	}
	return out, true
}
