// internal/engine/scorer.go
package engine

import (
	"math"
	"strings"
	"time"

	"internship-allocator/internal/common/metrics"
	"internship-allocator/internal/models"
)

// Scoring weights. Skill overlap dominates; the rest are fixed-step bonuses.
const (
	skillPointsPerMatch = 12.5
	skillPointsCap      = 50.0

	qualificationBonus = 15.0
	qualificationBase  = 8.0

	locationMatchPoints = 10.0
	locationBasePoints  = 5.0

	sectorMatchPoints = 15.0
	sectorBasePoints  = 7.0

	affirmativePoints = 5.0
	pastPenalty       = -5.0
)

// qualificationMarkers denote technical/advanced degrees worth the full
// qualification bonus.
var qualificationMarkers = []string{"Tech", "B.Tech", "M.Tech", "MBA", "BSc", "MSc", "BE"}

// Score computes the suitability of an applicant for a posting. It is pure
// and deterministic: identical inputs always produce the identical rounded
// value. Skill comparison is case-insensitive.
func Score(a *models.Applicant, p *models.Posting) float64 {
	required := make(map[string]bool, len(p.SkillsRequired))
	for _, s := range p.SkillsRequired {
		required[strings.ToLower(s)] = true
	}

	overlap := 0
	seen := make(map[string]bool, len(a.Skills))
	for _, s := range a.Skills {
		k := strings.ToLower(s)
		if required[k] && !seen[k] {
			seen[k] = true
			overlap++
		}
	}
	skillScore := math.Min(skillPointsCap, float64(overlap)*skillPointsPerMatch)

	qualScore := qualificationBase
	for _, marker := range qualificationMarkers {
		if strings.Contains(a.Qualifications, marker) {
			qualScore = qualificationBonus
			break
		}
	}

	locScore := locationBasePoints
	if p.LocationPreference != "" && a.Location == p.LocationPreference {
		locScore = locationMatchPoints
	}

	secScore := sectorBasePoints
	for _, interest := range a.SectorInterests {
		if interest == p.Sector {
			secScore = sectorMatchPoints
			break
		}
	}

	affBonus := 0.0
	if a.Rural {
		affBonus += affirmativePoints
	}
	if models.ReservedCategories[a.SocialCategory] {
		affBonus += affirmativePoints
	}

	penalty := 0.0
	if a.PastParticipation > 0 {
		penalty = pastPenalty
	}

	total := skillScore + qualScore + locScore + secScore + affBonus + penalty
	return math.Round(total*100) / 100
}

// ScorePool scores every applicant against the posting and writes the result
// back onto each record so later ranking and allocation reuse it. Re-running
// overwrites; scoring is idempotent for unchanged inputs.
func ScorePool(applicants []*models.Applicant, p *models.Posting) {
	start := time.Now()
	for _, a := range applicants {
		s := Score(a, p)
		a.Score = &s
	}
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
}
