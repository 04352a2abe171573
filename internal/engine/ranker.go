// internal/engine/ranker.go
package engine

import (
	"sort"

	"internship-allocator/internal/models"
)

func scoreOf(a *models.Applicant) float64 {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}

// Rank returns the applicants in descending score order. The input is not
// reordered. A nil score ranks as zero. Ordering between equal scores is
// stable but not contractual.
func Rank(applicants []*models.Applicant) []*models.Applicant {
	ranked := append([]*models.Applicant(nil), applicants...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreOf(ranked[i]) > scoreOf(ranked[j])
	})
	return ranked
}

// TopPercent returns the first max(1, len*percent/100) applicants of a ranked
// list. A non-empty input always yields at least one result.
func TopPercent(ranked []*models.Applicant, percent int) []*models.Applicant {
	if len(ranked) == 0 {
		return nil
	}
	count := len(ranked) * percent / 100
	if count < 1 {
		count = 1
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	return ranked[:count]
}

// TopN returns the first min(n, len) applicants of a ranked list.
func TopN(ranked []*models.Applicant, n int) []*models.Applicant {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// TiedAtMax returns every scored applicant sharing the maximum score, along
// with that score. The result may have size 1 (no real tie) and is empty when
// nothing has been scored yet.
func TiedAtMax(applicants []*models.Applicant) ([]*models.Applicant, float64) {
	var max float64
	found := false
	for _, a := range applicants {
		if a.Score == nil {
			continue
		}
		if !found || *a.Score > max {
			max = *a.Score
			found = true
		}
	}
	if !found {
		return nil, 0
	}

	var tied []*models.Applicant
	for _, a := range applicants {
		if a.Score != nil && *a.Score == max {
			tied = append(tied, a)
		}
	}
	return tied, max
}
