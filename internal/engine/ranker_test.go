// internal/engine/ranker_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/models"
)

func fptr(v float64) *float64 { return &v }

func scoredApplicants(scores ...float64) []*models.Applicant {
	out := make([]*models.Applicant, 0, len(scores))
	for i, s := range scores {
		out = append(out, &models.Applicant{
			ID:     string(rune('a' + i)),
			Score:  fptr(s),
			Status: models.StatusApplied,
		})
	}
	return out
}

func TestRank_DescendingByScore(t *testing.T) {
	applicants := scoredApplicants(50, 90, 10, 70)

	ranked := Rank(applicants)

	require.Len(t, ranked, 4)
	assert.Equal(t, 90.0, *ranked[0].Score)
	assert.Equal(t, 70.0, *ranked[1].Score)
	assert.Equal(t, 50.0, *ranked[2].Score)
	assert.Equal(t, 10.0, *ranked[3].Score)

	// input order untouched
	assert.Equal(t, 50.0, *applicants[0].Score)
}

func TestRank_NilScoreRanksAsZero(t *testing.T) {
	applicants := scoredApplicants(30)
	applicants = append(applicants, &models.Applicant{ID: "z", Status: models.StatusApplied})

	ranked := Rank(applicants)

	assert.Equal(t, "z", ranked[1].ID)
}

func TestTopPercent(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		percent  int
		expected int
	}{
		{"twenty percent of 24", 24, 20, 4},
		{"rounds down", 24, 23, 5},
		{"never empty for non-empty input", 3, 20, 1},
		{"single applicant", 1, 20, 1},
		{"full pool", 10, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := make([]float64, tt.count)
			ranked := Rank(scoredApplicants(scores...))
			assert.Len(t, TopPercent(ranked, tt.percent), tt.expected)
		})
	}

	assert.Nil(t, TopPercent(nil, 20))
}

func TestTopN(t *testing.T) {
	ranked := Rank(scoredApplicants(90, 70, 50))

	assert.Len(t, TopN(ranked, 2), 2)
	assert.Len(t, TopN(ranked, 10), 3)
	assert.Len(t, TopN(ranked, 0), 0)
}

func TestTiedAtMax(t *testing.T) {
	t.Run("two tied at ninety", func(t *testing.T) {
		applicants := scoredApplicants(90, 90, 70, 50, 10)

		tied, max := TiedAtMax(applicants)

		assert.Equal(t, 90.0, max)
		assert.Len(t, tied, 2)
	})

	t.Run("single top scorer is a tie of one", func(t *testing.T) {
		applicants := scoredApplicants(90, 70)

		tied, max := TiedAtMax(applicants)

		assert.Equal(t, 90.0, max)
		assert.Len(t, tied, 1)
	})

	t.Run("unscored pool yields nothing", func(t *testing.T) {
		applicants := []*models.Applicant{{ID: "a"}, {ID: "b"}}

		tied, _ := TiedAtMax(applicants)

		assert.Empty(t, tied)
	})

	t.Run("unscored applicants are ignored for the max", func(t *testing.T) {
		applicants := scoredApplicants(90)
		applicants = append(applicants, &models.Applicant{ID: "z"})

		tied, max := TiedAtMax(applicants)

		assert.Equal(t, 90.0, max)
		assert.Len(t, tied, 1)
	})
}
