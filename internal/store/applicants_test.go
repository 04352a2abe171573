// internal/store/applicants_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/models"
)

func seedApplicants(s *ApplicantStore, postID string, ids ...string) {
	pool := make([]*models.Applicant, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, &models.Applicant{
			ID: id, Name: "Test Applicant", Email: "applicant@example.com",
			Skills: []string{"python"}, Status: models.StatusApplied,
		})
	}
	s.Seed(postID, pool)
}

func TestApplicantStore_FindCopyIsSnapshot(t *testing.T) {
	s := NewApplicantStore()
	seedApplicants(s, "p1", "p1-1", "p1-2")

	cp, ok := s.FindCopy("p1", "p1-1")
	require.True(t, ok)
	cp.Status = models.StatusRejected
	cp.Skills[0] = "mutated"

	live, _ := s.Find("p1", "p1-1")
	assert.Equal(t, models.StatusApplied, live.Status)
	assert.Equal(t, "python", live.Skills[0])

	_, ok = s.FindCopy("p1", "ghost")
	assert.False(t, ok)
}

func TestApplicantStore_MutateVisibleToSnapshot(t *testing.T) {
	s := NewApplicantStore()
	seedApplicants(s, "p1", "p1-1")

	live, _ := s.Find("p1", "p1-1")
	s.Mutate(func() {
		score := 87.5
		live.Score = &score
		live.Status = models.StatusSelected
	})

	snap := s.Snapshot("p1")
	require.Len(t, snap, 1)
	require.NotNil(t, snap[0].Score)
	assert.Equal(t, 87.5, *snap[0].Score)
	assert.Equal(t, models.StatusSelected, snap[0].Status)
}

func TestApplicantStore_SnapshotIsDetached(t *testing.T) {
	s := NewApplicantStore()
	seedApplicants(s, "p1", "p1-1")

	snap := s.Snapshot("p1")
	require.Len(t, snap, 1)
	snap[0].Status = models.StatusRejected

	live, _ := s.Find("p1", "p1-1")
	assert.Equal(t, models.StatusApplied, live.Status)
}
