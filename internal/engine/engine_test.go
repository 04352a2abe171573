// internal/engine/engine_test.go
package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/models"
	"internship-allocator/internal/store"
)

type notifierStub struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newNotifierStub() *notifierStub {
	return &notifierStub{messages: make(map[string][]string)}
}

func (n *notifierStub) Notify(departmentID, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages[departmentID] = append(n.messages[departmentID], message)
}

type testHarness struct {
	engine     *Engine
	postings   *store.PostingRegistry
	applicants *store.ApplicantStore
	ledger     *store.RosterLedger
	notifier   *notifierStub
}

func newHarness() *testHarness {
	postings := store.NewPostingRegistry()
	applicants := store.NewApplicantStore()
	ledger := store.NewRosterLedger()
	notifier := newNotifierStub()

	eng := New(postings, applicants, ledger, notifier, logger.NewNoOpLogger(), Options{
		AssessBaseURL:      "https://assess.example.com/test",
		EnforceManualGuard: true,
	})

	return &testHarness{
		engine:     eng,
		postings:   postings,
		applicants: applicants,
		ledger:     ledger,
		notifier:   notifier,
	}
}

// seedPosting registers a posting with the given capacity and an applicant
// per score, all in applied status.
func (h *testHarness) seedPosting(t *testing.T, postID, departmentID string, positions int, scores ...float64) {
	t.Helper()
	posting := &models.Posting{
		ID:             postID,
		DepartmentID:   departmentID,
		Title:          "Backend Internship",
		Positions:      positions,
		SkillsRequired: []string{"python", "sql"},
		Sector:         "IT & Software",
	}
	require.NoError(t, h.postings.Add(posting))

	applicants := make([]*models.Applicant, 0, len(scores))
	for i, s := range scores {
		sc := s
		applicants = append(applicants, &models.Applicant{
			ID:     postingApplicantID(postID, i+1),
			Name:   "Test Applicant",
			Email:  "applicant@example.com",
			Skills: []string{"python"},
			Score:  &sc,
			Status: models.StatusApplied,
		})
	}
	h.applicants.Seed(postID, applicants)
}

func postingApplicantID(postID string, seq int) string {
	return postID + "-" + string(rune('0'+seq))
}
