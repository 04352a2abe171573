// internal/store/applicants.go
package store

import (
	"sync"

	"internship-allocator/internal/models"
)

// ApplicantStore holds applicant records keyed by posting id. Writes to live
// records (score, status) must go through Mutate so that Snapshot and FindAny,
// which clone under the read lock, never observe a concurrent mutation.
type ApplicantStore struct {
	mu        sync.RWMutex
	byPosting map[string][]*models.Applicant
}

func NewApplicantStore() *ApplicantStore {
	return &ApplicantStore{
		byPosting: make(map[string][]*models.Applicant),
	}
}

// Seed replaces the applicant list for a posting.
func (s *ApplicantStore) Seed(postID string, applicants []*models.Applicant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPosting[postID] = applicants
}

// List returns the live applicant records for a posting. Callers that mutate
// them must hold the posting's allocation lock and write through Mutate.
func (s *ApplicantStore) List(postID string) []*models.Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byPosting[postID]
}

// Mutate runs fn while holding the write lock. Every write to a live record
// field goes through here.
func (s *ApplicantStore) Mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Snapshot returns value copies of a posting's applicants for read-only use.
func (s *ApplicantStore) Snapshot(postID string) []models.Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	live := s.byPosting[postID]
	out := make([]models.Applicant, 0, len(live))
	for _, a := range live {
		out = append(out, a.Clone())
	}
	return out
}

// Find returns the live record for an applicant within a posting.
func (s *ApplicantStore) Find(postID, applicantID string) (*models.Applicant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.byPosting[postID] {
		if a.ID == applicantID {
			return a, true
		}
	}
	return nil, false
}

// FindCopy returns a snapshot of an applicant record within a posting.
func (s *ApplicantStore) FindCopy(postID, applicantID string) (models.Applicant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.byPosting[postID] {
		if a.ID == applicantID {
			return a.Clone(), true
		}
	}
	return models.Applicant{}, false
}

// FindAny searches every posting for an applicant id and returns a snapshot.
func (s *ApplicantStore) FindAny(applicantID string) (models.Applicant, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for postID, list := range s.byPosting {
		for _, a := range list {
			if a.ID == applicantID {
				return a.Clone(), postID, true
			}
		}
	}
	return models.Applicant{}, "", false
}

// Count returns the number of applicants for a posting.
func (s *ApplicantStore) Count(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byPosting[postID])
}
