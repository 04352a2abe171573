// internal/store/postings.go
package store

import (
	"sync"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/models"
)

// PostingRegistry holds the active and past posting collections per
// department. A posting moves to past exactly when all positions are filled
// and may be manually restored, resetting no counters.
type PostingRegistry struct {
	mu     sync.RWMutex
	active map[string][]*models.Posting
	past   map[string][]*models.Posting
}

func NewPostingRegistry() *PostingRegistry {
	return &PostingRegistry{
		active: make(map[string][]*models.Posting),
		past:   make(map[string][]*models.Posting),
	}
}

// Add registers a posting under its department's active collection.
func (r *PostingRegistry) Add(p *models.Posting) error {
	if err := models.ValidatePosting(p); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[p.DepartmentID] = append(r.active[p.DepartmentID], p)
	return nil
}

// Mutate runs fn while holding the write lock. Counter updates on live
// posting records go through here so clone-on-read paths never tear.
func (r *PostingRegistry) Mutate(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

// Find returns the live posting record for an id, active or past. Callers
// that mutate the record must write through Mutate.
func (r *PostingRegistry) Find(postID string) (*models.Posting, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lists := range []map[string][]*models.Posting{r.active, r.past} {
		for _, posts := range lists {
			for _, p := range posts {
				if p.ID == postID {
					return p, true
				}
			}
		}
	}
	return nil, false
}

// FindCopy returns a copy of a posting record taken under the registry lock,
// safe to hand out without coordination with the allocator.
func (r *PostingRegistry) FindCopy(postID string) (models.Posting, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lists := range []map[string][]*models.Posting{r.active, r.past} {
		for _, posts := range lists {
			for _, p := range posts {
				if p.ID == postID {
					return p.Clone(), true
				}
			}
		}
	}
	return models.Posting{}, false
}

// ActiveByDepartment returns copies of a department's active postings, or a
// not-found error for an unknown department.
func (r *PostingRegistry) ActiveByDepartment(departmentID string) ([]models.Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts, ok := r.active[departmentID]
	if !ok {
		return nil, errors.NewPostingNotFoundError(departmentID)
	}
	out := make([]models.Posting, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Clone())
	}
	return out, nil
}

// PastByDepartment returns copies of a department's past postings.
func (r *PostingRegistry) PastByDepartment(departmentID string) []models.Posting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := r.past[departmentID]
	out := make([]models.Posting, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Clone())
	}
	return out
}

// MoveToPast relocates a filled posting from active to past. Returns false if
// the posting is not in any active collection.
func (r *PostingRegistry) MoveToPast(postID string) (*models.Posting, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for dept, posts := range r.active {
		for i, p := range posts {
			if p.ID == postID {
				r.active[dept] = append(posts[:i:i], posts[i+1:]...)
				r.past[dept] = append(r.past[dept], p)
				return p, true
			}
		}
	}
	return nil, false
}

// Restore moves a past posting back to the active collection. Counters are
// untouched.
func (r *PostingRegistry) Restore(departmentID, postID string) (*models.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.past[departmentID]
	for i, p := range posts {
		if p.ID == postID {
			r.past[departmentID] = append(posts[:i:i], posts[i+1:]...)
			r.active[departmentID] = append(r.active[departmentID], p)
			return p, nil
		}
	}
	return nil, errors.NewPostingNotFoundError(postID)
}

// Department returns the owning department for a posting id.
func (r *PostingRegistry) Department(postID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lists := range []map[string][]*models.Posting{r.active, r.past} {
		for dept, posts := range lists {
			for _, p := range posts {
				if p.ID == postID {
					return dept, true
				}
			}
		}
	}
	return "", false
}

// Departments returns every department id known to the registry.
func (r *PostingRegistry) Departments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for dept := range r.active {
		if !seen[dept] {
			seen[dept] = true
			out = append(out, dept)
		}
	}
	for dept := range r.past {
		if !seen[dept] {
			seen[dept] = true
			out = append(out, dept)
		}
	}
	return out
}

// EnsureDepartment registers a department with an empty active collection so
// lookups distinguish "unknown department" from "no postings yet".
func (r *PostingRegistry) EnsureDepartment(departmentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[departmentID]; !ok {
		r.active[departmentID] = []*models.Posting{}
	}
}
