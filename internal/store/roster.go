// internal/store/roster.go
package store

import (
	"sync"

	"internship-allocator/internal/models"
)

// RosterLedger keeps the per-department selected and rejected collections.
// Entries are snapshots; the ledger is kept consistent with applicant status
// by the allocator and manual select/reject, never independently.
type RosterLedger struct {
	mu       sync.RWMutex
	selected map[string][]models.RosterEntry
	rejected map[string][]models.Applicant
}

func NewRosterLedger() *RosterLedger {
	return &RosterLedger{
		selected: make(map[string][]models.RosterEntry),
		rejected: make(map[string][]models.Applicant),
	}
}

// AppendSelected adds a roster entry to a department's selected list.
func (l *RosterLedger) AppendSelected(departmentID string, entry models.RosterEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selected[departmentID] = append(l.selected[departmentID], entry)
}

// RemoveSelected drops an applicant from the selected list, reporting whether
// it was present.
func (l *RosterLedger) RemoveSelected(departmentID, applicantID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.selected[departmentID]
	for i, e := range entries {
		if e.ID == applicantID {
			l.selected[departmentID] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// IsSelected reports whether an applicant is on a department's selected list.
func (l *RosterLedger) IsSelected(departmentID, applicantID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.selected[departmentID] {
		if e.ID == applicantID {
			return true
		}
	}
	return false
}

// AppendRejected adds an applicant snapshot to a department's rejected list.
func (l *RosterLedger) AppendRejected(departmentID string, applicant models.Applicant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rejected[departmentID] = append(l.rejected[departmentID], applicant)
}

// RemoveRejected drops an applicant from the rejected list if present.
func (l *RosterLedger) RemoveRejected(departmentID, applicantID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.rejected[departmentID]
	for i, a := range entries {
		if a.ID == applicantID {
			l.rejected[departmentID] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Selected returns a copy of a department's selected roster.
func (l *RosterLedger) Selected(departmentID string) []models.RosterEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.RosterEntry(nil), l.selected[departmentID]...)
}

// Rejected returns a copy of a department's rejected roster.
func (l *RosterLedger) Rejected(departmentID string) []models.Applicant {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Applicant(nil), l.rejected[departmentID]...)
}

// Counts returns the selected and rejected sizes for analytics.
func (l *RosterLedger) Counts(departmentID string) (selected, rejected int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.selected[departmentID]), len(l.rejected[departmentID])
}
