// internal/engine/allocator.go
package engine

import (
	"fmt"
	"time"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/common/metrics"
	"internship-allocator/internal/models"
)

// AllocationResult reports what an auto-allocation run selected.
type AllocationResult struct {
	SelectedCount int                  `json:"selected_count"`
	Selected      []models.RosterEntry `json:"selected_candidates"`
	Message       string               `json:"message"`
}

// AutoAllocate assigns a posting's highest-ranked eligible applicants to its
// remaining positions. Applicants already selected or rejected are never
// touched. A fully filled posting is a zero-result success, not an error.
func (e *Engine) AutoAllocate(postID string) (*AllocationResult, error) {
	unlock := e.lockPosting(postID)
	defer unlock()

	posting, ok := e.postings.Find(postID)
	if !ok {
		return nil, errors.NewPostingNotFoundError(postID)
	}
	departmentID, _ := e.postings.Department(postID)

	applicants := e.applicants.List(postID)
	if len(applicants) == 0 {
		return &AllocationResult{Selected: []models.RosterEntry{}, Message: "No applicants found"}, nil
	}

	// Never-scored applicants get a zero so the ranking is total even when
	// the scorer has not run for this posting.
	e.applicants.Mutate(func() {
		for _, a := range applicants {
			if a.Score == nil {
				zero := 0.0
				a.Score = &zero
			}
		}
	})
	ranked := Rank(applicants)

	remaining := posting.Remaining()
	if remaining <= 0 {
		return &AllocationResult{Selected: []models.RosterEntry{}, Message: "No positions available"}, nil
	}

	var selected []models.RosterEntry
	for _, a := range ranked {
		if a.Status != models.StatusApplied {
			continue
		}
		if remaining <= 0 {
			break
		}

		entry := e.selectApplicant(a, posting, departmentID, "auto")
		selected = append(selected, entry)
		remaining--
	}

	metrics.AllocationRuns.Inc()
	e.afterFill(posting, departmentID)

	e.logger.Info("auto-allocation completed", map[string]interface{}{
		"postId":          postID,
		"selectedCount":   len(selected),
		"positionsFilled": posting.PositionsFilled,
	})

	if selected == nil {
		selected = []models.RosterEntry{}
	}
	return &AllocationResult{
		SelectedCount: len(selected),
		Selected:      selected,
		Message:       fmt.Sprintf("%d candidates auto-selected based on score.", len(selected)),
	}, nil
}

// Select manually transitions one applicant to selected. Duplicate selection
// is rejected; the rejected roster is reconciled; the filled counter is
// incremented under the posting's capacity when the guard is enabled.
func (e *Engine) Select(postID, applicantID string) (*models.RosterEntry, error) {
	unlock := e.lockPosting(postID)
	defer unlock()

	posting, ok := e.postings.Find(postID)
	if !ok {
		return nil, errors.NewPostingNotFoundError(postID)
	}
	departmentID, _ := e.postings.Department(postID)

	applicant, ok := e.applicants.Find(postID, applicantID)
	if !ok {
		return nil, errors.NewApplicantNotFoundError(applicantID)
	}
	if applicant.Status == models.StatusSelected || e.ledger.IsSelected(departmentID, applicantID) {
		return nil, errors.NewAlreadySelectedError(applicantID)
	}
	if e.enforceManualGuard && posting.Filled() {
		return nil, errors.NewNoCapacityError(postID)
	}

	entry := e.selectApplicant(applicant, posting, departmentID, "manual")
	e.afterFill(posting, departmentID)

	return &entry, nil
}

// Reject transitions one applicant to rejected. The filled counter is
// decremented only if the applicant had been selected, and never below zero.
// Capacity is not checked: rejection is always legal.
func (e *Engine) Reject(postID, applicantID string) (*models.Applicant, error) {
	unlock := e.lockPosting(postID)
	defer unlock()

	posting, ok := e.postings.Find(postID)
	if !ok {
		return nil, errors.NewPostingNotFoundError(postID)
	}
	departmentID, _ := e.postings.Department(postID)

	applicant, ok := e.applicants.Find(postID, applicantID)
	if !ok {
		return nil, errors.NewApplicantNotFoundError(applicantID)
	}

	e.applicants.Mutate(func() { applicant.Status = models.StatusRejected })

	if e.ledger.RemoveSelected(departmentID, applicantID) {
		e.postings.Mutate(func() {
			if posting.PositionsFilled > 0 {
				posting.PositionsFilled--
			}
		})
	}

	snapshot := applicant.Clone()
	e.ledger.AppendRejected(departmentID, snapshot)

	metrics.RejectionsTotal.Inc()
	e.audit(AuditEvent{
		PostID:       postID,
		ApplicantID:  applicantID,
		DepartmentID: departmentID,
		Action:       "rejected",
		Mode:         "manual",
		Score:        scoreOf(applicant),
		OccurredAt:   time.Now().UTC(),
	})

	return &snapshot, nil
}

// selectApplicant applies the selected-state transition: status, roster
// entry, counter, rejected-list reconciliation, audit. Caller holds the
// posting lock and has verified eligibility.
func (e *Engine) selectApplicant(a *models.Applicant, posting *models.Posting, departmentID, mode string) models.RosterEntry {
	e.applicants.Mutate(func() { a.Status = models.StatusSelected })
	e.ledger.RemoveRejected(departmentID, a.ID)

	entry := models.RosterEntry{
		Applicant:  a.Clone(),
		PostID:     posting.ID,
		SelectedAt: time.Now().UTC(),
	}
	e.ledger.AppendSelected(departmentID, entry)
	e.postings.Mutate(func() { posting.PositionsFilled++ })

	metrics.SelectionsTotal.WithLabelValues(mode).Inc()
	e.audit(AuditEvent{
		PostID:       posting.ID,
		ApplicantID:  a.ID,
		DepartmentID: departmentID,
		Action:       "selected",
		Mode:         mode,
		Score:        scoreOf(a),
		OccurredAt:   entry.SelectedAt,
	})

	return entry
}

// afterFill moves a posting to the past collection the moment every position
// is filled, with a department notification.
func (e *Engine) afterFill(posting *models.Posting, departmentID string) {
	if !posting.Filled() {
		return
	}
	if _, moved := e.postings.MoveToPast(posting.ID); moved {
		e.notify(departmentID, fmt.Sprintf("Internship '%s' moved to Past (all positions filled).", posting.Title))
	}
}

// RestorePosting moves a past posting back to active, resetting no counters.
func (e *Engine) RestorePosting(departmentID, postID string) (*models.Posting, error) {
	unlock := e.lockPosting(postID)
	defer unlock()

	posting, err := e.postings.Restore(departmentID, postID)
	if err != nil {
		return nil, err
	}
	e.notify(departmentID, fmt.Sprintf("Internship '%s' restored to Active.", posting.Title))
	cp := posting.Clone()
	return &cp, nil
}
