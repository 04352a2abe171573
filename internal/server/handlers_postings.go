// internal/server/handlers_postings.go
package server

import (
	"fmt"
	"net/http"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/export"
	"internship-allocator/internal/models"
)

func (s *Server) handleDepartmentPosts(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	posts, err := s.postings.ActiveByDepartment(r.PathValue("departmentID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleDepartmentPast(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.postings.PastByDepartment(r.PathValue("departmentID")))
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	posting, err := s.engine.RestorePosting(r.PathValue("departmentID"), r.PathValue("postID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Restored",
		"post":    posting,
	})
}

func (s *Server) handlePostingDetail(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	posting, ok := s.postings.FindCopy(r.PathValue("postID"))
	if !ok {
		writeError(w, errors.NewPostingNotFoundError(r.PathValue("postID")))
		return
	}
	writeJSON(w, http.StatusOK, posting)
}

func (s *Server) handleApplicants(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.applicants.Snapshot(r.PathValue("postID")))
}

func (s *Server) handleApplicantProfile(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	applicant, _, ok := s.applicants.FindAny(r.PathValue("applicantID"))
	if !ok {
		writeError(w, errors.NewApplicantNotFoundError(r.PathValue("applicantID")))
		return
	}
	writeJSON(w, http.StatusOK, applicant)
}

func (s *Server) handleSelected(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.ledger.Selected(r.PathValue("departmentID")))
}

func (s *Server) handleSelectedExport(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	departmentID := r.PathValue("departmentID")
	entries := s.ledger.Selected(departmentID)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=selected_%s.csv", departmentID))
	if err := export.WriteSelectedCSV(w, entries); err != nil {
		s.logger.Error("csv export failed", map[string]interface{}{
			"departmentId": departmentID,
			"error":        err,
		})
	}
}

// Rejected lists are restricted to the owning department's HR.
func (s *Server) handleRejected(w http.ResponseWriter, r *http.Request, hr models.HRUser) {
	departmentID := r.PathValue("departmentID")
	if hr.DepartmentID != departmentID {
		writeError(w, errors.NewForbiddenError("department mismatch"))
		return
	}
	writeJSON(w, http.StatusOK, s.ledger.Rejected(departmentID))
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.feed.List(r.PathValue("departmentID")))
}

type analyticsResponse struct {
	ActiveInternships  int `json:"active_internships"`
	PastInternships    int `json:"past_internships"`
	SelectedCandidates int `json:"selected_candidates"`
	RejectedCandidates int `json:"rejected_candidates"`
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	departmentID := r.PathValue("departmentID")

	active, err := s.postings.ActiveByDepartment(departmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	selected, rejected := s.ledger.Counts(departmentID)

	writeJSON(w, http.StatusOK, analyticsResponse{
		ActiveInternships:  len(active),
		PastInternships:    len(s.postings.PastByDepartment(departmentID)),
		SelectedCandidates: selected,
		RejectedCandidates: rejected,
	})
}
