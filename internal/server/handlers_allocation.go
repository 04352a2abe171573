// internal/server/handlers_allocation.go
package server

import (
	"net/http"
	"strconv"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/models"
	"internship-allocator/internal/notify"
)

type applicantBody struct {
	ApplicantID string `json:"applicant_id"`
}

// queuedEmail is the email payload echoed back to the HR console.
type queuedEmail struct {
	notify.Email
	Status string `json:"status"`
}

func (s *Server) queue(email notify.Email) queuedEmail {
	status := "queued"
	if s.dispatcher == nil || !s.dispatcher.Enqueue(email) {
		status = "dropped"
	}
	return queuedEmail{Email: email, Status: status}
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.engine.Match(r.PathValue("postID"), s.topPercent))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	var body applicantBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	entry, err := s.engine.Select(r.PathValue("postID"), body.ApplicantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Candidate selected",
		"candidate": entry,
	})
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	var body applicantBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	postID := r.PathValue("postID")

	applicant, err := s.engine.Reject(postID, body.ApplicantID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"message":   "Candidate rejected",
		"candidate": applicant,
	}
	if posting, ok := s.postings.FindCopy(postID); ok {
		resp["email"] = s.queue(notify.RejectionEmail(*applicant, posting))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutoSelect(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	result, err := s.engine.AutoAllocate(r.PathValue("postID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTieBreakIssue(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.engine.IssueTieBreak(r.PathValue("postID")))
}

func (s *Server) handleTieBreakGet(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	links, ok := s.engine.TieBreak(r.PathValue("postID"))
	if !ok {
		links = map[string]string{}
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) handleTieBreakSend(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	postID := r.PathValue("postID")

	links, ok := s.engine.TieBreak(postID)
	if !ok {
		writeError(w, errors.NewTieBreakNotFoundError(postID))
		return
	}

	postTitle := postID
	if posting, found := s.postings.FindCopy(postID); found {
		postTitle = posting.Title
	}

	emails := make([]queuedEmail, 0, len(links))
	for applicantID, link := range links {
		applicant, _, found := s.applicants.FindAny(applicantID)
		if !found {
			continue
		}
		emails = append(emails, s.queue(notify.TieBreakEmail(applicant, postTitle, link)))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sent_count": len(emails),
		"emails":     emails,
	})
}

func (s *Server) handleSendTopEmails(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	postID := r.PathValue("postID")

	ranked := s.engine.RankedPool(postID)
	if len(ranked) == 0 {
		writeError(w, errors.NewApplicantNotFoundError(postID))
		return
	}

	method := r.URL.Query().Get("method")
	if method == "" {
		method = "top_percent"
	}
	value := s.topPercent
	if raw := r.URL.Query().Get("value"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}

	var count int
	switch method {
	case "top_percent":
		count = len(ranked) * value / 100
		if count < 1 {
			count = 1
		}
	case "top_n":
		count = value
		if count > len(ranked) {
			count = len(ranked)
		}
	default:
		count = 1
	}
	if count < 0 {
		count = 0
	}
	if count > len(ranked) {
		count = len(ranked)
	}

	var posting models.Posting
	if p, ok := s.postings.FindCopy(postID); ok {
		posting = p
	} else {
		posting.Title = postID
	}

	emails := make([]queuedEmail, 0, count)
	for i, a := range ranked[:count] {
		score := 0.0
		if a.Score != nil {
			score = *a.Score
		}
		emails = append(emails, s.queue(notify.TopCandidateEmail(a, posting, i+1, score)))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sent_count": len(emails),
		"emails":     emails,
	})
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	postID := r.PathValue("postID")
	applicantID := r.URL.Query().Get("applicant_id")

	applicant, ok := s.applicants.FindCopy(postID, applicantID)
	if !ok {
		writeError(w, errors.NewApplicantNotFoundError(applicantID))
		return
	}
	posting, ok := s.postings.FindCopy(postID)
	if !ok {
		writeError(w, errors.NewPostingNotFoundError(postID))
		return
	}

	var email notify.Email
	if r.URL.Query().Get("type") == "rejection" {
		email = notify.RejectionEmail(applicant, posting)
	} else {
		email = notify.SelectionEmail(applicant, posting)
	}
	if subject := r.URL.Query().Get("subject"); subject != "" {
		email.Subject = subject
	}

	writeJSON(w, http.StatusOK, s.queue(email))
}
