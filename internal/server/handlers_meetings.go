// internal/server/handlers_meetings.go
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"internship-allocator/internal/models"
	"internship-allocator/internal/notify"
)

type scheduleRequest struct {
	ApplicantID string `json:"applicant_id"`
	DatetimeISO string `json:"datetime_iso"`
	Note        string `json:"note"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	var req scheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	postID := r.PathValue("postID")

	meetingID := uuid.New().String()
	meeting := models.Meeting{
		MeetingID:   meetingID,
		PostID:      postID,
		ApplicantID: req.ApplicantID,
		Datetime:    req.DatetimeISO,
		Note:        req.Note,
		JoinURL:     fmt.Sprintf("%s/%s", s.meetBaseURL, meetingID),
	}
	s.meetings.Add(meeting)

	// invitation goes out when the applicant is known; the meeting is booked
	// either way
	if applicant, _, ok := s.applicants.FindAny(req.ApplicantID); ok {
		postTitle := postID
		if posting, found := s.postings.FindCopy(postID); found {
			postTitle = posting.Title
		}
		s.queue(notify.MeetingEmail(applicant, meeting, postTitle))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Interview scheduled",
		"meeting_id":   meeting.MeetingID,
		"post_id":      meeting.PostID,
		"applicant_id": meeting.ApplicantID,
		"datetime":     meeting.Datetime,
		"note":         meeting.Note,
		"join_url":     meeting.JoinURL,
	})
}

func (s *Server) handleMeetings(w http.ResponseWriter, r *http.Request, _ models.HRUser) {
	writeJSON(w, http.StatusOK, s.meetings.List(r.PathValue("postID")))
}
