// internal/models/notification.go
package models

// Notification is a department-scoped event message.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Meeting is a scheduled interview for an applicant on a posting.
type Meeting struct {
	MeetingID   string `json:"meeting_id"`
	PostID      string `json:"post_id"`
	ApplicantID string `json:"applicant_id"`
	Datetime    string `json:"datetime"`
	Note        string `json:"note,omitempty"`
	JoinURL     string `json:"join_url"`
}
