// internal/notify/templates.go
package notify

import (
	"fmt"

	"internship-allocator/internal/models"
)

// Template kinds, used as the metric label on the dispatcher.
const (
	KindSelection    = "selection"
	KindRejection    = "rejection"
	KindTieBreak     = "tiebreak"
	KindTopCandidate = "top_candidate"
	KindMeeting      = "meeting"
)

// SelectionEmail congratulates a selected applicant.
func SelectionEmail(a models.Applicant, p models.Posting) Email {
	return Email{
		To:      a.Email,
		Subject: fmt.Sprintf("Selected: %s", p.Title),
		Body: fmt.Sprintf(
			"Dear %s,\n\nCongratulations! You have been selected for the internship '%s'.\nOur HR team will contact you with onboarding details shortly.\n\nRegards,\nInternship Allocation Team",
			a.Name, p.Title,
		),
		Kind: KindSelection,
	}
}

// RejectionEmail informs an applicant their application was not successful.
func RejectionEmail(a models.Applicant, p models.Posting) Email {
	return Email{
		To:      a.Email,
		Subject: fmt.Sprintf("Application update: %s", p.Title),
		Body: fmt.Sprintf(
			"Dear %s,\n\nThank you for applying to '%s'. After careful review we are unable to offer you this internship.\nWe encourage you to apply for future openings.\n\nRegards,\nInternship Allocation Team",
			a.Name, p.Title,
		),
		Kind: KindRejection,
	}
}

// TieBreakEmail sends an applicant their supplementary assessment link.
func TieBreakEmail(a models.Applicant, postTitle, link string) Email {
	return Email{
		To:      a.Email,
		Subject: fmt.Sprintf("Supplementary assessment: %s", postTitle),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYou are tied at the top score for '%s'. Please complete the supplementary assessment:\n%s\n\nRegards,\nInternship Allocation Team",
			a.Name, postTitle, link,
		),
		Kind: KindTieBreak,
	}
}

// TopCandidateEmail tells a high-ranked applicant they are shortlisted.
func TopCandidateEmail(a models.Applicant, p models.Posting, rank int, score float64) Email {
	return Email{
		To:      a.Email,
		Subject: fmt.Sprintf("Shortlisted: %s", p.Title),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYou are among the top candidates for '%s' (rank %d, score %.2f).\nOur HR team will reach out about next steps.\n\nRegards,\nInternship Allocation Team",
			a.Name, p.Title, rank, score,
		),
		Kind: KindTopCandidate,
	}
}

// MeetingEmail sends an applicant their interview invitation.
func MeetingEmail(a models.Applicant, m models.Meeting, postTitle string) Email {
	return Email{
		To:      a.Email,
		Subject: fmt.Sprintf("Interview scheduled: %s", postTitle),
		Body: fmt.Sprintf(
			"Dear %s,\n\nAn interview has been scheduled for '%s' at %s.\nJoin link: %s\n%s\n\nRegards,\nInternship Allocation Team",
			a.Name, postTitle, m.Datetime, m.JoinURL, m.Note,
		),
		Kind: KindMeeting,
	}
}
