// internal/store/meetings.go
package store

import (
	"sync"

	"internship-allocator/internal/models"
)

// MeetingBook holds scheduled interviews keyed by posting.
type MeetingBook struct {
	mu       sync.RWMutex
	meetings map[string][]models.Meeting
}

func NewMeetingBook() *MeetingBook {
	return &MeetingBook{
		meetings: make(map[string][]models.Meeting),
	}
}

// Add records a scheduled meeting for a posting.
func (b *MeetingBook) Add(m models.Meeting) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.meetings[m.PostID] = append(b.meetings[m.PostID], m)
}

// List returns a copy of the meetings scheduled for a posting.
func (b *MeetingBook) List(postID string) []models.Meeting {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Meeting(nil), b.meetings[postID]...)
}
