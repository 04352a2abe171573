// internal/store/notifications.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"internship-allocator/internal/models"
)

// NotificationFeed is the per-department feed of event messages.
type NotificationFeed struct {
	mu   sync.RWMutex
	feed map[string][]models.Notification
}

func NewNotificationFeed() *NotificationFeed {
	return &NotificationFeed{
		feed: make(map[string][]models.Notification),
	}
}

// Publish appends a message to a department's feed.
func (f *NotificationFeed) Publish(departmentID, message string) models.Notification {
	n := models.Notification{
		ID:      uuid.New().String(),
		Message: message,
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feed[departmentID] = append(f.feed[departmentID], n)
	return n
}

// List returns a copy of a department's feed.
func (f *NotificationFeed) List(departmentID string) []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.Notification(nil), f.feed[departmentID]...)
}
