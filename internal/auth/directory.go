// internal/auth/directory.go
package auth

import (
	"strings"
	"sync"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/models"
)

// UserDirectory is the in-memory HR account registry, keyed by lowercase
// email. Accounts are seeded at boot and extended through registration; there
// is no persistence requirement for them.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]models.HRUser
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{users: make(map[string]models.HRUser)}
}

// Add registers an HR account. Duplicate emails are rejected.
func (d *UserDirectory) Add(user models.HRUser) error {
	key := strings.ToLower(user.Email)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[key]; ok {
		return errors.NewUserExistsError(user.Email)
	}
	d.users[key] = user
	return nil
}

// Find looks up an account by email, case-insensitively.
func (d *UserDirectory) Find(email string) (models.HRUser, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[strings.ToLower(email)]
	return u, ok
}

// Count returns the number of registered accounts.
func (d *UserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
