// internal/models/hruser.go
package models

// HRUser is a department HR manager account.
type HRUser struct {
	Email        string `json:"email"`
	Password     string `json:"-"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}
