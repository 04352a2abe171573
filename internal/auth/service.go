// internal/auth/service.go

// Package auth implements HR account registration and token-based sessions.
// Accounts live in memory; tokens live in Redis so they survive restarts.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/models"
)

// Service ties the account directory and the session store together.
type Service struct {
	directory   *UserDirectory
	sessions    *SessionStore
	minPassword int
	logger      logger.Logger
}

func NewService(directory *UserDirectory, sessions *SessionStore, minPassword int, log logger.Logger) *Service {
	if minPassword <= 0 {
		minPassword = 6
	}
	return &Service{
		directory:   directory,
		sessions:    sessions,
		minPassword: minPassword,
		logger:      log.WithFields(map[string]interface{}{"component": "auth"}),
	}
}

// Register creates an HR account. Emails are unique case-insensitively and
// passwords must meet the minimum length.
func (s *Service) Register(user models.HRUser) error {
	if strings.TrimSpace(user.Email) == "" {
		return errors.NewValidationFailedError("email is required")
	}
	if len(user.Password) < s.minPassword {
		return errors.NewWeakPasswordError()
	}
	if err := s.directory.Add(user); err != nil {
		return err
	}
	s.logger.Info("hr account registered", map[string]interface{}{
		"email":        user.Email,
		"departmentId": user.DepartmentID,
	})
	return nil
}

// Login verifies credentials and mints a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.HRUser, error) {
	user, ok := s.directory.Find(email)
	if !ok {
		return "", models.HRUser{}, errors.NewInvalidCredentialsError()
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return "", models.HRUser{}, errors.NewInvalidCredentialsError()
	}

	token, err := s.sessions.Create(ctx, user.Email)
	if err != nil {
		return "", models.HRUser{}, err
	}

	s.logger.Info("hr login", map[string]interface{}{"email": user.Email})
	return token, user, nil
}

// Authenticate resolves a bearer token to its HR account.
func (s *Service) Authenticate(ctx context.Context, token string) (models.HRUser, error) {
	if token == "" {
		return models.HRUser{}, errors.NewInvalidTokenError()
	}
	email, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return models.HRUser{}, err
	}
	user, ok := s.directory.Find(email)
	if !ok {
		// account removed while the session was live
		return models.HRUser{}, errors.NewInvalidTokenError()
	}
	return user, nil
}

// Logout invalidates a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
