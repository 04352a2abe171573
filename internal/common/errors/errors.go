// Package errors provides standardized error handling for the allocation service.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodePostingNotFound   ErrorCode = "POSTING_NOT_FOUND"
	ErrCodeApplicantNotFound ErrorCode = "APPLICANT_NOT_FOUND"
	ErrCodeAlreadySelected   ErrorCode = "ALREADY_SELECTED"
	ErrCodeNoCapacity        ErrorCode = "NO_CAPACITY"
	ErrCodeTieBreakNotFound  ErrorCode = "TIEBREAK_NOT_FOUND"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeUserExists         ErrorCode = "USER_EXISTS"
	ErrCodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeSessionStoreFailed   ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeArchiveInsertFailed  ErrorCode = "ARCHIVE_INSERT_FAILED"
	ErrCodeNotificationFanout   ErrorCode = "NOTIFICATION_FANOUT_FAILED"
	ErrCodeEmailDeliveryFailed  ErrorCode = "EMAIL_DELIVERY_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var se *StandardError
	if goerrors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewPostingNotFoundError creates a non-retryable lookup error.
func NewPostingNotFoundError(postID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePostingNotFound,
		Message:   "Post not found",
		Details:   fmt.Sprintf("postId: %s", postID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicantNotFoundError creates a non-retryable lookup error.
func NewApplicantNotFoundError(applicantID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicantNotFound,
		Message:   "Applicant not found",
		Details:   fmt.Sprintf("applicantId: %s", applicantID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySelectedError signals a duplicate manual selection attempt.
func NewAlreadySelectedError(applicantID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadySelected,
		Message:   "Applicant already selected",
		Details:   fmt.Sprintf("applicantId: %s", applicantID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoCapacityError signals a manual selection against a fully filled posting.
func NewNoCapacityError(postID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoCapacity,
		Message:   "No positions available",
		Details:   fmt.Sprintf("postId: %s", postID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTieBreakNotFoundError signals a send attempt before any issuance.
func NewTieBreakNotFoundError(postID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTieBreakNotFound,
		Message:   "No tie-break tests found for this post",
		Details:   fmt.Sprintf("postId: %s", postID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCredentialsError creates a non-retryable authentication error.
func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid credentials",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTokenError creates a non-retryable session error.
func NewInvalidTokenError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidToken,
		Message:   "Invalid token",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUserExistsError creates a non-retryable registration error.
func NewUserExistsError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUserExists,
		Message:   "User already exists",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeakPasswordError creates a non-retryable registration error.
func NewWeakPasswordError() *StandardError {
	return &StandardError{
		Code:      ErrCodeWeakPassword,
		Message:   "Password too weak (min 6 chars)",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewForbiddenError creates a non-retryable authorization error.
func NewForbiddenError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeForbidden,
		Message:   "Unauthorized",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable record validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Record validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session backend error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewArchiveInsertFailedError creates a retryable audit archive error.
func NewArchiveInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArchiveInsertFailed,
		Message:   "Audit archive insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailDeliveryFailedError creates a retryable delivery error.
func NewEmailDeliveryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailDeliveryFailed,
		Message:   "Email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionStoreFailed,
		ErrCodeArchiveInsertFailed,
		ErrCodeEmailDeliveryFailed,
		ErrCodeNotificationFanout:
		return 3 // Retryable technical errors

	default:
		return 0 // Business errors: no retry
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}
