// internal/server/respond.go
package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"internship-allocator/internal/common/errors"
)

type errorBody struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Details string           `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a StandardError code to its HTTP status. Anything that is
// not a StandardError is a 500.
func writeError(w http.ResponseWriter, err error) {
	var se *errors.StandardError
	if !stderrors.As(err, &se) {
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    "INTERNAL",
			Message: "Internal server error",
		})
		return
	}
	writeJSON(w, statusFor(se.Code), errorBody{
		Code:    se.Code,
		Message: se.Message,
		Details: se.Details,
	})
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodePostingNotFound,
		errors.ErrCodeApplicantNotFound,
		errors.ErrCodeTieBreakNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAlreadySelected,
		errors.ErrCodeNoCapacity,
		errors.ErrCodeUserExists,
		errors.ErrCodeWeakPassword,
		errors.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidCredentials,
		errors.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationFailedError("invalid request body: " + err.Error())
	}
	return nil
}
