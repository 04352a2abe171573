// internal/server/middleware.go
package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"internship-allocator/internal/models"
)

// authedHandler is a handler that runs with a resolved HR account.
type authedHandler func(w http.ResponseWriter, r *http.Request, hr models.HRUser)

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request logging and OTel counters.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next(rec, r)

		elapsed := time.Since(start)
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, strconv.Itoa(rec.status))
			s.obs.RecordRequestDuration(r.Context(), elapsed, route)
		}
		s.logger.Info("request handled", map[string]interface{}{
			"route":    route,
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": elapsed.String(),
		})
	}
}

// protected resolves the session token before the handler runs. The token
// comes from the Token header or an Authorization bearer.
func (s *Server) protected(route string, next authedHandler) http.HandlerFunc {
	return s.instrument(route, func(w http.ResponseWriter, r *http.Request) {
		hr, err := s.auth.Authenticate(r.Context(), bearerToken(r))
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r, hr)
	})
}

func bearerToken(r *http.Request) string {
	if token := r.Header.Get("Token"); token != "" {
		return token
	}
	authz := r.Header.Get("Authorization")
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}
