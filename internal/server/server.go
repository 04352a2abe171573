// internal/server/server.go

// Package server exposes the allocation engine over HTTP. Routing uses the
// stdlib mux with method patterns; every department- and posting-scoped
// route sits behind the HR session middleware.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"internship-allocator/internal/auth"
	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/common/observability"
	"internship-allocator/internal/engine"
	"internship-allocator/internal/notify"
	"internship-allocator/internal/store"
)

// Options carries the handler knobs resolved from configuration.
type Options struct {
	TopPercentDefault int
	MeetBaseURL       string
}

// Deps bundles everything the handlers touch.
type Deps struct {
	Engine        *engine.Engine
	Postings      *store.PostingRegistry
	Applicants    *store.ApplicantStore
	Ledger        *store.RosterLedger
	Feed          *store.NotificationFeed
	Meetings      *store.MeetingBook
	Auth          *auth.Service
	Dispatcher    *notify.Dispatcher
	Logger        logger.Logger
	Observability *observability.Observability
}

type Server struct {
	engine     *engine.Engine
	postings   *store.PostingRegistry
	applicants *store.ApplicantStore
	ledger     *store.RosterLedger
	feed       *store.NotificationFeed
	meetings   *store.MeetingBook
	auth       *auth.Service
	dispatcher *notify.Dispatcher
	logger     logger.Logger
	obs        *observability.Observability

	topPercent  int
	meetBaseURL string
}

func New(deps Deps, opts Options) *Server {
	if opts.TopPercentDefault <= 0 {
		opts.TopPercentDefault = 20
	}
	if opts.MeetBaseURL == "" {
		opts.MeetBaseURL = "https://meet.example.com"
	}
	return &Server{
		engine:      deps.Engine,
		postings:    deps.Postings,
		applicants:  deps.Applicants,
		ledger:      deps.Ledger,
		feed:        deps.Feed,
		meetings:    deps.Meetings,
		auth:        deps.Auth,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger.WithFields(map[string]interface{}{"component": "http"}),
		obs:         deps.Observability,
		topPercent:  opts.TopPercentDefault,
		meetBaseURL: opts.MeetBaseURL,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /auth/login", s.instrument("auth_login", s.handleLogin))
	mux.HandleFunc("POST /auth/register", s.instrument("auth_register", s.handleRegister))
	mux.HandleFunc("POST /auth/logout", s.instrument("auth_logout", s.handleLogout))

	mux.HandleFunc("GET /departments/{departmentID}/posts", s.protected("department_posts", s.handleDepartmentPosts))
	mux.HandleFunc("GET /departments/{departmentID}/past", s.protected("department_past", s.handleDepartmentPast))
	mux.HandleFunc("POST /departments/{departmentID}/past/{postID}/restore", s.protected("posting_restore", s.handleRestore))
	mux.HandleFunc("GET /departments/{departmentID}/posts/{postID}/applicants", s.protected("posting_applicants", s.handleApplicants))
	mux.HandleFunc("GET /departments/{departmentID}/selected", s.protected("selected_list", s.handleSelected))
	mux.HandleFunc("GET /departments/{departmentID}/selected/export", s.protected("selected_export", s.handleSelectedExport))
	mux.HandleFunc("GET /departments/{departmentID}/rejected", s.protected("rejected_list", s.handleRejected))
	mux.HandleFunc("GET /departments/{departmentID}/notifications", s.protected("notifications", s.handleNotifications))
	mux.HandleFunc("GET /departments/{departmentID}/analytics", s.protected("analytics", s.handleAnalytics))

	mux.HandleFunc("GET /posts/{postID}", s.protected("posting_detail", s.handlePostingDetail))
	mux.HandleFunc("GET /posts/{postID}/applicants", s.protected("posting_applicants", s.handleApplicants))
	mux.HandleFunc("POST /posts/{postID}/match", s.protected("match", s.handleMatch))
	mux.HandleFunc("POST /posts/{postID}/select", s.protected("select", s.handleSelect))
	mux.HandleFunc("POST /posts/{postID}/reject", s.protected("reject", s.handleReject))
	mux.HandleFunc("POST /posts/{postID}/auto_select", s.protected("auto_select", s.handleAutoSelect))
	mux.HandleFunc("POST /posts/{postID}/tiebreak", s.protected("tiebreak_issue", s.handleTieBreakIssue))
	mux.HandleFunc("GET /posts/{postID}/tiebreak", s.protected("tiebreak_get", s.handleTieBreakGet))
	mux.HandleFunc("POST /posts/{postID}/tiebreak/send", s.protected("tiebreak_send", s.handleTieBreakSend))
	mux.HandleFunc("POST /posts/{postID}/schedule", s.protected("schedule", s.handleSchedule))
	mux.HandleFunc("GET /posts/{postID}/meetings", s.protected("meetings", s.handleMeetings))
	mux.HandleFunc("POST /posts/{postID}/send_top_emails", s.protected("send_top_emails", s.handleSendTopEmails))
	mux.HandleFunc("POST /posts/{postID}/email", s.protected("email", s.handleEmail))

	mux.HandleFunc("GET /applicants/{applicantID}", s.protected("applicant_profile", s.handleApplicantProfile))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
