// internal/engine/engine.go
package engine

import (
	"context"
	"sync"
	"time"

	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/models"
	"internship-allocator/internal/store"
)

// Notifier is the sink for department-scoped event messages. Implementations
// must not block; the engine calls it while holding a posting lock.
type Notifier interface {
	Notify(departmentID, message string)
}

// AuditEvent is an append-only record of a status transition.
type AuditEvent struct {
	PostID       string
	ApplicantID  string
	DepartmentID string
	Action       string // "selected" or "rejected"
	Mode         string // "manual" or "auto"
	Score        float64
	OccurredAt   time.Time
}

// Auditor persists audit events. Failures are the auditor's problem; the
// engine never blocks an allocation on the archive.
type Auditor interface {
	Record(ctx context.Context, e AuditEvent) error
}

// Options carries the engine knobs resolved from configuration.
type Options struct {
	AssessBaseURL      string
	EnforceManualGuard bool
	Auditor            Auditor
}

// Engine owns the scoring, ranking, tie-break and allocation logic. All
// mutating operations for a posting are serialized by a per-posting lock;
// operations on different postings never contend. Writes to live records go
// through the owning store's write lock so HTTP read paths snapshot safely.
type Engine struct {
	postings   *store.PostingRegistry
	applicants *store.ApplicantStore
	ledger     *store.RosterLedger
	notifier   Notifier
	auditor    Auditor
	logger     logger.Logger

	assessBaseURL      string
	enforceManualGuard bool

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	tieMu   sync.RWMutex
	tieRecs map[string]*models.TieBreakRecord
}

func New(postings *store.PostingRegistry, applicants *store.ApplicantStore, ledger *store.RosterLedger, notifier Notifier, log logger.Logger, opts Options) *Engine {
	return &Engine{
		postings:           postings,
		applicants:         applicants,
		ledger:             ledger,
		notifier:           notifier,
		auditor:            opts.Auditor,
		logger:             log.WithFields(map[string]interface{}{"component": "engine"}),
		assessBaseURL:      opts.AssessBaseURL,
		enforceManualGuard: opts.EnforceManualGuard,
		locks:              make(map[string]*sync.Mutex),
		tieRecs:            make(map[string]*models.TieBreakRecord),
	}
}

// lockPosting serializes all mutating operations for one posting. Locks are
// created lazily and never removed; the posting universe is small and fixed.
func (e *Engine) lockPosting(postID string) func() {
	e.lockMu.Lock()
	mu, ok := e.locks[postID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[postID] = mu
	}
	e.lockMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func (e *Engine) audit(ev AuditEvent) {
	if e.auditor == nil {
		return
	}
	// Off the hot path: the posting lock is held by the caller.
	go func() {
		if err := e.auditor.Record(context.Background(), ev); err != nil {
			e.logger.Warn("audit record failed", map[string]interface{}{
				"postId":      ev.PostID,
				"applicantId": ev.ApplicantID,
				"error":       err,
			})
		}
	}()
}

func (e *Engine) notify(departmentID, message string) {
	if e.notifier != nil {
		e.notifier.Notify(departmentID, message)
	}
}
