// internal/archive/archive.go

// Package archive persists selection/rejection audit events to PostgreSQL.
// The archive is write-behind: the engine fires events asynchronously and an
// insert failure never blocks or fails an allocation.
package archive

import (
	"context"
	"database/sql"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/engine"
)

const schema = `
CREATE TABLE IF NOT EXISTS selection_events (
	id            BIGSERIAL PRIMARY KEY,
	post_id       TEXT        NOT NULL,
	applicant_id  TEXT        NOT NULL,
	department_id TEXT        NOT NULL,
	action        TEXT        NOT NULL,
	mode          TEXT        NOT NULL,
	score         DOUBLE PRECISION NOT NULL,
	occurred_at   TIMESTAMPTZ NOT NULL
)`

const insertEvent = `
INSERT INTO selection_events (post_id, applicant_id, department_id, action, mode, score, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Archive is the PostgreSQL-backed engine.Auditor.
type Archive struct {
	db     *sql.DB
	logger logger.Logger
}

func New(db *sql.DB, log logger.Logger) *Archive {
	return &Archive{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "archive"}),
	}
}

// EnsureSchema creates the events table if missing.
func (a *Archive) EnsureSchema(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, schema); err != nil {
		return errors.NewArchiveInsertFailedError(err)
	}
	return nil
}

// Record appends one audit event.
func (a *Archive) Record(ctx context.Context, e engine.AuditEvent) error {
	_, err := a.db.ExecContext(ctx, insertEvent,
		e.PostID, e.ApplicantID, e.DepartmentID, e.Action, e.Mode, e.Score, e.OccurredAt)
	if err != nil {
		return errors.NewArchiveInsertFailedError(err)
	}
	return nil
}

// RecentEvents returns the latest audit rows for a department, newest first.
func (a *Archive) RecentEvents(ctx context.Context, departmentID string, limit int) ([]engine.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.db.QueryContext(ctx, `
SELECT post_id, applicant_id, department_id, action, mode, score, occurred_at
FROM selection_events
WHERE department_id = $1
ORDER BY occurred_at DESC
LIMIT $2`, departmentID, limit)
	if err != nil {
		return nil, errors.NewArchiveInsertFailedError(err)
	}
	defer rows.Close()

	var out []engine.AuditEvent
	for rows.Next() {
		var e engine.AuditEvent
		if err := rows.Scan(&e.PostID, &e.ApplicantID, &e.DepartmentID, &e.Action, &e.Mode, &e.Score, &e.OccurredAt); err != nil {
			return nil, errors.NewArchiveInsertFailedError(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewArchiveInsertFailedError(err)
	}
	return out, nil
}
