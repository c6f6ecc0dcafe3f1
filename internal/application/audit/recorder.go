// Package audit records staff mutations. Recording is best effort: a failure
// is logged and never changes the outcome of the mutation itself.
package audit

import (
	"context"
	"time"

	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// Action describes one mutation.
type Action struct {
	Name       string // e.g. "languages.reorder"
	Resource   string
	ResourceID string
	Payload    any
}

// Sink receives the outcome of every mutation.
type Sink interface {
	Record(ctx context.Context, action Action, err error)
}

const writeTimeout = 3 * time.Second

type Recorder struct {
	repo   domainaudit.Repository
	logger logger.Interface
}

func NewRecorder(repo domainaudit.Repository, log logger.Interface) *Recorder {
	return &Recorder{repo: repo, logger: log}
}

// Record stores action with an outcome derived from err: nil succeeded, a
// rolled back optimistic update rolled_back, anything else failed.
func (r *Recorder) Record(ctx context.Context, action Action, err error) {
	actor := staff.FromContext(ctx)

	outcome := OutcomeOf(err)
	entry, buildErr := domainaudit.NewEntry(actor.ID, actor.Username, action.Name, action.Resource, action.ResourceID, outcome, action.Payload)
	if buildErr != nil {
		r.logger.Errorw("failed to build audit entry", "action", action.Name, "error", buildErr)
		return
	}
	if err != nil {
		entry.Error = err.Error()
	}

	// the request may be finished or cancelled by now; the entry is still wanted
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if createErr := r.repo.Create(writeCtx, entry); createErr != nil {
		r.logger.Errorw("failed to record audit entry",
			"action", action.Name,
			"resource_id", action.ResourceID,
			"outcome", outcome,
			"error", createErr)
	}
}

func OutcomeOf(err error) domainaudit.Outcome {
	switch {
	case err == nil:
		return domainaudit.OutcomeSucceeded
	case optimistic.IsRollback(err):
		return domainaudit.OutcomeRolledBack
	default:
		return domainaudit.OutcomeFailed
	}
}
