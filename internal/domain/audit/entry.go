// Package audit models the console's record of staff mutations.
package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/codearena/arena-admin/internal/shared/biztime"
)

type Outcome string

const (
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
	OutcomeRolledBack Outcome = "rolled_back"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSucceeded, OutcomeFailed, OutcomeRolledBack:
		return true
	}
	return false
}

// Entry is one staff mutation against a platform resource.
type Entry struct {
	ID         uint
	ActorID    string
	ActorName  string
	Action     string // e.g. "languages.reorder"
	Resource   string // e.g. "language"
	ResourceID string
	Outcome    Outcome
	Error      string
	Payload    json.RawMessage
	CreatedAt  time.Time
}

// NewEntry builds an entry, marshalling payload to JSON. A nil payload is stored as null.
func NewEntry(actorID, actorName, action, resource, resourceID string, outcome Outcome, payload any) (*Entry, error) {
	if action == "" || resource == "" {
		return nil, fmt.Errorf("audit entry requires action and resource")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid audit outcome %q", outcome)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	return &Entry{
		ActorID:    actorID,
		ActorName:  actorName,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    outcome,
		Payload:    raw,
		CreatedAt:  biztime.NowUTC(),
	}, nil
}
