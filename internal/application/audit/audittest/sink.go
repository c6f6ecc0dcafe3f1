// Package audittest provides an in-memory audit.Sink for use case tests.
package audittest

import (
	"context"
	"sync"

	"github.com/codearena/arena-admin/internal/application/audit"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
)

type Record struct {
	Action  audit.Action
	Outcome domainaudit.Outcome
	Err     error
}

type Sink struct {
	mu      sync.Mutex
	records []Record
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Record(_ context.Context, action audit.Action, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Action: action, Outcome: audit.OutcomeOf(err), Err: err})
}

func (s *Sink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Last returns the most recent record, or the zero Record when none exist.
func (s *Sink) Last() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return Record{}
	}
	return s.records[len(s.records)-1]
}
