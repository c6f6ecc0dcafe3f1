package audit

import "context"

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter ListFilter) ([]*Entry, int64, error)
}

// ListFilter selects entries; empty fields match everything. Results are newest first.
type ListFilter struct {
	Page       int
	PageSize   int
	ActorID    string
	Resource   string
	ResourceID string
	Outcome    string
}
