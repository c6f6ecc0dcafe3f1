package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/domain/audit"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type ListAuditEntriesQuery struct {
	dto.ListQuery
	ActorID    string
	Resource   string
	ResourceID string
	Outcome    string
}

type AuditEntryDTO struct {
	ID         uint      `json:"id"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListAuditEntriesUseCase struct {
	repo   audit.Repository
	logger logger.Interface
}

func NewListAuditEntriesUseCase(repo audit.Repository, logger logger.Interface) *ListAuditEntriesUseCase {
	return &ListAuditEntriesUseCase{repo: repo, logger: logger}
}

func (uc *ListAuditEntriesUseCase) Execute(ctx context.Context, query ListAuditEntriesQuery) (*dto.ListResult[AuditEntryDTO], error) {
	q := query.Normalize()

	entries, total, err := uc.repo.List(ctx, audit.ListFilter{
		Page:       q.Page,
		PageSize:   q.PageSize,
		ActorID:    query.ActorID,
		Resource:   query.Resource,
		ResourceID: query.ResourceID,
		Outcome:    query.Outcome,
	})
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	items := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		item := AuditEntryDTO{
			ID:         e.ID,
			ActorID:    e.ActorID,
			ActorName:  e.ActorName,
			Action:     e.Action,
			Resource:   e.Resource,
			ResourceID: e.ResourceID,
			Outcome:    string(e.Outcome),
			Error:      e.Error,
			CreatedAt:  e.CreatedAt,
		}
		if len(e.Payload) > 0 && string(e.Payload) != "null" {
			item.Payload = e.Payload
		}
		items = append(items, item)
	}

	return &dto.ListResult[AuditEntryDTO]{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}
