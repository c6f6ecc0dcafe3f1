package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/codearena/arena-admin/internal/domain/audit"
	"github.com/codearena/arena-admin/internal/infrastructure/persistence/mappers"
	"github.com/codearena/arena-admin/internal/infrastructure/persistence/models"
	"github.com/codearena/arena-admin/internal/shared/db"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditEntryMapper
	logger logger.Interface
}

func NewAuditRepository(db *gorm.DB, log logger.Interface) audit.Repository {
	return &AuditRepository{
		db:     db,
		mapper: mappers.NewAuditEntryMapper(),
		logger: log,
	}
}

func (r *AuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	model := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create audit entry", "action", entry.Action, "error", err)
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *AuditRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, int64, error) {
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.AuditEntryModel{}).Scopes(
			db.WhereIfSet("actor_id", filter.ActorID),
			db.WhereIfSet("resource", filter.Resource),
			db.WhereIfSet("resource_id", filter.ResourceID),
			db.WhereIfSet("outcome", filter.Outcome),
		)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count audit entries", "error", err)
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var rows []models.AuditEntryModel
	if err := filtered().Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list audit entries", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return r.mapper.ToDomainList(rows), total, nil
}
