package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/codearena/arena-admin/internal/domain/audit"
	"github.com/codearena/arena-admin/internal/infrastructure/persistence/models"
)

type AuditEntryMapper interface {
	ToModel(e *audit.Entry) *models.AuditEntryModel
	ToDomain(m *models.AuditEntryModel) *audit.Entry
	ToDomainList(ms []models.AuditEntryModel) []*audit.Entry
}

type auditEntryMapper struct{}

func NewAuditEntryMapper() AuditEntryMapper {
	return &auditEntryMapper{}
}

func (auditEntryMapper) ToModel(e *audit.Entry) *models.AuditEntryModel {
	if e == nil {
		return nil
	}
	return &models.AuditEntryModel{
		ID:         e.ID,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		Outcome:    string(e.Outcome),
		Error:      e.Error,
		Payload:    datatypes.JSON(e.Payload),
		CreatedAt:  e.CreatedAt,
	}
}

func (auditEntryMapper) ToDomain(m *models.AuditEntryModel) *audit.Entry {
	if m == nil {
		return nil
	}
	return &audit.Entry{
		ID:         m.ID,
		ActorID:    m.ActorID,
		ActorName:  m.ActorName,
		Action:     m.Action,
		Resource:   m.Resource,
		ResourceID: m.ResourceID,
		Outcome:    audit.Outcome(m.Outcome),
		Error:      m.Error,
		Payload:    json.RawMessage(m.Payload),
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func (mp auditEntryMapper) ToDomainList(ms []models.AuditEntryModel) []*audit.Entry {
	out := make([]*audit.Entry, 0, len(ms))
	for i := range ms {
		out = append(out, mp.ToDomain(&ms[i]))
	}
	return out
}
