package models

import (
	"time"

	"gorm.io/datatypes"
)

const TableAuditEntries = "audit_entries"

type AuditEntryModel struct {
	ID         uint           `gorm:"primaryKey"`
	ActorID    string         `gorm:"size:64;not null;index:idx_audit_actor"`
	ActorName  string         `gorm:"size:128;not null"`
	Action     string         `gorm:"size:64;not null"`
	Resource   string         `gorm:"size:32;not null;index:idx_audit_resource"`
	ResourceID string         `gorm:"size:64;index:idx_audit_resource"`
	Outcome    string         `gorm:"size:16;not null"`
	Error      string         `gorm:"type:text"`
	Payload    datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (AuditEntryModel) TableName() string {
	return TableAuditEntries
}
