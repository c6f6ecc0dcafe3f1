// Package db provides query scopes and transaction helpers for the console database.
package db

import (
	"gorm.io/gorm"

	"github.com/codearena/arena-admin/internal/shared/utils"
)

// Paginate limits a query to one page.
//
//	db.Model(&AuditEntryModel{}).Scopes(db.Paginate(2, 20)).Find(&rows)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	p := utils.ValidatePagination(page, pageSize)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// WhereIfSet adds "column = value" only when value is non-empty.
func WhereIfSet(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}
