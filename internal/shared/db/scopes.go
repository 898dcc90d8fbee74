// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// ActiveOnly is a GORM scope that filters for rows whose "activo" flag is set.
// Parts and technicians are never hard-deleted by list queries; they are
// deactivated instead.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.ActiveOnly()).Find(&results)
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("activo = ?", true)
	}
}

// ActiveOnlyWithAlias filters on a table alias's "activo" flag.
// Use this when joining tables and the column would otherwise be ambiguous.
func ActiveOnlyWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".activo = ?", true)
	}
}
