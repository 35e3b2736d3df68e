package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store owns all entity reads and writes. Every operation goes through an
// explicit Store handle; there is no package-level session. Cascade deletes
// are spelled out here as ordinary queries inside transactions rather than
// delegated to database-level constraints.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// fetch loads a single row by primary key into dest, translating a gorm
// record miss into a NotFoundError for the given resource kind.
func fetch(tx *gorm.DB, dest any, resource string, id uint) error {
	if err := tx.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(resource)
		}
		return err
	}
	return nil
}

// ensureExists verifies a row of the given model type is present without
// loading it.
func ensureExists(tx *gorm.DB, model any, resource string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound(resource)
	}
	return nil
}
