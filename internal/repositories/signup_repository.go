package repositories

import (
	"chai/internal/models"

	"gorm.io/gorm"
)

// SignupRepository defines the interface for signup record data access.
type SignupRepository interface {
	GetAll() ([]models.SignupRecord, error)
	GetByID(id uint) (*models.SignupRecord, error)
	Create(record *models.SignupRecord) error
	Update(record *models.SignupRecord) error
	Delete(id uint) error
}

// GORMSignupRepository is a GORM implementation of SignupRepository.
type GORMSignupRepository struct {
	gormRepository[models.SignupRecord]
}

// NewGORMSignupRepository creates a new instance of GORMSignupRepository.
func NewGORMSignupRepository(db *gorm.DB) *GORMSignupRepository {
	return &GORMSignupRepository{
		gormRepository: gormRepository[models.SignupRecord]{db: db, entity: "signup record"},
	}
}

// GetAll returns every signup record in insertion order.
func (r *GORMSignupRepository) GetAll() ([]models.SignupRecord, error) { return r.all() }

// GetByID returns ErrNotFound when no record has the given ID.
func (r *GORMSignupRepository) GetByID(id uint) (*models.SignupRecord, error) { return r.byID(id) }

// Create inserts a signup record. The email column is unique.
func (r *GORMSignupRepository) Create(record *models.SignupRecord) error { return r.create(record) }

// Update overwrites every column of the stored record.
func (r *GORMSignupRepository) Update(record *models.SignupRecord) error {
	return r.update(record.ID, record)
}

// Delete removes the record with the given ID.
func (r *GORMSignupRepository) Delete(id uint) error { return r.delete(id) }
