package repositories

import "chai/internal/models"

// StudentRepository defines the interface for student data access.
type StudentRepository interface {
	GetAll() ([]models.Student, error)
	GetByID(id uint) (*models.Student, error)
	Create(student *models.Student) error
	Update(student *models.Student) error
	Delete(id uint) error
	// Search matches query against name or email and optionally filters by age.
	// Results are ordered by name.
	Search(query string, age *int) ([]models.Student, error)
	DeleteAll() (int64, error)
}
