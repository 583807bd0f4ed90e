package repositories

import (
	"fmt"
	"strings"

	"chai/internal/models"

	"gorm.io/gorm"
)

// GORMStudentRepository is a GORM implementation of StudentRepository.
type GORMStudentRepository struct {
	gormRepository[models.Student]
}

// NewGORMStudentRepository creates a new instance of GORMStudentRepository.
func NewGORMStudentRepository(db *gorm.DB) *GORMStudentRepository {
	return &GORMStudentRepository{
		gormRepository: gormRepository[models.Student]{db: db, entity: "student"},
	}
}

// GetAll retrieves all students in insertion order.
func (r *GORMStudentRepository) GetAll() ([]models.Student, error) { return r.all() }

// GetByID retrieves a single student by ID.
func (r *GORMStudentRepository) GetByID(id uint) (*models.Student, error) { return r.byID(id) }

// Create inserts a student. A duplicate email yields ErrConstraintViolation.
func (r *GORMStudentRepository) Create(student *models.Student) error { return r.create(student) }

// Update overwrites the stored student with the same ID.
func (r *GORMStudentRepository) Update(student *models.Student) error {
	return r.update(student.ID, student)
}

// Delete removes a student by ID.
func (r *GORMStudentRepository) Delete(id uint) error { return r.delete(id) }

// Search matches query against name and email, case-insensitively, and
// optionally filters by age. Results are ordered by name.
func (r *GORMStudentRepository) Search(query string, age *int) ([]models.Student, error) {
	tx := r.db.Model(&models.Student{})
	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if age != nil {
		tx = tx.Where("age = ?", *age)
	}
	var students []models.Student
	if err := tx.Order("name").Order("id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	return students, nil
}

// DeleteAll removes every student and reports how many rows were deleted.
func (r *GORMStudentRepository) DeleteAll() (int64, error) {
	res := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Student{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear students: %w", res.Error)
	}
	return res.RowsAffected, nil
}
