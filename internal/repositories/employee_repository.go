package repositories

import (
	"chai/internal/models"

	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	GetByID(id uint) (*models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id uint) error
}

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	gormRepository[models.Employee]
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		gormRepository: gormRepository[models.Employee]{db: db, entity: "employee"},
	}
}

// GetAll returns every employee in insertion order.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) { return r.all() }

// GetByID returns ErrNotFound when no employee has the given ID.
func (r *GORMEmployeeRepository) GetByID(id uint) (*models.Employee, error) { return r.byID(id) }

// Create inserts employee and sets its ID.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error { return r.create(employee) }

// Update overwrites every column of the stored employee.
func (r *GORMEmployeeRepository) Update(employee *models.Employee) error {
	return r.update(employee.ID, employee)
}

// Delete removes the employee with the given ID.
func (r *GORMEmployeeRepository) Delete(id uint) error { return r.delete(id) }
