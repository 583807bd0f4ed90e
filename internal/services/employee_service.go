package services

import (
	"chai/internal/models"
	"chai/internal/repositories"
)

// EmployeeService backs the admin employee pages.
type EmployeeService struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// ListEmployees returns every employee in insertion order.
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// CreateEmployee stores a new employee.
func (s *EmployeeService) CreateEmployee(employee *models.Employee) error {
	return s.repo.Create(employee)
}

// DeleteEmployee removes the employee with the given ID.
func (s *EmployeeService) DeleteEmployee(id uint) error {
	return s.repo.Delete(id)
}
