package services

import (
	"chai/internal/models"
	"chai/internal/repositories"

	"github.com/sirupsen/logrus"
)

// StudentService handles business logic related to students.
type StudentService struct {
	repo   repositories.StudentRepository
	events recorder
}

// NewStudentService creates a new StudentService. publisher may be nil.
func NewStudentService(repo repositories.StudentRepository, publisher EventPublisher, log *logrus.Logger) *StudentService {
	return &StudentService{
		repo:   repo,
		events: recorder{publisher: publisher, log: log, entity: "student"},
	}
}

// GetAllStudents retrieves all students in insertion order.
func (s *StudentService) GetAllStudents() ([]models.Student, error) {
	return s.repo.GetAll()
}

// GetStudentByID retrieves a single student by its ID.
func (s *StudentService) GetStudentByID(id uint) (*models.Student, error) {
	return s.repo.GetByID(id)
}

// SearchStudents backs the admin listing.
func (s *StudentService) SearchStudents(query string, age *int) ([]models.Student, error) {
	return s.repo.Search(query, age)
}

// CreateStudent creates a new student.
func (s *StudentService) CreateStudent(student *models.Student) error {
	if err := s.repo.Create(student); err != nil {
		return err
	}
	s.events.record("created", student.ID)
	return nil
}

// UpdateStudent updates an existing student.
func (s *StudentService) UpdateStudent(student *models.Student) error {
	if err := s.repo.Update(student); err != nil {
		return err
	}
	s.events.record("updated", student.ID)
	return nil
}

// DeleteStudent deletes a student by its ID.
func (s *StudentService) DeleteStudent(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.events.record("deleted", id)
	return nil
}

// ReplaceAll clears the table and inserts students in order. It stops at
// the first failing insert.
func (s *StudentService) ReplaceAll(students []models.Student) (int64, error) {
	cleared, err := s.repo.DeleteAll()
	if err != nil {
		return 0, err
	}
	for i := range students {
		if err := s.CreateStudent(&students[i]); err != nil {
			return cleared, err
		}
	}
	return cleared, nil
}
