package services

import (
	"chai/internal/models"
	"chai/internal/repositories"

	"github.com/sirupsen/logrus"
)

// SignupService manages the records created by the signup pages.
type SignupService struct {
	repo   repositories.SignupRepository
	events recorder
}

// NewSignupService creates a new SignupService. publisher may be nil.
func NewSignupService(repo repositories.SignupRepository, publisher EventPublisher, log *logrus.Logger) *SignupService {
	return &SignupService{
		repo:   repo,
		events: recorder{publisher: publisher, log: log, entity: "signup"},
	}
}

// Register stores the record unchanged; the password is kept as plain text.
// A duplicate email yields repositories.ErrConstraintViolation.
func (s *SignupService) Register(record *models.SignupRecord) error {
	if err := s.repo.Create(record); err != nil {
		return err
	}
	s.events.record("created", record.ID)
	return nil
}

// List returns every signup record in insertion order.
func (s *SignupService) List() ([]models.SignupRecord, error) {
	return s.repo.GetAll()
}

// Get retrieves a single signup record by its ID.
func (s *SignupService) Get(id uint) (*models.SignupRecord, error) {
	return s.repo.GetByID(id)
}

// Update overwrites a stored record and publishes record.updated.
func (s *SignupService) Update(record *models.SignupRecord) error {
	if err := s.repo.Update(record); err != nil {
		return err
	}
	s.events.record("updated", record.ID)
	return nil
}

// Delete removes a record and publishes record.deleted.
func (s *SignupService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.events.record("deleted", id)
	return nil
}
