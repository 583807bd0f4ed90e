package services_test

import (
	"testing"

	"chai/internal/models"
	"chai/internal/repositories"
	"chai/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSignupService_RegisterKeepsValuesUnchanged(t *testing.T) {
	mockRepo := new(MockSignupRepository)
	service := services.NewSignupService(mockRepo, nil, quietLogger())

	record := &models.SignupRecord{Username: " Dependra ", Email: "Dep@Example.com", Password: "secret"}
	mockRepo.On("Create", mock.MatchedBy(func(r *models.SignupRecord) bool {
		return r.Username == " Dependra " && r.Email == "Dep@Example.com" && r.Password == "secret"
	})).Return(nil).Once()

	assert.NoError(t, service.Register(record))
	mockRepo.AssertExpectations(t)
}

func TestSignupService_RegisterDuplicate(t *testing.T) {
	mockRepo := new(MockSignupRepository)
	publisher := new(MockPublisher)
	service := services.NewSignupService(mockRepo, publisher, quietLogger())

	record := &models.SignupRecord{Username: "a", Email: "a@example.com", Password: "p"}
	mockRepo.On("Create", record).Return(repositories.ErrConstraintViolation).Once()

	assert.ErrorIs(t, service.Register(record), repositories.ErrConstraintViolation)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSignupService_UpdateAndDelete(t *testing.T) {
	mockRepo := new(MockSignupRepository)
	publisher := new(MockPublisher)
	service := services.NewSignupService(mockRepo, publisher, quietLogger())

	record := &models.SignupRecord{ID: 5, Username: "b", Email: "b@example.com", Password: "p"}
	mockRepo.On("Update", record).Return(nil).Once()
	mockRepo.On("Delete", uint(5)).Return(nil).Once()
	mockRepo.On("Delete", uint(6)).Return(repositories.ErrNotFound).Once()
	publisher.On("Publish", "record.updated", mock.Anything).Return(nil).Once()
	publisher.On("Publish", "record.deleted", mock.Anything).Return(nil).Once()

	assert.NoError(t, service.Update(record))
	assert.NoError(t, service.Delete(5))
	assert.ErrorIs(t, service.Delete(6), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
