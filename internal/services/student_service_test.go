package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"chai/internal/models"
	"chai/internal/repositories"
	"chai/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStudentService_GetAllStudents(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	service := services.NewStudentService(mockRepo, nil, quietLogger())

	expected := []models.Student{
		{ID: 1, Name: "Alice Johnson", Age: 20, Email: "alice@example.com"},
		{ID: 2, Name: "Bob Smith", Age: 22, Email: "bob@example.com"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	students, err := service.GetAllStudents()

	assert.NoError(t, err)
	assert.Equal(t, expected, students)
	mockRepo.AssertExpectations(t)
}

func TestStudentService_GetStudentByID(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	service := services.NewStudentService(mockRepo, nil, quietLogger())

	expected := &models.Student{ID: 1, Name: "Alice Johnson", Age: 20, Email: "alice@example.com"}
	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	student, err := service.GetStudentByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, student)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("student with ID 99: %w", repositories.ErrNotFound)).Once()
	student, err = service.GetStudentByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, student)
	mockRepo.AssertExpectations(t)
}

func TestStudentService_CreateStudent_PublishesEvent(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	publisher := new(MockPublisher)
	service := services.NewStudentService(mockRepo, publisher, quietLogger())

	student := &models.Student{Name: "Carol Davis", Age: 19, Email: "carol@example.com"}
	mockRepo.On("Create", student).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Student).ID = 7
	}).Return(nil).Once()

	var published models.RecordEvent
	publisher.On("Publish", "record.created", mock.AnythingOfType("[]uint8")).Run(func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &published))
	}).Return(nil).Once()

	require.NoError(t, service.CreateStudent(student))
	assert.Equal(t, "student", published.Entity)
	assert.Equal(t, "created", published.Action)
	assert.Equal(t, uint(7), published.RecordID)
	assert.NotEmpty(t, published.ID)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStudentService_CreateStudent_Duplicate(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	publisher := new(MockPublisher)
	service := services.NewStudentService(mockRepo, publisher, quietLogger())

	student := &models.Student{Name: "Dup", Age: 30, Email: "alice@example.com"}
	mockRepo.On("Create", student).Return(repositories.ErrConstraintViolation).Once()

	err := service.CreateStudent(student)
	assert.ErrorIs(t, err, repositories.ErrConstraintViolation)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestStudentService_PublishFailureDoesNotFail(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	publisher := new(MockPublisher)
	service := services.NewStudentService(mockRepo, publisher, quietLogger())

	mockRepo.On("Delete", uint(3)).Return(nil).Once()
	publisher.On("Publish", "record.deleted", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	assert.NoError(t, service.DeleteStudent(3))
	publisher.AssertExpectations(t)
}

func TestStudentService_UpdateStudent(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	service := services.NewStudentService(mockRepo, nil, quietLogger())

	updated := &models.Student{ID: 1, Name: "Alice J.", Age: 21, Email: "alice@example.com"}
	mockRepo.On("Update", updated).Return(nil).Once()
	assert.NoError(t, service.UpdateStudent(updated))

	missing := &models.Student{ID: 42, Name: "Nobody"}
	mockRepo.On("Update", missing).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.UpdateStudent(missing), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestStudentService_SearchStudents(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	service := services.NewStudentService(mockRepo, nil, quietLogger())

	age := 20
	expected := []models.Student{{ID: 1, Name: "Alice Johnson", Age: 20, Email: "alice@example.com"}}
	mockRepo.On("Search", "alice", &age).Return(expected, nil).Once()

	students, err := service.SearchStudents("alice", &age)
	assert.NoError(t, err)
	assert.Equal(t, expected, students)
	mockRepo.AssertExpectations(t)
}

func TestStudentService_ReplaceAll(t *testing.T) {
	mockRepo := new(MockStudentRepository)
	service := services.NewStudentService(mockRepo, nil, quietLogger())

	seed := []models.Student{
		{Name: "Alice Johnson", Age: 20, Email: "alice@example.com"},
		{Name: "Bob Smith", Age: 22, Email: "bob@example.com"},
	}
	mockRepo.On("DeleteAll").Return(int64(4), nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Student")).Return(nil).Twice()

	cleared, err := service.ReplaceAll(seed)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), cleared)
	mockRepo.AssertExpectations(t)
}
