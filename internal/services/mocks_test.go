package services_test

import (
	"io"

	"chai/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockStudentRepository is a mock implementation of repositories.StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) GetAll() ([]models.Student, error) {
	args := m.Called()
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByID(id uint) (*models.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) Create(student *models.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) Update(student *models.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStudentRepository) Search(query string, age *int) ([]models.Student, error) {
	args := m.Called(query, age)
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentRepository) DeleteAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockSignupRepository is a mock implementation of repositories.SignupRepository
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) GetAll() ([]models.SignupRecord, error) {
	args := m.Called()
	return args.Get(0).([]models.SignupRecord), args.Error(1)
}

func (m *MockSignupRepository) GetByID(id uint) (*models.SignupRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupRecord), args.Error(1)
}

func (m *MockSignupRepository) Create(record *models.SignupRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockSignupRepository) Update(record *models.SignupRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockSignupRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBlogPostRepository is a mock implementation of repositories.BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) GetAll() ([]models.BlogPost, error) {
	args := m.Called()
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) GetByID(id uint) (*models.BlogPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Create(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, body []byte) error {
	args := m.Called(eventType, body)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
