package services_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chai/internal/models"
	"chai/internal/repositories"
	"chai/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent GIF.
var tinyGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("thumbnail", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["thumbnail"][0]
}

func TestBlogService_CreatePostWithThumbnail(t *testing.T) {
	mediaDir := t.TempDir()
	mockRepo := new(MockBlogPostRepository)
	service := services.NewBlogService(mockRepo, mediaDir, []string{".gif", ".png"}, nil, quietLogger())

	post := &models.BlogPost{Title: "Hello", Post: "First post"}
	mockRepo.On("Create", post).Return(nil).Once()

	require.NoError(t, service.CreatePost(post, fileHeader(t, "pixel.GIF", tinyGIF)))
	assert.True(t, strings.HasPrefix(post.Thumbnail, "images/"))
	assert.True(t, strings.HasSuffix(post.Thumbnail, ".gif"))

	saved, err := os.ReadFile(filepath.Join(mediaDir, filepath.FromSlash(post.Thumbnail)))
	require.NoError(t, err)
	assert.Equal(t, tinyGIF, saved)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_CreatePostWithoutThumbnail(t *testing.T) {
	mockRepo := new(MockBlogPostRepository)
	service := services.NewBlogService(mockRepo, t.TempDir(), []string{".gif"}, nil, quietLogger())

	post := &models.BlogPost{Title: "Plain", Post: "No image"}
	mockRepo.On("Create", post).Return(nil).Once()

	require.NoError(t, service.CreatePost(post, nil))
	assert.Empty(t, post.Thumbnail)
}

func TestBlogService_RejectsNonImages(t *testing.T) {
	mockRepo := new(MockBlogPostRepository)
	service := services.NewBlogService(mockRepo, t.TempDir(), []string{".gif", ".png"}, nil, quietLogger())

	err := service.CreatePost(&models.BlogPost{Title: "x", Post: "y"}, fileHeader(t, "notes.txt", []byte("hello")))
	assert.ErrorIs(t, err, services.ErrInvalidImage)

	err = service.CreatePost(&models.BlogPost{Title: "x", Post: "y"}, fileHeader(t, "fake.png", []byte("plain text, not a png")))
	assert.ErrorIs(t, err, services.ErrInvalidImage)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBlogService_RemovesThumbnailWhenInsertFails(t *testing.T) {
	mediaDir := t.TempDir()
	mockRepo := new(MockBlogPostRepository)
	service := services.NewBlogService(mockRepo, mediaDir, []string{".gif"}, nil, quietLogger())

	post := &models.BlogPost{Title: "Broken", Post: "db down"}
	mockRepo.On("Create", post).Return(assert.AnError).Once()

	assert.Error(t, service.CreatePost(post, fileHeader(t, "pixel.gif", tinyGIF)))
	entries, err := os.ReadDir(filepath.Join(mediaDir, "images"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBlogService_GetPost(t *testing.T) {
	mockRepo := new(MockBlogPostRepository)
	service := services.NewBlogService(mockRepo, t.TempDir(), nil, nil, quietLogger())

	mockRepo.On("GetByID", uint(9)).Return(nil, repositories.ErrNotFound).Once()
	_, err := service.GetPost(9)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
