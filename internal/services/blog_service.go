package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"chai/internal/models"
	"chai/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidImage is returned when an uploaded thumbnail is not an image.
var ErrInvalidImage = errors.New("upload a valid image. The file you uploaded was either not an image or a corrupted image")

// BlogService stores blog posts and their thumbnails.
type BlogService struct {
	repo         repositories.BlogPostRepository
	events       recorder
	mediaDir     string
	allowedTypes map[string]bool
}

// NewBlogService creates a BlogService that writes thumbnails below mediaDir.
// allowedTypes lists accepted file extensions including the dot.
func NewBlogService(repo repositories.BlogPostRepository, mediaDir string, allowedTypes []string, publisher EventPublisher, log *logrus.Logger) *BlogService {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, ext := range allowedTypes {
		allowed[strings.ToLower(ext)] = true
	}
	return &BlogService{
		repo:         repo,
		events:       recorder{publisher: publisher, log: log, entity: "blogpost"},
		mediaDir:     mediaDir,
		allowedTypes: allowed,
	}
}

// ListPosts returns every post, oldest first.
func (s *BlogService) ListPosts() ([]models.BlogPost, error) {
	return s.repo.GetAll()
}

// GetPost returns repositories.ErrNotFound for unknown ids.
func (s *BlogService) GetPost(id uint) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

// CreatePost stores the post, first saving thumbnail when one was uploaded.
// A saved file is removed again if the insert fails.
func (s *BlogService) CreatePost(post *models.BlogPost, thumbnail *multipart.FileHeader) error {
	if thumbnail != nil {
		rel, err := s.saveThumbnail(thumbnail)
		if err != nil {
			return err
		}
		post.Thumbnail = rel
	}
	if err := s.repo.Create(post); err != nil {
		if post.Thumbnail != "" {
			_ = os.Remove(filepath.Join(s.mediaDir, filepath.FromSlash(post.Thumbnail)))
		}
		return err
	}
	s.events.record("created", post.ID)
	return nil
}

// saveThumbnail writes the upload to images/<uuid><ext> and returns that
// slash-separated path relative to the media directory.
func (s *BlogService) saveThumbnail(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !s.allowedTypes[ext] {
		return "", ErrInvalidImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", ErrInvalidImage
	}

	rel := path.Join("images", uuid.NewString()+ext)
	dst := filepath.Join(s.mediaDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(head[:n]); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}
	return rel, nil
}
