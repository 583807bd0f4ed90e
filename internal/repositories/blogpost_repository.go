package repositories

import (
	"chai/internal/models"

	"gorm.io/gorm"
)

// BlogPostRepository defines the interface for blog post data access.
// Posts are never edited or removed through the site.
type BlogPostRepository interface {
	GetAll() ([]models.BlogPost, error)
	GetByID(id uint) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
}

// GORMBlogPostRepository is a GORM implementation of BlogPostRepository.
type GORMBlogPostRepository struct {
	gormRepository[models.BlogPost]
}

// NewGORMBlogPostRepository creates a new instance of GORMBlogPostRepository.
func NewGORMBlogPostRepository(db *gorm.DB) *GORMBlogPostRepository {
	return &GORMBlogPostRepository{
		gormRepository: gormRepository[models.BlogPost]{db: db, entity: "blog post"},
	}
}

// GetAll returns every post, oldest first.
func (r *GORMBlogPostRepository) GetAll() ([]models.BlogPost, error) { return r.all() }

// GetByID returns ErrNotFound when no post has the given ID.
func (r *GORMBlogPostRepository) GetByID(id uint) (*models.BlogPost, error) { return r.byID(id) }

// Create inserts post and sets its ID.
func (r *GORMBlogPostRepository) Create(post *models.BlogPost) error { return r.create(post) }
