package repositories

import (
	"errors"
	"fmt"

	"mingle/internal/apperrors"
	"mingle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// GetAll returns all posts.
func (r *GORMPostRepository) GetAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a post by its ID.
func (r *GORMPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("post", id)
		}
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	return &post, nil
}

// GetByUserID returns every post owned by a user, empty slice when none.
func (r *GORMPostRepository) GetByUserID(userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts for user %s: %w", userID, err)
	}
	return posts, nil
}

// Create inserts a new post, generating an ID when none was supplied.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update saves an existing post record. UserID is immutable and not touched.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update post %s: %w", post.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("post", post.ID)
	}
	return nil
}

// Delete removes a post by its ID.
func (r *GORMPostRepository) Delete(id string) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("post", id)
	}
	return nil
}
