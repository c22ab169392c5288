package services

import (
	"mingle/internal/models"
	"mingle/internal/repositories"
)

// PostService handles business logic related to posts.
type PostService struct {
	postRepo  repositories.PostRepository
	integrity *IntegrityChecker
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, integrity *IntegrityChecker) *PostService {
	return &PostService{
		postRepo:  postRepo,
		integrity: integrity,
	}
}

// UpdatePostInput is a partial post update. The owner is immutable, so only
// title and content can change.
type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// GetAllPosts retrieves all posts.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// GetPostsByUserID retrieves every post owned by a user.
func (s *PostService) GetPostsByUserID(userID string) ([]models.Post, error) {
	return s.postRepo.GetByUserID(userID)
}

// CreatePost creates a post after checking that the owning user exists.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := s.integrity.CheckUserReference(post.UserID); err != nil {
		return err
	}
	return s.postRepo.Create(post)
}

// UpdatePost applies a partial update to an existing post.
func (s *PostService) UpdatePost(id string, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. No cascade.
func (s *PostService) DeletePost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return nil, err
	}
	return post, nil
}
