package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sasank-456/blogpage-be/internal/models"
	"github.com/sasank-456/blogpage-be/internal/repositories"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	CreatePost(ctx context.Context, title, content string) (models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetRecentPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// PostService provides business logic for blog post management.
type PostService struct {
	posts repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// CreatePost creates a new post. Title and content are both required.
func (s *PostService) CreatePost(ctx context.Context, title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, shared.ErrValidation
	}

	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// GetAllPosts retrieves every post in store order.
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

// GetRecentPosts retrieves every post, newest first.
func (s *PostService) GetRecentPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAllSorted(ctx)
}

// GetPost retrieves a single post by ID.
func (s *PostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	return *post, nil
}

// DeletePost removes a post by ID. An absent ID is not an error.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
