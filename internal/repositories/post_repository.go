package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sasank-456/blogpage-be/internal/models"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// PostRepository defines the data-access contract for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindAll(ctx context.Context) ([]models.Post, error)
	FindAllSorted(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates a MongoDB post repository.
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{collection: db.Collection("posts")}
}

// Create inserts a new post.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindAll retrieves every post in natural order.
func (r *postRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, options.Find())
}

// FindAllSorted retrieves every post, newest first.
func (r *postRepository) FindAllSorted(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, opts)
}

func (r *postRepository) find(ctx context.Context, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// FindByID retrieves a single post by ID.
func (r *postRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

// Delete removes a post. Deleting an absent ID is not an error.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
