package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sasank-456/blogpage-be/internal/auth"
	"github.com/sasank-456/blogpage-be/internal/models"
	"github.com/sasank-456/blogpage-be/internal/repositories"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
}

// UserService provides signup and credential verification. Session
// establishment stays in the handler layer: signup never logs the caller
// in, and login only yields the user the session should be bound to.
type UserService struct {
	users repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Signup registers a new account with a hashed password. The caller is
// left unauthenticated; a separate login is required.
func (s *UserService) Signup(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, shared.ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness is enforced by the store's index; a losing concurrent
	// signup surfaces here as ErrDuplicateEmail.
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies a user's credentials. An unknown email and a wrong
// password return the same ErrInvalidCredentials so responses never
// reveal whether an email is registered.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, shared.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return models.User{}, shared.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, shared.ErrInvalidCredentials
	}

	out := *user
	out.PasswordHash = ""
	return out, nil
}
