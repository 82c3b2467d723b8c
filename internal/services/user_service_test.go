package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sasank-456/blogpage-be/internal/auth"
	"github.com/sasank-456/blogpage-be/internal/models"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// fakeUserRepo mimics the store-level unique index on email.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return shared.ErrDuplicateEmail
	}
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	out := user
	return &out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			out := user
			return &out, nil
		}
	}
	return nil, shared.ErrNotFound
}

func TestSignupRequiresBothFields(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), "", "pw1")
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Signup(context.Background(), "a@x.com", "")
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Signup(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Empty(t, user.PasswordHash, "the returned user must not carry the hash")

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", stored.PasswordHash)
	require.True(t, auth.CheckPassword("pw1", stored.PasswordHash))
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	// Same email, any password.
	_, err = svc.Signup(context.Background(), "a@x.com", "pw2")
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	created, err := svc.Signup(context.Background(), "b@x.com", "pw1")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "b@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.Empty(t, user.PasswordHash)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), "b@x.com", "pw1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "b@x.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "pw1")

	require.ErrorIs(t, wrongPassword, shared.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, shared.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"login errors must not reveal whether the email is registered")
}

func TestLoginRequiresBothFields(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "b@x.com", "")
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Login(context.Background(), "", "pw1")
	require.ErrorIs(t, err, shared.ErrValidation)
}
