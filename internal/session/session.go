// Package session manages server-side sessions. Clients hold only the
// opaque token; the record binding it to a user lives in the backing
// store, which is swappable (in-memory or Redis) behind Manager.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/sasank-456/blogpage-be/internal/models"
)

// CookieName is the name of the cookie carrying the session token.
const CookieName = "blog_session"

// Manager is the contract the access gate and the auth handlers depend on.
type Manager interface {
	// Create stores a new session for the user and returns its token.
	// It returns only after the backing store acknowledged the write.
	Create(ctx context.Context, userID string) (string, error)

	// Get resolves a token. Unknown and expired tokens both yield
	// shared.ErrNotFound.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Destroy removes a session. Destroying an absent session is not
	// an error.
	Destroy(ctx context.Context, token string) error
}

// newToken returns a cryptographically unguessable session token.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
