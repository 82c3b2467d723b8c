package session

import (
	"context"
	"sync"
	"time"

	"github.com/sasank-456/blogpage-be/internal/models"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// MemoryStore keeps sessions in an in-process map. Expiry is lazy on Get;
// PurgeExpired exists for the background sweeper so tokens that are never
// presented again do not pile up.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores a new session for the user and returns its token.
func (s *MemoryStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := s.now()
	sess := &models.Session{
		ID:        token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return token, nil
}

// Get resolves a token, treating expired sessions as absent.
func (s *MemoryStore) Get(ctx context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, shared.ErrNotFound
	}
	if sess.Expired(s.now()) {
		// Lazy expiry: drop the record so the map does not grow.
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, shared.ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

// Destroy removes a session. Removing an absent session is a no-op.
func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// PurgeExpired removes every expired session and returns how many went.
func (s *MemoryStore) PurgeExpired(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged, nil
}
