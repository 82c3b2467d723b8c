package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sasank-456/blogpage-be/internal/repositories"
	"github.com/sasank-456/blogpage-be/internal/session"
)

// UserIDKey is the context key under which the gate stores the
// authenticated user's ID.
type contextKey string

const UserIDKey = contextKey("userID")

// UserIDFromContext returns the authenticated user ID set by the gate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// SessionMiddleware creates the access gate for protected routes. It
// resolves the session cookie and confirms the referenced account still
// exists; anything short of that redirects to the login entry point.
// The redirect is deliberate: unauthenticated visitors are sent back to
// "/", never shown a distinguishable error.
func SessionMiddleware(sessions session.Manager, users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			if _, err := users.FindByID(r.Context(), sess.UserID); err != nil {
				// The account behind this session is gone; the token
				// is dead weight from here on.
				if destroyErr := sessions.Destroy(r.Context(), cookie.Value); destroyErr != nil {
					log.Warn().Err(destroyErr).Msg("Failed to destroy orphaned session")
				}
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
