package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sasank-456/blogpage-be/internal/services"
	"github.com/sasank-456/blogpage-be/internal/session"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// AuthHandler handles signup, login, logout, and the login entry point.
type AuthHandler struct {
	service    services.UserServiceProvider
	sessions   session.Manager
	sessionTTL time.Duration
	appEnv     string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, sessions session.Manager, sessionTTL time.Duration, appEnv string) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions, sessionTTL: sessionTTL, appEnv: appEnv}
}

// CredentialsPayload defines the structure for signup and login requests.
type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Root serves the login entry point. A client that is already
// authenticated is sent straight to the post listing instead of being
// shown the login form again.
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if _, err := h.sessions.Get(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, "/index", http.StatusFound)
			return
		}
	}
	writeMessage(w, http.StatusOK, "Please log in")
}

// Signup handles new user registration. A successful signup does not log
// the caller in; a separate login is required.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCredentials(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = h.service.Signup(r.Context(), payload.Email, payload.Password)
	switch {
	case err == nil:
		log.Info().Str("email", payload.Email).Msg("New user registered")
		writeMessage(w, http.StatusOK, "Signup successful")
	case errors.Is(err, shared.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "All fields required")
	case errors.Is(err, shared.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Signup failed")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// Login verifies credentials and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCredentials(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrValidation):
			writeMessage(w, http.StatusBadRequest, "All fields required")
		case errors.Is(err, shared.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed login attempt")
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	// The session must be durably stored before success goes out; a
	// client that looks logged in while the store never recorded the
	// session is the failure mode this branch exists for.
	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to save session")
		if errors.Is(err, shared.ErrSessionPersistence) {
			writeMessage(w, http.StatusInternalServerError, "Session error")
		} else {
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	// Set Secure flag based on environment.
	isProd := h.appEnv == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	log.Info().Str("email", payload.Email).Msg("User logged in")
	writeMessage(w, http.StatusOK, "Login successful")
}

// Logout destroys the current session, if any, and always redirects to
// the login entry point.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			log.Error().Err(err).Msg("Failed to destroy session on logout")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// decodeCredentials accepts both the JSON body the API clients send and
// the form encoding a plain HTML login form submits.
func decodeCredentials(r *http.Request) (CredentialsPayload, error) {
	var payload CredentialsPayload

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return payload, err
		}
		payload.Email = r.PostForm.Get("email")
		payload.Password = r.PostForm.Get("password")
		return payload, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
