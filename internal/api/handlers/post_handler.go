package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sasank-456/blogpage-be/internal/auth"
	"github.com/sasank-456/blogpage-be/internal/services"
	"github.com/sasank-456/blogpage-be/internal/shared"
)

// PostHandler handles HTTP requests for blog posts. Every route here sits
// behind the session gate.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// PostPayload defines the structure for post creation requests.
type PostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Index lists all posts, newest first.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetRecentPosts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch posts")
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// Wishlist lists all posts in store order.
func (h *PostHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAllPosts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch wishlist")
		http.Error(w, "Error loading wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// NewForm serves the new-post entry point.
func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Submit a title and content to /new")
}

// Create adds a new post and sends the client back to the listing.
// Missing fields send it back to the form instead, mirroring how the
// browser flow behaves.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePost(r)
	if err != nil {
		http.Redirect(w, r, "/new", http.StatusFound)
		return
	}

	post, err := h.service.CreatePost(r.Context(), payload.Title, payload.Content)
	if err != nil {
		if errors.Is(err, shared.ErrValidation) {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		log.Error().Err(err).Str("title", payload.Title).Msg("Failed to create post")
		http.Redirect(w, r, "/new", http.StatusFound)
		return
	}

	userID, _ := auth.UserIDFromContext(r.Context())
	log.Info().Str("post_id", post.ID).Str("title", post.Title).Str("user_id", userID).Msg("New post created")
	http.Redirect(w, r, "/index", http.StatusFound)
}

// Get retrieves a single post by its ID.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to fetch post")
		http.Error(w, "Error loading post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// Delete removes a post and sends the client back to the listing. An
// unknown ID is treated the same as a successful delete.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, _ := auth.UserIDFromContext(r.Context())
	if err := h.service.DeletePost(r.Context(), id); err != nil {
		log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
	} else {
		log.Info().Str("post_id", id).Str("user_id", userID).Msg("Post deleted")
	}
	http.Redirect(w, r, "/index", http.StatusFound)
}

// decodePost accepts both JSON and form-encoded bodies, like
// decodeCredentials.
func decodePost(r *http.Request) (PostPayload, error) {
	var payload PostPayload

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return payload, err
		}
		payload.Title = r.PostForm.Get("title")
		payload.Content = r.PostForm.Get("content")
		return payload, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
