package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sasank-456/blogpage-be/internal/api/handlers"
	"github.com/sasank-456/blogpage-be/internal/auth"
	"github.com/sasank-456/blogpage-be/internal/repositories"
	"github.com/sasank-456/blogpage-be/internal/services"
	"github.com/sasank-456/blogpage-be/internal/session"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, postService services.PostServiceProvider, sessions session.Manager, users repositories.UserRepository, sessionTTL time.Duration, appEnv string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessions, sessionTTL, appEnv)
	postHandler := handlers.NewPostHandler(postService)

	// Anonymous entry points
	r.Get("/", authHandler.Root)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	// Everything below the gate requires a valid session. The gate runs
	// before any handler body, reads and writes alike.
	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware(sessions, users))

		r.Get("/index", postHandler.Index)
		r.Get("/wishlist", postHandler.Wishlist)
		r.Get("/new", postHandler.NewForm)
		r.Post("/new", postHandler.Create)
		r.Get("/posts/{id}", postHandler.Get)
		r.Post("/delete/{id}", postHandler.Delete)
	})

	return r
}
