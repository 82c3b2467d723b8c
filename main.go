package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sasank-456/blogpage-be/internal/api"
	"github.com/sasank-456/blogpage-be/internal/config"
	"github.com/sasank-456/blogpage-be/internal/database"
	"github.com/sasank-456/blogpage-be/internal/logger"
	"github.com/sasank-456/blogpage-be/internal/monitoring"
	"github.com/sasank-456/blogpage-be/internal/repositories"
	"github.com/sasank-456/blogpage-be/internal/services"
	"github.com/sasank-456/blogpage-be/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.AppEnv)

	// Set up the document store
	client, db, err := database.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer database.Disconnect(client)
	log.Info().Str("database", cfg.MongoDB).Msg("MongoDB connected")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}
	cancel()

	// Set up the session store
	var sessions session.Manager
	var sweeper *monitoring.SessionSweeper

	switch cfg.SessionStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("Redis session store ready")
	default:
		store := session.NewMemoryStore(cfg.SessionTTL)
		sessions = store

		sweeper, err = monitoring.NewSessionSweeper(store, cfg.SweepSpec)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to set up session sweeper")
		}
		go sweeper.Run()
	}

	// Set up repositories and services
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)

	// Set up router
	router := api.NewRouter(userService, postService, sessions, userRepo, cfg.SessionTTL, cfg.AppEnv)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
