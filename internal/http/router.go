package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"threaddit/internal/auth"
	"threaddit/internal/comment"
	"threaddit/internal/config"
	"threaddit/internal/httputil"
	"threaddit/internal/logging"
	"threaddit/internal/post"
	"threaddit/internal/subreddit"
	"threaddit/internal/vote"
)

// Handlers bundles the HTTP handlers the router mounts
type Handlers struct {
	Auth      *auth.Handler
	Subreddit *subreddit.Handler
	Post      *post.Handler
	Comment   *comment.Handler
	Vote      *vote.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, handlers Handlers, authMiddleware *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", handlers.Auth.Signup)
		r.Post("/login", handlers.Auth.Login)
		r.Get("/accountVerification/{token}", handlers.Auth.VerifyAccount)
		r.Post("/resendVerification", handlers.Auth.ResendVerification)
	})

	// Forum routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Route("/api/subreddit", func(r chi.Router) {
			r.Post("/", handlers.Subreddit.Create)
			r.Get("/", handlers.Subreddit.List)
			r.Get("/{id}", handlers.Subreddit.Get)
		})

		r.Route("/api/posts", func(r chi.Router) {
			r.Post("/", handlers.Post.Create)
			r.Get("/", handlers.Post.List)
			r.Get("/{id}", handlers.Post.Get)
			r.Get("/by-subreddit/{id}", handlers.Post.ListBySubreddit)
		})

		r.Route("/api/comments", func(r chi.Router) {
			r.Post("/", handlers.Comment.Create)
			r.Get("/by-post/{id}", handlers.Comment.ListByPost)
		})

		r.Post("/api/votes", handlers.Vote.Cast)
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
