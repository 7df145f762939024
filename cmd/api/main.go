package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "threaddit/docs" // Swagger docs
	"threaddit/internal/auth"
	"threaddit/internal/comment"
	"threaddit/internal/config"
	"threaddit/internal/database"
	"threaddit/internal/email"
	httpServer "threaddit/internal/http"
	"threaddit/internal/logging"
	"threaddit/internal/post"
	"threaddit/internal/ratelimit"
	"threaddit/internal/subreddit"
	"threaddit/internal/user"
	"threaddit/internal/vote"
)

// @title           Threaddit API
// @version         1.0
// @description     A discussion-forum backend: communities, posts, comments, votes, and account lifecycle with email verification.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	db, sqlDB, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), sqlDB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := user.NewRepository(db)
	accountRepo := auth.NewAccountRepository(db)
	tokenRepo := auth.NewTokenRepository(db)
	subredditRepo := subreddit.NewRepository(db)
	postRepo := post.NewRepository(db)
	commentRepo := comment.NewRepository(db)
	voteRepo := vote.NewRepository(db)

	rateLimiter := ratelimit.NewLimiter(redisClient)

	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	emailService := email.NewService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromAddress,
		cfg.Server.PublicURL,
	)

	// Services
	authService := auth.NewService(
		accountRepo,
		userRepo,
		tokenRepo,
		pasetoService,
		emailService,
		logger,
		cfg.Auth.TokenDuration,
	)
	subredditService := subreddit.NewService(subredditRepo)
	postService := post.NewService(postRepo, subredditRepo)
	commentService := comment.NewService(commentRepo, postRepo)
	voteService := vote.NewService(voteRepo)

	// HTTP handlers
	handlers := httpServer.Handlers{
		Auth:      auth.NewHandler(authService, rateLimiter, logger),
		Subreddit: subreddit.NewHandler(subredditService),
		Post:      post.NewHandler(postService),
		Comment:   comment.NewHandler(commentService),
		Vote:      vote.NewHandler(voteService),
	}
	authMiddleware := auth.NewMiddleware(pasetoService)

	router := httpServer.NewRouter(cfg, handlers, authMiddleware, logger)

	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB opens the Postgres connection and wraps it with Bun. The raw sql.DB
// is returned as well because goose migrations run against it directly.
func initDB(cfg config.DatabaseConfig) (*bun.DB, *sql.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), sqlDB, nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
