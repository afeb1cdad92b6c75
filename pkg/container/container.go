package container

import (
	"context"
	"fmt"
	"time"

	"library-catalog/internal/config"
	bookDomain "library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"
	userDomain "library-catalog/internal/domains/user"
	userHandler "library-catalog/internal/domains/user/handler"
	userRepo "library-catalog/internal/domains/user/repository"
	userService "library-catalog/internal/domains/user/service"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/jwt"
	"library-catalog/pkg/logger"
)

// Container holds every dependency of the application, wired in order:
// config -> infrastructure -> repositories -> services -> handlers.
// All components are stateless singletons living for the process lifetime.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo userDomain.Repository
	BookRepo bookDomain.Repository

	AuthService userDomain.Service
	BookService bookDomain.Service

	AuthHandler *userHandler.AuthHandler
	BookHandler *bookHandler.BookHandler
}

// NewContainer builds the full dependency graph. A failure anywhere aborts
// startup; the caller is expected to exit.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	// Redis failure is non-critical: book reads fall through to the database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis connection failed (non-critical)", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TokenExpiry)*time.Minute,
	)

	pool := c.DB.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)

	c.AuthService = userService.NewAuthService(c.UserRepo, c.JWTManager)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)

	c.AuthHandler = userHandler.NewAuthHandler(c.AuthService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
}
