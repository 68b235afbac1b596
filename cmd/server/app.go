package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmorrow/taskdeck/internal/cache"
	"github.com/jmorrow/taskdeck/internal/config"
	"github.com/jmorrow/taskdeck/internal/platform/postgres"
	"github.com/jmorrow/taskdeck/internal/service"
	"github.com/jmorrow/taskdeck/internal/service/auth"
	"github.com/jmorrow/taskdeck/internal/store"
)

// application holds the wired dependencies of the running server. The
// cache is created here, at process start, and injected; it never
// persists across restarts.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	taskStore        store.TaskStore
	taskCache        cache.TaskCache
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	taskService      service.TaskService
}

// newApplication wires all application components from the loaded
// configuration and an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var taskCache cache.TaskCache
	if cfg.Cache.Enabled {
		taskCache = cache.NewMemoryCache(cacheTTL)
	} else {
		taskCache = cache.NewNoopCache()
	}

	taskService := service.NewTaskService(taskStore, taskCache, cacheTTL, logger)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		taskStore:        taskStore,
		taskCache:        taskCache,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
		taskService:      taskService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
