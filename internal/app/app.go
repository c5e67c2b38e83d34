// Package app wires configuration, adapters, services and the HTTP surface
// into a running server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/roleplay-admin/internal/adapter/catalog"
	"github.com/heartmarshall/roleplay-admin/internal/adapter/postgres"
	"github.com/heartmarshall/roleplay-admin/internal/adapter/postgres/roleplaylang"
	"github.com/heartmarshall/roleplay-admin/internal/auth"
	"github.com/heartmarshall/roleplay-admin/internal/config"
	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/notify"
	"github.com/heartmarshall/roleplay-admin/internal/service/admin"
	authsvc "github.com/heartmarshall/roleplay-admin/internal/service/auth"
	"github.com/heartmarshall/roleplay-admin/internal/service/composer"
	"github.com/heartmarshall/roleplay-admin/internal/transport/middleware"
	"github.com/heartmarshall/roleplay-admin/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the document store, builds every service and serves HTTP until ctx ends.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("catalog_url", cfg.Catalog.APIURL),
		slog.String("public_url", cfg.Catalog.BaseURL),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	roleplays, err := roleplaylang.New(pool, logger, cfg.Database.CollectionName, cfg.Database.LanguagesTable)
	if err != nil {
		return err
	}
	if err := roleplays.CheckTables(ctx); err != nil {
		return err
	}

	client := catalog.NewClient(cfg.Catalog.APIURL, cfg.Catalog.Timeout, logger)

	queue := notify.NewQueue(cfg.Notify.TTL, logger)
	defer queue.Close()

	lock := admin.NewScrollLock(func(locked bool) {
		logger.Debug("scroll lock changed", slog.Bool("locked", locked))
	})
	console := admin.NewService(logger, client, catalog.NewLoader(client, logger), queue, lock)

	registry := composer.NewRegistry(func(roleplayID string) *composer.Composer {
		return composer.New(logger, roleplayID, client, catalog.NewLoader(client, logger), queue,
			composer.WithDuration(cfg.Composer.DefaultDuration),
			composer.WithOnSaved(func(sel domain.TagSelection) {
				logger.Info("roleplay activity saved",
					slog.String("roleplay_id", roleplayID),
					slog.String("language", sel.Language),
					slog.Int("themes", len(sel.Themes)),
				)
			}),
		)
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(roleplays, client, BuildVersion()),
		Roleplays:     rest.NewRoleplayHandler(roleplays, logger),
		Catalog:       rest.NewCatalogRoleplayHandler(client, logger),
		Tags:          rest.NewTagHandler(client, logger),
		Auth:          rest.NewAuthHandler(authService, logger),
		Console:       rest.NewConsoleHandler(console, logger),
		Activity:      rest.NewActivityHandler(registry, logger),
		Notifications: rest.NewNotificationHandler(queue),
	},
		middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
		),
		limiter.Limit(cfg.Auth.LoginPerMinute),
	)

	return serve(ctx, logger, cfg.Server, router)
}
