package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	httpadapter "ad-exchange/internal/adapter/http"
	"ad-exchange/internal/adapter/memory"
	"ad-exchange/internal/adapter/postgres"
	redisadapter "ad-exchange/internal/adapter/redis"
	"ad-exchange/internal/adapter/usecase"
	"ad-exchange/internal/config"
	"ad-exchange/internal/config/configs"
	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/db"
)

// main is the entry point of the ad exchange service. It loads
// configuration, wires the selected storage backend and the view counter,
// then starts the HTTP server. On receiving a termination signal it stops
// the viewing sessions and gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := newLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		repo     port.AdRepository
		profiles port.ProfileProvider
		counter  port.ViewCounter
	)
	switch cfg.Store.Driver {
	case "memory":
		demoProfiles, campaigns, ads := memory.DemoData()
		pp := memory.NewProfileProvider(demoProfiles...)
		pp.Grant(memory.DemoAdvertiserID, domain.RoleAdmin)
		repo = memory.NewAdRepository(campaigns, ads)
		profiles = pp
		logger.Warn("using in-memory store, changes are lost on restart")
	default:
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo data seeded")
			}
		}
		repo = postgres.NewAdRepository(pool)
		profiles = postgres.NewProfileProvider(pool)
	}

	if cfg.Redis.Enabled {
		rc, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rc.Close()
		counter = redisadapter.NewViewCounter(rc, cfg.Redis.KeyPrefix)
	} else {
		counter = memory.NewViewCounter()
	}

	viewing := usecase.NewViewingUseCase(repo, profiles, counter, logger,
		usecase.WithTiming(usecase.Timing{
			TickInterval: cfg.Viewing.TickInterval,
			ClaimLatency: cfg.Viewing.ClaimLatency,
			AdvanceDelay: cfg.Viewing.AdvanceDelay,
			LoadTimeout:  cfg.Viewing.LoadTimeout,
			SessionTTL:   cfg.Viewing.SessionTTL,
		}),
	)
	go viewing.Run(ctx)

	dashboard := usecase.NewDashboardUseCase(profiles, logger, usecase.RoleCheckTiming{
		Wait:    cfg.Viewing.RoleCheckWait,
		Timeout: cfg.Viewing.RoleCheckTimeout,
		TTL:     cfg.Viewing.RoleCheckTTL,
	})
	go dashboard.Run(ctx)

	auth := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	handler := httpadapter.NewHandler(viewing, dashboard, auth, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver),
			slog.Bool("redis", cfg.Redis.Enabled))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// newLogger builds the structured logger from configuration. When a log
// file is configured, output goes to stdout and to a rotated file.
func newLogger(cfg configs.Logger) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		})
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}
