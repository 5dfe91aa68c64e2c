package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
	"github.com/yeonjae/fortune-calendar/internal/infra/calendarstore"
	"github.com/yeonjae/fortune-calendar/internal/infra/config"
	"github.com/yeonjae/fortune-calendar/internal/infra/pillars"
	"github.com/yeonjae/fortune-calendar/internal/infra/profilerepo"
)

func provideCalendarConfig(cfg *config.Config) calendar.Config {
	return calendar.Config{
		Workers:         cfg.Calendar.Workers,
		CacheTTL:        cfg.Calendar.CacheTTL,
		DefaultMinGrade: cfg.Calendar.DefaultMinGrade,
		DefaultLimit:    cfg.Calendar.DefaultLimit,
	}
}

func providePillarSource(cfg *config.Config, logger *slog.Logger) calendar.PillarSource {
	if cfg.Pillars.BaseURL == "" {
		logger.Info("pillars base url not set, using static source")
		return pillars.NewStaticSource()
	}
	logger.Info("pillars relation engine enabled", "baseUrl", cfg.Pillars.BaseURL)
	return pillars.NewClient(cfg.Pillars.BaseURL, cfg.Pillars.Timeout)
}

func provideCalendarCache(cfg *config.Config, logger *slog.Logger) calendar.Cache {
	if cfg.Valkey.Enabled {
		opt := valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return calendarstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey calendar cache enabled", "addr", cfg.Valkey.Addr)
			return calendarstore.NewValkeyStore(client, "calendar")
		}
	}
	return calendarstore.NewMemoryStore()
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) profile.Repository {
	fallback := profilerepo.NewMemoryRepository()
	if cfg.Postgres.DSN == "" {
		logger.Info("postgres dsn not set, using memory profile repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.DSN)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory profile repository", "error", err)
		return fallback
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory profile repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory profile repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres profile repository enabled")
	return profilerepo.NewPostgresRepository(pool)
}
