package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-service/config"
	"github.com/fekuna/omnipos-retail-service/internal/database"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/entity/redisstore"
	"github.com/fekuna/omnipos-retail-service/internal/entity/sqlstore"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func openBackend(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (entity.Backend, error) {
	switch cfg.Storage.Driver {
	case "memory", "":
		log.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil

	case "sqlite":
		db, err := database.NewSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		store := sqlstore.NewStore(db, sqlstore.SQLite)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("Opened SQLite database", zap.String("path", cfg.SQLite.Path))
		return store, nil

	case "postgres":
		db, err := database.NewPostgres(ctx, &database.PostgresConfig{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: secondsOf(cfg.Postgres.ConnMaxLifetime),
			ConnMaxIdleTime: secondsOf(cfg.Postgres.ConnMaxIdleTime),
		})
		if err != nil {
			return nil, err
		}
		store := sqlstore.NewStore(db, sqlstore.Postgres)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		return store, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr), zap.String("prefix", cfg.Redis.KeyPrefix))
		return redisstore.NewStore(client, cfg.Redis.KeyPrefix), nil
	}
	return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
}

func secondsOf(n int) time.Duration { return time.Duration(n) * time.Second }
