package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frontridge/frontridge-api/internal/api"
	"github.com/frontridge/frontridge-api/internal/core/ports"
	mongodb "github.com/frontridge/frontridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/frontridge/frontridge-api/internal/infrastructure/db/redis"
	"github.com/frontridge/frontridge-api/internal/infrastructure/mail"
	"github.com/frontridge/frontridge-api/internal/infrastructure/storage"
	"github.com/frontridge/frontridge-api/internal/pkg/config"
	"github.com/frontridge/frontridge-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	hadSecret := cfg.SessionSecret != ""
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if !hadSecret {
		log.Warn().Msg("SESSION_SECRET not set, using the development signing secret")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewWorkRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure mongodb indexes")
	}

	var rdb *redis.Client
	if cfg.CacheBackend == "redis" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
	}

	var imageStorage ports.ImageStorage
	if cfg.S3.Configured() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage initialisation failed")
		}
		imageStorage = s3Storage
	} else {
		log.Warn().Msg("object storage not configured, image uploads disabled")
	}

	var mailer ports.Mailer
	if cfg.SMTP.Configured() {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("smtp not configured, contact form disabled")
	}

	e := api.NewRouter(cfg, db, rdb, imageStorage, mailer, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
