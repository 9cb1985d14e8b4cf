package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/config"
	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/feature/health/metrics"
	healthhandler "auth_backend/internal/feature/health/transport/handler"
	logadapters "auth_backend/internal/feature/logs/adapters"
	"auth_backend/internal/feature/logs/sink"
	loghandler "auth_backend/internal/feature/logs/transport/handler"
	logusecase "auth_backend/internal/feature/logs/usecase"
	platformdb "auth_backend/internal/platform/db"
	jwtmw "auth_backend/internal/platform/jwt"
	platformredis "auth_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Signing-key misconfiguration is fatal, not a per-request failure.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set; refusing to start")
	}

	// Log sink: one instance for the whole process, flushed on shutdown.
	logs, err := sink.New(cfg.LogDir)
	if err != nil {
		log.Fatalf("failed to open log store: %v", err)
	}
	defer func() {
		if err := logs.Close(); err != nil {
			slog.Error("failed to close log store", "error", err)
		}
	}()

	// Credential store
	db, err := platformdb.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if cfg.RunMigrations {
		if err := platformdb.Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}
	if err := platformdb.SeedAdmin(context.Background(), db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Redis (optional, enables the login throttle)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		slog.Warn("redis unavailable, login throttling disabled")
	} else {
		rdb = tmp
		if rdb != nil {
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Token service
	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.JWTExpires)

	// Repositories
	userRepo := authadapters.NewUserGorm(db)
	throttle := authadapters.NewLoginThrottle(rdb, cfg.LoginMaxFailures, cfg.LoginFailureWindow)
	logReader := logadapters.NewLogFileReader(cfg.LogDir)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, throttle)
	logUC := logusecase.NewLogQueryUsecase(logReader)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC, logs)
	logH := loghandler.NewLogHandler(logUC, logs)
	healthH := healthhandler.NewHealthHandler(metrics.NewRuntimeCollector(), logs)

	r := router.New(cfg, logs, tokens, authH, logH, healthH)

	logs.Info("server starting", map[string]any{"port": cfg.Port, "env": cfg.Env})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
