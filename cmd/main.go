package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/EleisonC/Auth-Service/config"
	"github.com/EleisonC/Auth-Service/db"
	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	"github.com/EleisonC/Auth-Service/internal/auth/email"
	"github.com/EleisonC/Auth-Service/internal/auth/handler"
	"github.com/EleisonC/Auth-Service/internal/auth/password"
	memoryrepo "github.com/EleisonC/Auth-Service/internal/auth/repository/memory"
	pgrepo "github.com/EleisonC/Auth-Service/internal/auth/repository/postgres"
	redisrepo "github.com/EleisonC/Auth-Service/internal/auth/repository/redis"
	"github.com/EleisonC/Auth-Service/internal/auth/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	hasher := password.NewHasher()
	twoFATTL := time.Duration(cfg.TwoFAExpiryMin) * time.Minute

	// The user store lives in Postgres when DB_URL is set, in memory
	// otherwise. Same split for the two volatile stores and REDIS_ADDR.
	var users domain.UserStore
	if cfg.DBURL != "" {
		if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
			logger.Error("migrations failed", slog.Any("error", err))
			os.Exit(1)
		}

		pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
		if err != nil {
			logger.Error("postgres connection failed", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		users = pgrepo.NewUserStore(pool, hasher)
	} else {
		users = memoryrepo.NewUserStore(hasher)
	}

	var (
		codes  domain.TwoFACodeStore
		banned domain.BannedTokenStore
	)

	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection failed", slog.Any("error", err))
			os.Exit(1)
		}

		codes = redisrepo.NewTwoFACodeStore(client, twoFATTL)
		banned = redisrepo.NewBannedTokenStore(client)
	} else {
		codes = memoryrepo.NewTwoFACodeStore(twoFATTL)
		banned = memoryrepo.NewBannedTokenStore()
	}

	tokenService := service.NewTokenService(cfg.TokenSecret, time.Duration(cfg.TokenExpiryMin)*time.Minute)
	mailer := email.NewLogClient(logger)
	authService := service.NewAuthService(users, codes, banned, tokenService, mailer, logger)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("listening", slog.String("port", cfg.Port), slog.String("env", cfg.Env))

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
