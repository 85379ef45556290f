package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"class-finder/internal/config"
	apihttp "class-finder/internal/http"
	"class-finder/internal/repository"
	"class-finder/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("entity source", zap.Error(err))
	}
	defer closeStore()

	entities, err := store.List(ctx)
	if err != nil {
		logger.Fatal("load entities", zap.Error(err), zap.String("source", cfg.EntitySource))
	}
	logger.Info("entities loaded", zap.Int("count", len(entities)), zap.String("source", cfg.EntitySource))

	sessionStore := service.NewMemorySessionStore()
	var limiter service.RateLimiter
	if cfg.SessionRateLimit > 0 {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.SessionRateLimit)
	}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory sessions", zap.Error(err))
		} else {
			sessionStore = service.NewRedisSessionStore(redisClient)
			if cfg.SessionRateLimit > 0 {
				limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.SessionRateLimit)
			}
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.APIJWTSecret, cfg.APIJWTTTL())
	if !jwtSvc.Enabled() {
		logger.Warn("jwt secret not configured, session routes are open")
	}

	narrowingSvc := service.NewNarrowingService(logger, nil, cfg.MaxAnswers)
	sessionSvc := service.NewSessionService(logger, narrowingSvc, sessionStore, entities, cfg.SessionTTL())
	sessionHandler := apihttp.NewSessionHandler(logger, sessionSvc)
	router := apihttp.NewRouter(logger, sessionHandler, jwtSvc, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
