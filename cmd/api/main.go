package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"numero-bot/internal/config"
	"numero-bot/internal/db"
	apihttp "numero-bot/internal/http"
	"numero-bot/internal/interpret"
	"numero-bot/internal/numerology"
	"numero-bot/internal/repository"
	"numero-bot/internal/service"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	reportRepo := repository.NewPgReportRepository(pool)
	subscriptionRepo := repository.NewPgSubscriptionRepository(pool)

	var interpreter interpret.Interpreter = interpret.NewDisabled("interpreter not configured")
	if cfg.UseInterpreter {
		interpreter = interpret.NewHTTPClient(
			cfg.InterpretBaseURL,
			time.Duration(cfg.InterpretTimeoutSeconds)*time.Second,
			logger,
		)
	}

	var cache service.InterpretationCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisInterpretationCache(
				redisClient,
				time.Duration(cfg.InterpretCacheTTLHours)*time.Hour,
			)
		}
		cancel()
	}

	// En modo de prueba cada cálculo deja su volcado en disco.
	var dumper *numerology.Dumper
	if cfg.TestMode {
		dumper = numerology.NewDumper(cfg.CalculationsDir, logger)
	}

	authSvc := service.NewAuthService(
		cfg.APIClientID,
		cfg.APIClientSecretHash,
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	profileSvc := service.NewProfileService(profileRepo, dumper, logger)
	reportSvc := service.NewReportService(interpreter, cache, reportRepo, dumper, cfg.ReportsDir, logger)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, profileRepo, interpreter, logger)

	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	userHandler := apihttp.NewUserHandler(logger, userRepo)
	numerologyHandler := apihttp.NewNumerologyHandler(logger, profileSvc)
	reportHandler := apihttp.NewReportHandler(logger, reportSvc)
	subscriptionHandler := apihttp.NewSubscriptionHandler(logger, subscriptionSvc)
	router := apihttp.NewRouter(logger, authSvc, authHandler, userHandler, numerologyHandler, reportHandler, subscriptionHandler)

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
