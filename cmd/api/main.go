package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"gennova/internal/config"
	"gennova/internal/db"
	"gennova/internal/email"
	apihttp "gennova/internal/http"
	"gennova/internal/llm"
	"gennova/internal/repository"
	"gennova/internal/service"
	"gennova/internal/view"

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

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	kitRepo := repository.NewPgKitRepository(pool)
	phenotypeRepo := repository.NewPgPhenotypeRepository(pool)
	genotypeRepo := repository.NewPgGenotypeRepository(pool)
	articleRepo := repository.NewPgArticleRepository(pool)
	traitRepo := repository.NewPgTraitRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbedModel, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		chatLimiter service.RateLimiter
		tokenStore  service.RefreshTokenStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			chatLimiter = service.NewRedisChatRateLimiter(redisClient, time.Minute, 10)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if chatLimiter == nil {
		chatLimiter = service.NewMemoryRateLimiter(time.Minute, 10)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	mode := view.ParseDataMode(cfg.DataMode)
	userSvc := service.NewUserService(logger, userRepo)
	reportSvc := service.NewReportService(logger, profileRepo, kitRepo, phenotypeRepo, mode)
	geneticsSvc := service.NewGeneticsService(profileRepo, phenotypeRepo, genotypeRepo, traitRepo)
	articleSvc := service.NewArticleService(logger, articleRepo, llmClient)
	assistantSvc := service.NewAssistantService(logger, llmClient, reportSvc, chatLimiter, cfg.LLMAPIKey != "")
	kitSvc := service.NewKitService(logger, kitRepo, profileRepo, userRepo, emailSender)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	reportHandler := apihttp.NewReportHandler(logger, reportSvc, geneticsSvc)
	articleHandler := apihttp.NewArticleHandler(logger, articleSvc)
	assistantHandler := apihttp.NewAssistantHandler(logger, assistantSvc)
	kitHandler := apihttp.NewKitHandler(logger, kitSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, reportHandler, articleHandler, assistantHandler, kitHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("data_mode", string(mode)))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
