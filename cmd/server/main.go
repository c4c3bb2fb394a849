package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"milletsurvey/internal/cache"
	"milletsurvey/internal/catalog"
	"milletsurvey/internal/config"
	"milletsurvey/internal/logger"
	"milletsurvey/internal/repository"
	"milletsurvey/internal/service"
	"milletsurvey/internal/transport/rest"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zl.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	zl.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zl.Fatal("failed to ping Redis", zap.Error(err))
	}
	zl.Info("connected to Redis")

	// Question catalog, validated at startup
	questionCatalog := catalog.Default()
	zl.Info("question catalog loaded", zap.Int("questions", questionCatalog.Len()))

	// Repositories and caches
	responseRepo := repository.NewResponseRepo(db)
	draftCache := cache.NewDraftCache(rdb, cfg.DraftTTL)
	snapshotCache := cache.NewSnapshotCache(rdb, cfg.SnapshotTTL)

	// Services
	authSvc := service.NewAuthService(cfg.AccessCode, cfg.JWTSecret)
	interviewSvc := service.NewInterviewService(questionCatalog, responseRepo, draftCache, cfg.Enumerator, zl)
	analyticsSvc := service.NewAnalyticsService(responseRepo, snapshotCache, questionCatalog, cfg.ChallengeKeywords, zl)
	reportSvc := service.NewReportService(responseRepo, questionCatalog)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		AnalyticsService: analyticsSvc,
		ReportService:    reportSvc,
		ResponseRepo:     responseRepo,
		Catalog:          questionCatalog,
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		Logger:           zl,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exited")
}
