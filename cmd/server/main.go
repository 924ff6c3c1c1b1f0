package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"boardscout/server/config"
	"boardscout/server/internal/api"
	"boardscout/server/internal/auth"
	"boardscout/server/internal/catalog"
	"boardscout/server/internal/database"
	"boardscout/server/internal/geocoding"
	"boardscout/server/internal/processor"
	"boardscout/server/internal/queue"
	"boardscout/server/internal/resolver"
	"boardscout/server/internal/scheduler"
	"boardscout/server/internal/storage"
	"boardscout/server/internal/telegram"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	logger.Infof("Using database at: %s", cfg.Database.Path)
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Geocoder for imported billboards missing coordinates
	cacheDir := filepath.Join(os.TempDir(), "boardscout", "geocode_cache")
	geocoder := geocoding.NewGeocoder(logger, cacheDir)

	// Lookup chain and defaulting
	synth := resolver.NewSynth()
	completer := resolver.NewCompleter(synth, cfg.Resolver.CompleteOnRead)
	var seedCatalog catalog.Catalog = catalog.Disabled{}
	if cfg.Resolver.EnableSeedCatalog {
		seedCatalog = catalog.NewStatic()
	}
	res := resolver.New(db, seedCatalog, completer, logger,
		time.Duration(cfg.Resolver.StrategyTimeout)*time.Second)

	// Image storage
	var uploader storage.Uploader = storage.LocalNoop{}
	if cfg.Storage.Bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region, logger)
		if err != nil {
			logger.WithError(err).Warn("S3 unavailable, image uploads disabled")
		} else {
			uploader = s3Uploader
		}
	}

	// Batch import pipeline
	gormDB, err := database.OpenGorm(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open batch import connection")
	}
	importQueue := queue.NewBillboardQueue(cfg.BatchImport.MaxBatchSize, logger)
	batchProcessor := processor.NewBatchProcessor(gormDB, importQueue, cfg, logger)
	batchProcessor.Start()
	importQueue.Start()
	defer func() {
		importQueue.Close()
		batchProcessor.Stop()
	}()

	// Periodic maintenance: traffic backfill plus geocoding of imports
	sched := scheduler.NewScheduler(db, geocoder, synth.Pair, logger)
	sched.Start()
	defer sched.Stop()

	// Notifications
	telegramService := telegram.NewService(cfg.Telegram, logger)

	// Auth
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	limiter := auth.NewLoginLimiter(cfg.Auth.RedisAddr, cfg.Auth.LoginAttempts, time.Minute, logger)

	handler := api.NewHandler(db, cfg, res, completer, synth, uploader, importQueue, telegramService, logger)
	authHandler := api.NewAuthHandler(db, issuer, limiter, cfg.Auth.BcryptCost, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(router, handler, authHandler, issuer)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
