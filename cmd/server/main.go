package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/petshop-pix/internal/config"
	"github.com/anyulbade/petshop-pix/internal/database"
	"github.com/anyulbade/petshop-pix/internal/handler"
	"github.com/anyulbade/petshop-pix/internal/metric"
	"github.com/anyulbade/petshop-pix/internal/middleware"
	"github.com/anyulbade/petshop-pix/internal/repository"
	"github.com/anyulbade/petshop-pix/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := handler.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool, cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	metrics := metric.New()

	router := gin.New()
	router.Use(middleware.Logger(metrics))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.SetupSwagger(router)
	setupAPIRoutes(router, pool, metrics, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, metrics *metric.Metrics, cfg *config.Config) {
	settingsRepo := repository.NewSettingsRepository(pool)
	chargeRepo := repository.NewChargeRepository(pool)

	payloadService := service.NewPayloadService(metrics, cfg.BatchConcurrency)
	settingsService := service.NewSettingsService(settingsRepo)
	chargeService := service.NewChargeService(chargeRepo, settingsService, payloadService)

	pixHandler := handler.NewPixHandler(payloadService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	chargeHandler := handler.NewChargeHandler(chargeService)

	api := router.Group("/api/v1")
	{
		api.POST("/pix/payload", pixHandler.Encode)
		api.POST("/pix/payload/batch", pixHandler.EncodeBatch)
		api.POST("/pix/decode", pixHandler.Decode)
		api.GET("/settings/pix", settingsHandler.Get)
		api.PUT("/settings/pix", settingsHandler.Update)
		api.POST("/charges", chargeHandler.Create)
		api.GET("/charges", chargeHandler.List)
		api.GET("/charges/:id", chargeHandler.Get)
		api.PATCH("/charges/:id/status", chargeHandler.UpdateStatus)
	}
}
