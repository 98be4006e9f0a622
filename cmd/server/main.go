package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"neuralpulse/internal/config"
	"neuralpulse/internal/gateway"
	"neuralpulse/internal/handler"
	"neuralpulse/internal/infrastructure/database"
	"neuralpulse/internal/logger"
	"neuralpulse/internal/metrics"
	"neuralpulse/internal/middleware"
	"neuralpulse/internal/repository"
	"neuralpulse/internal/service"
	"neuralpulse/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Storage gateway shared by all repositories
	gw := gateway.New(pool, gateway.Config{
		RetryAttempts: cfg.GatewayRetryAttempts,
		RetryBackoff:  cfg.GatewayRetryBackoff,
	})

	// Initialize validator
	v := validator.NewValidator()

	// Initialize repositories
	articleRepo := repository.NewGatewayArticleRepository(gw, v)
	subscriberRepo := repository.NewGatewaySubscriberRepository(gw, v)
	categoryRepo := repository.NewGatewayCategoryRepository(gw, v)
	analyticsRepo := repository.NewGatewayAnalyticsRepository(gw)

	// Initialize services
	dashboardService := service.NewDashboardService(articleRepo, subscriberRepo)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleRepo, analyticsRepo)
	subscriberHandler := handler.NewSubscriberHandler(subscriberRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/slug/:slug", articleHandler.GetBySlug)
			articles.GET("/:id", articleHandler.GetByID)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/views", articleHandler.RecordView)
		}

		subscribers := v1.Group("/subscribers")
		{
			subscribers.GET("", subscriberHandler.List)
			subscribers.POST("", subscriberHandler.Create)
			subscribers.PUT("/:id", subscriberHandler.UpdateStatus)
			subscribers.DELETE("/:id", subscriberHandler.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/views", analyticsHandler.RecentViews)
			analytics.GET("/top", analyticsHandler.TopArticles)
		}

		v1.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
