package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shenikar/safety_map/internal/alert"
	"github.com/shenikar/safety_map/internal/auth"
	"github.com/shenikar/safety_map/internal/config"
	v1 "github.com/shenikar/safety_map/internal/handler/http/v1"
	"github.com/shenikar/safety_map/internal/metrics"
	"github.com/shenikar/safety_map/internal/repository"
	"github.com/shenikar/safety_map/internal/routing"
	"github.com/shenikar/safety_map/internal/service"
	"github.com/shenikar/safety_map/pkg/logger"
	"github.com/shenikar/safety_map/pkg/postgres"
	redisclient "github.com/shenikar/safety_map/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Map API
// @version 1.0
// @description Community safety API: area risk, safest routes, reports, ratings and SOS alerts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics, err := metrics.New(registry)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Издатель оповещений и воркер доставки
	alertPublisher := alert.NewRedisAlertPublisher(redisClient)

	var sender alert.Sender
	if cfg.AlertSMTPURL != "" {
		emailSender, err := alert.NewEmailSender(cfg.AlertSMTPURL)
		if err != nil {
			log.Fatalf("Failed to configure alert email: %v", err)
		}
		sender = emailSender
	} else {
		log.Warn("ALERT_SMTP_URL is not set, alert emails are disabled")
	}

	alertWorker := alert.NewAlertWorker(redisClient, sender, log, cfg, appMetrics)
	alertWorker.Start(ctx)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool, redisClient)
	reportRepo := repository.NewReportRepository(dbpool)
	ratingRepo := repository.NewRatingRepository(dbpool)
	signalRepo := repository.NewSignalRepository(dbpool)
	snapshotRepo := repository.NewSnapshotRepository(dbpool)
	volunteerRepo := repository.NewVolunteerRepository(dbpool)
	placeRepo := repository.NewPlaceRepository(dbpool)
	checkinRepo := repository.NewCheckinRepository(dbpool)

	routingClient := routing.NewClient(cfg, appMetrics)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Инициализация сервисов
	services := v1.Services{
		Risk:       service.NewRiskService(signalRepo, snapshotRepo, routingClient, log, appMetrics, cfg.RouteSampleConcurrency),
		Reports:    service.NewReportService(reportRepo, userRepo, alertPublisher, log),
		Ratings:    service.NewRatingService(ratingRepo, signalRepo, log),
		SOS:        service.NewSOSService(userRepo, volunteerRepo, alertPublisher, log),
		Auth:       service.NewAuthService(userRepo, volunteerRepo, tokens, log),
		Places:     service.NewPlaceService(placeRepo, log),
		Volunteers: service.NewVolunteerService(volunteerRepo, log),
		Checkins:   service.NewCheckinService(checkinRepo, log),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, tokens, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-API-Key")
		router.Use(cors.New(corsCfg))
	}
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
