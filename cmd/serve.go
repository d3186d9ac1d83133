package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Geezkick/NjiaSafe-Drive/docs"
	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	v1 "github.com/Geezkick/NjiaSafe-Drive/internal/handler/http/v1"
	"github.com/Geezkick/NjiaSafe-Drive/internal/provider"
	"github.com/Geezkick/NjiaSafe-Drive/internal/realtime"
	"github.com/Geezkick/NjiaSafe-Drive/internal/repository"
	"github.com/Geezkick/NjiaSafe-Drive/internal/scheduler"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
	"github.com/Geezkick/NjiaSafe-Drive/internal/simulation"
	"github.com/Geezkick/NjiaSafe-Drive/internal/stream"
	"github.com/Geezkick/NjiaSafe-Drive/internal/webhook"
	"github.com/Geezkick/NjiaSafe-Drive/pkg/logger"
	"github.com/Geezkick/NjiaSafe-Drive/pkg/postgres"
	redisclient "github.com/Geezkick/NjiaSafe-Drive/pkg/redis"
)

func newServeCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on start")
	return cmd
}

func serve(skipMigrations bool) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !skipMigrations {
		if err := runMigrations(cfg, log); err != nil {
			return err
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	sim := simulation.New(time.Now().UnixNano())
	cache := repository.NewRedisCache(redisClient)
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	hub := realtime.NewHub(redisClient, sim, cfg.V2VStatusInterval, log)

	// Репозитории
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	v2vRepo := repository.NewV2VRepository(dbpool)
	securityRepo := repository.NewSecurityRepository(dbpool)
	socialRepo := repository.NewSocialRepository(dbpool)

	// Сервисы
	securityService := service.NewSecurityService(securityRepo, newStreamer(ctx, cfg, log), webhookPublisher, log)
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, webhookPublisher, securityService)
	planService := service.NewPlanService(userRepo, log, cfg)
	weatherService := service.NewWeatherService(weatherProviders(cfg), cache, incidentService, log, cfg)
	geocodingService := service.NewGeocodingService(
		provider.NewNominatim(cfg.NominatimURL, cfg.HTTPClientTimeout, cfg.UserAgent), cache, log, cfg)
	trafficService := service.NewTrafficService(sim, cfg)
	v2vService := service.NewV2VService(v2vRepo, planService, hub, sim, log)
	navigationService := service.NewNavigationService(
		planService,
		geocodingService,
		router(cfg),
		provider.NewOverpass(cfg.OverpassURL, cfg.HTTPClientTimeout, cfg.UserAgent),
		incidentRepo,
		sim,
		log,
		cfg,
	)
	socialService := service.NewSocialService(socialRepo, planService, log)
	dashboardService := service.NewDashboardService(weatherService, incidentService, trafficService, v2vService, log, cfg)

	// Фоновые задачи
	webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	go scheduler.NewScheduler(socialService, cfg.SchedulerInterval, log).Start(ctx)
	go hub.Run(ctx)

	// Хэндлеры
	handler := v1.NewHandler(v1.Services{
		Incidents:  incidentService,
		Weather:    weatherService,
		Geocoding:  geocodingService,
		Traffic:    trafficService,
		Dashboard:  dashboardService,
		Plans:      planService,
		V2V:        v2vService,
		Security:   securityService,
		Navigation: navigationService,
		Social:     socialService,
		LiveFeed:   http.HandlerFunc(hub.ServeWS),
	}, log, cfg)

	engine := gin.Default()
	handler.RegisterRoutes(engine.Group("/api/v1"))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

// weatherProviders - OpenWeatherMap первым, если задан ключ, затем Open-Meteo
func weatherProviders(cfg *config.Config) []service.WeatherProvider {
	var providers []service.WeatherProvider
	if cfg.OpenWeatherMapAPIKey != "" {
		providers = append(providers, provider.NewOpenWeatherMap(
			cfg.OpenWeatherMapURL, cfg.OpenWeatherMapAPIKey, cfg.HTTPClientTimeout, cfg.UserAgent))
	}
	return append(providers, provider.NewOpenMeteo(cfg.OpenMeteoURL, cfg.HTTPClientTimeout, cfg.UserAgent))
}

func router(cfg *config.Config) service.Router {
	if !cfg.OSRMEnabled {
		return nil
	}
	return provider.NewOSRM(cfg.OSRMURL, cfg.HTTPClientTimeout, cfg.UserAgent)
}

func newStreamer(ctx context.Context, cfg *config.Config, log *logrus.Logger) service.EventStreamer {
	if cfg.KinesisSecurityStream == "" {
		return nil
	}
	streamer, err := stream.NewFromEnv(ctx, cfg.KinesisSecurityStream)
	if err != nil {
		log.WithError(err).Warn("Failed to load AWS config for Kinesis")
		return nil
	}
	log.WithField("stream", cfg.KinesisSecurityStream).Info("Kinesis security event streaming enabled")
	return streamer
}
