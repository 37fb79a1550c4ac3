package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/bookhaven/bookstore-admin/internal/notification"
	"github.com/bookhaven/bookstore-admin/internal/notification/client"
	httpDelivery "github.com/bookhaven/bookstore-admin/internal/notification/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/notification/events"
	"github.com/bookhaven/bookstore-admin/internal/notification/repository"
	"github.com/bookhaven/bookstore-admin/internal/notification/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/database"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
	"github.com/bookhaven/bookstore-admin/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "notification-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notification service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer tracing.Shutdown(context.Background(), tp)

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "notificationdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate plain connection for health-check pings
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health-check connection")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.NewGormNotificationRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize handler with Wire DI
	handler, err := notification.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Consume stock-alert events and relay them to the admin chat
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		consumer, err := kafka.NewConsumer(
			strings.Split(brokers, ","),
			getEnv("KAFKA_GROUP_ID", "notification-service"),
			[]string{kafka.TopicStockAlerts},
		)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		bot := client.NewBotClient(
			getEnv("BOT_BASE_URL", "http://localhost:9000"),
			getEnv("BOT_CHAT_ID", "bookhaven-admins"),
		)
		repo := repository.NewGormNotificationRepository(db)
		alertConsumer := events.NewAlertConsumer(command.NewSendAlertHandler(repo, bot))
		alertConsumer.Register(consumer)

		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, alert relay disabled")
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8084")
	go startHTTPServer(handler, sqlDB, httpPort)

	<-ctx.Done()

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.NotificationHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
