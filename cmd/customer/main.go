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

	"github.com/bookhaven/bookstore-admin/internal/customer"
	httpDelivery "github.com/bookhaven/bookstore-admin/internal/customer/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/customer/events"
	"github.com/bookhaven/bookstore-admin/internal/customer/repository"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/database"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
	"github.com/bookhaven/bookstore-admin/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "customer-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting customer service")

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
		DBName:   getEnv("DB_NAME", "customerdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.NewGormCustomerRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize handler with Wire DI
	handler, err := customer.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Consume order-placed events to update customer lifetime totals
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		consumer, err := kafka.NewConsumer(
			strings.Split(brokers, ","),
			getEnv("KAFKA_GROUP_ID", "customer-service"),
			[]string{kafka.TopicOrderPlaced},
		)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		repo := repository.NewGormCustomerRepositoryWithTracing(db)
		orderConsumer := events.NewOrderConsumer(command.NewRecordPurchaseHandler(repo))
		orderConsumer.Register(consumer)

		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8083")
	go startHTTPServer(handler, sqlDB, httpPort)

	<-ctx.Done()

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.CustomerHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
