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
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/bookhaven/bookstore-admin/docs"
	"github.com/bookhaven/bookstore-admin/internal/inventory"
	httpDelivery "github.com/bookhaven/bookstore-admin/internal/inventory/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/inventory/events"
	"github.com/bookhaven/bookstore-admin/internal/inventory/repository"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/database"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
	"github.com/bookhaven/bookstore-admin/pkg/tracing"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "inventory-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting inventory service")

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
		DBName:   getEnv("DB_NAME", "inventorydb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
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
	if err := repository.NewGormBookRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka is optional: without brokers the service runs without events
	var publisher command.EventPublisher
	var kafkaPublisher *kafka.Publisher
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		kafkaPublisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, stock events disabled")
	}

	// Initialize handler with Wire DI
	handler, err := inventory.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Consume order-placed events to decrement stock
	if brokers != "" {
		consumer, err := kafka.NewConsumer(
			strings.Split(brokers, ","),
			getEnv("KAFKA_GROUP_ID", "inventory-service"),
			[]string{kafka.TopicOrderPlaced},
		)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		repo := repository.NewGormBookRepositoryWithTracing(db)
		orderConsumer := events.NewOrderConsumer(command.NewBulkAdjustHandler(repo, publisher))
		orderConsumer.Register(consumer)

		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8082")
	go startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	<-ctx.Done()

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.InventoryHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Cross-cutting middlewares (recovery, timeout, logging, tracing)
	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	corsHandler := httpDelivery.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
