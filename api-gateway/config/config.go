package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the gateway configuration. Externals are collaborators
// the dashboard depends on but does not proxy to; they are health-checked
// only.
type GatewayConfig struct {
	Port      string
	Services  map[string]ServiceConfig
	Externals map[string]ServiceConfig
}

// LoadConfig loads gateway configuration from environment
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8080"),
		Services: map[string]ServiceConfig{
			"inventory": {
				Name:        "inventory-service",
				BaseURL:     getEnv("INVENTORY_SERVICE_URL", "http://localhost:8082"),
				Instances:   getEnvList("INVENTORY_SERVICE_INSTANCES", getEnv("INVENTORY_SERVICE_URL", "http://localhost:8082")),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"customer": {
				Name:        "customer-service",
				BaseURL:     getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8083"),
				Instances:   getEnvList("CUSTOMER_SERVICE_INSTANCES", getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8083")),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"notification": {
				Name:        "notification-service",
				BaseURL:     getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8084"),
				Instances:   getEnvList("NOTIFICATION_SERVICE_INSTANCES", getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8084")),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
		Externals: map[string]ServiceConfig{
			"messaging-bot": {
				Name:        "messaging-bot",
				BaseURL:     getEnv("BOT_BASE_URL", "http://localhost:9000"),
				Timeout:     5 * time.Second,
				HealthCheck: "/health",
			},
			"image-cdn": {
				Name:        "image-cdn",
				BaseURL:     getEnv("CDN_BASE_URL", "http://localhost:9001"),
				Timeout:     5 * time.Second,
				HealthCheck: "/ping",
			},
			"search": {
				Name:        "search-functions",
				BaseURL:     getEnv("SEARCH_BASE_URL", "http://localhost:9002"),
				Timeout:     5 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

// getEnv gets environment variable with fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList parses a comma-separated environment variable into a list
func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)

	parts := strings.Split(raw, ",")
	instances := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			instances = append(instances, trimmed)
		}
	}
	return instances
}
