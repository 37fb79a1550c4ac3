package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookhaven/bookstore-admin/api-gateway/config"
	"github.com/bookhaven/bookstore-admin/api-gateway/health"
	"github.com/bookhaven/bookstore-admin/api-gateway/middleware"
	"github.com/bookhaven/bookstore-admin/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	RequireAdmin bool // Requires admin role
}

// Routes holds all route definitions. Admin checks on mutating endpoints
// are enforced by the services themselves; the gateway only authenticates.
var Routes = []RouteDefinition{
	{
		Prefix:       "/api/books",
		ServiceName:  "inventory",
		Description:  "Book catalog and stock management",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/inventory",
		ServiceName:  "inventory",
		Description:  "Inventory summary, alerts, forecast and reports",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/customers",
		ServiceName:  "customer",
		Description:  "Customer accounts and loyalty tiers",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/notifications",
		ServiceName:  "notification",
		Description:  "Stock alert notification history",
		RequireAuth:  true,
		RequireAdmin: false,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "BookHaven Admin Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
