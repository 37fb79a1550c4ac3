package main

// @title BookHaven Inventory Service API
// @version 1.0
// @description Stock-state core of the BookHaven admin dashboard: catalog, stock mutations, alerts, forecasts and reports
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/bookhaven/bookstore-admin
// @contact.email support@bookhaven.example

// @license.name MIT
// @license.url https://github.com/bookhaven/bookstore-admin/blob/main/LICENSE

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Books
// @tag.description Catalog management endpoints

// @tag.name Inventory
// @tag.description Stock state, alerts, forecasts and reports

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
