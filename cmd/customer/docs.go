package main

// @title BookHaven Customer Service API
// @version 1.0
// @description Customer records and loyalty tiers for the BookHaven admin dashboard

// @contact.name API Support
// @contact.url http://github.com/bookhaven/bookstore-admin

// @license.name MIT
// @license.url https://github.com/bookhaven/bookstore-admin/blob/main/LICENSE

// @host localhost:8083
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Customers
// @tag.description Customer management endpoints

// @tag.name Health
// @tag.description Health check endpoints
