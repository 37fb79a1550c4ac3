//go:build wireinject
// +build wireinject

package notification

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/notification/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
	"github.com/bookhaven/bookstore-admin/internal/notification/repository"
	"github.com/bookhaven/bookstore-admin/internal/notification/usecase/query"
)

// ProvideNotificationRepository provides the notification repository
func ProvideNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return repository.NewGormNotificationRepository(db)
}

// Query Handlers Providers
func ProvideListNotificationsHandler(repo domain.NotificationRepository) *query.ListNotificationsHandler {
	return query.NewListNotificationsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideNotificationRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListNotificationsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.NotificationHandler, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		http.NewNotificationHandlerWithDI,
	)
	return nil, nil
}
