//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/customer/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
	"github.com/bookhaven/bookstore-admin/internal/customer/repository"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/command"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/query"
)

// ProvideCustomerRepository provides the customer repository with tracing
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideRegisterCustomerHandler(repo domain.CustomerRepository) *command.RegisterCustomerHandler {
	return command.NewRegisterCustomerHandler(repo)
}

func ProvideUpdateCustomerHandler(repo domain.CustomerRepository) *command.UpdateCustomerHandler {
	return command.NewUpdateCustomerHandler(repo)
}

func ProvideDeleteCustomerHandler(repo domain.CustomerRepository) *command.DeleteCustomerHandler {
	return command.NewDeleteCustomerHandler(repo)
}

func ProvideToggleActiveHandler(repo domain.CustomerRepository) *command.ToggleActiveHandler {
	return command.NewToggleActiveHandler(repo)
}

func ProvideRecordPurchaseHandler(repo domain.CustomerRepository) *command.RecordPurchaseHandler {
	return command.NewRecordPurchaseHandler(repo)
}

// Query Handlers Providers
func ProvideGetCustomerHandler(repo domain.CustomerRepository) *query.GetCustomerHandler {
	return query.NewGetCustomerHandler(repo)
}

func ProvideListCustomersHandler(repo domain.CustomerRepository) *query.ListCustomersHandler {
	return query.NewListCustomersHandler(repo)
}

func ProvideGetStatsHandler(repo domain.CustomerRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterCustomerHandler,
	ProvideUpdateCustomerHandler,
	ProvideDeleteCustomerHandler,
	ProvideToggleActiveHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCustomerHandler,
	ProvideListCustomersHandler,
	ProvideGetStatsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CustomerHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCustomerHandlerWithDI,
	)
	return nil, nil
}
