//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/inventory/delivery/http"
	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/internal/inventory/repository"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/command"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/query"
)

// ProvideBookRepository provides the book repository with tracing
func ProvideBookRepository(db *gorm.DB) domain.BookRepository {
	return repository.NewGormBookRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideCreateBookHandler(repo domain.BookRepository) *command.CreateBookHandler {
	return command.NewCreateBookHandler(repo)
}

func ProvideUpdateBookHandler(repo domain.BookRepository) *command.UpdateBookHandler {
	return command.NewUpdateBookHandler(repo)
}

func ProvideDeleteBookHandler(repo domain.BookRepository) *command.DeleteBookHandler {
	return command.NewDeleteBookHandler(repo)
}

func ProvideAdjustStockHandler(repo domain.BookRepository, publisher command.EventPublisher) *command.AdjustStockHandler {
	return command.NewAdjustStockHandler(repo, publisher)
}

func ProvideBulkAdjustHandler(repo domain.BookRepository, publisher command.EventPublisher) *command.BulkAdjustHandler {
	return command.NewBulkAdjustHandler(repo, publisher)
}

func ProvideChangeStatusHandler(repo domain.BookRepository) *command.ChangeStatusHandler {
	return command.NewChangeStatusHandler(repo)
}

// Query Handlers Providers
func ProvideGetBookHandler(repo domain.BookRepository) *query.GetBookHandler {
	return query.NewGetBookHandler(repo)
}

func ProvideListBooksHandler(repo domain.BookRepository) *query.ListBooksHandler {
	return query.NewListBooksHandler(repo)
}

func ProvideGetSummaryHandler(repo domain.BookRepository) *query.GetSummaryHandler {
	return query.NewGetSummaryHandler(repo)
}

func ProvideGetAlertsHandler(repo domain.BookRepository) *query.GetAlertsHandler {
	return query.NewGetAlertsHandler(repo)
}

func ProvideGetForecastHandler(repo domain.BookRepository) *query.GetForecastHandler {
	return query.NewGetForecastHandler(repo)
}

func ProvideGenerateReportHandler(repo domain.BookRepository) *query.GenerateReportHandler {
	return query.NewGenerateReportHandler(repo)
}

func ProvideListChangesHandler(repo domain.BookRepository) *query.ListChangesHandler {
	return query.NewListChangesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateBookHandler,
	ProvideUpdateBookHandler,
	ProvideDeleteBookHandler,
	ProvideAdjustStockHandler,
	ProvideBulkAdjustHandler,
	ProvideChangeStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetBookHandler,
	ProvideListBooksHandler,
	ProvideGetSummaryHandler,
	ProvideGetAlertsHandler,
	ProvideGetForecastHandler,
	ProvideGenerateReportHandler,
	ProvideListChangesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher) (*http.InventoryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInventoryHandlerWithDI,
	)
	return nil, nil
}
