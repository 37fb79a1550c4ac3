package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// GetForecastQuery represents the query for reorder suggestions
type GetForecastQuery struct{}

// GetForecastHandler handles reorder forecast query
type GetForecastHandler struct {
	repo domain.BookRepository
}

// NewGetForecastHandler creates a new forecast handler
func NewGetForecastHandler(repo domain.BookRepository) *GetForecastHandler {
	return &GetForecastHandler{repo: repo}
}

// Handle executes the forecast query
func (h *GetForecastHandler) Handle(q GetForecastQuery) ([]domain.ReorderSuggestion, error) {
	books, err := h.repo.FindAll(snapshotLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	return domain.Forecast(books), nil
}
