package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// GetAlertsQuery represents the query for the prioritized alert list
type GetAlertsQuery struct{}

// GetAlertsHandler handles stock alerts query
type GetAlertsHandler struct {
	repo domain.BookRepository
}

// NewGetAlertsHandler creates a new alerts handler
func NewGetAlertsHandler(repo domain.BookRepository) *GetAlertsHandler {
	return &GetAlertsHandler{repo: repo}
}

// Handle executes the alerts query
func (h *GetAlertsHandler) Handle(q GetAlertsQuery) ([]domain.Alert, error) {
	books, err := h.repo.FindAll(snapshotLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	return domain.GenerateAlerts(books), nil
}
