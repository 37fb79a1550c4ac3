package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// snapshotLimit bounds how many records the derived views operate on.
// The catalog of a single store fits comfortably in memory.
const snapshotLimit = 10000

// GetSummaryQuery represents the query to aggregate the whole inventory
type GetSummaryQuery struct{}

// GetSummaryHandler handles inventory summary query
type GetSummaryHandler struct {
	repo domain.BookRepository
}

// NewGetSummaryHandler creates a new summary handler
func NewGetSummaryHandler(repo domain.BookRepository) *GetSummaryHandler {
	return &GetSummaryHandler{repo: repo}
}

// Handle executes the summary query
func (h *GetSummaryHandler) Handle(q GetSummaryQuery) (*domain.Summary, error) {
	books, err := h.repo.FindAll(snapshotLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	summary := domain.Aggregate(books)
	return &summary, nil
}
