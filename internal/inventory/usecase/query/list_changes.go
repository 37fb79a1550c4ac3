package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// ListChangesQuery represents the query for a book's stock change history
type ListChangesQuery struct {
	BookID string
	Limit  int
}

// ListChangesHandler handles stock change history query
type ListChangesHandler struct {
	repo domain.BookRepository
}

// NewListChangesHandler creates a new list changes handler
func NewListChangesHandler(repo domain.BookRepository) *ListChangesHandler {
	return &ListChangesHandler{repo: repo}
}

// Handle executes the list changes query
func (h *ListChangesHandler) Handle(q ListChangesQuery) ([]domain.StockChange, error) {
	if q.BookID == "" {
		return nil, fmt.Errorf("book_id is required")
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}

	changes, err := h.repo.ListChanges(q.BookID, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock changes: %w", err)
	}

	return changes, nil
}
