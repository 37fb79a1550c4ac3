package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// ListBooksQuery represents the query to list books, optionally filtered
// by status.
type ListBooksQuery struct {
	Status domain.StockStatus
	Limit  int
	Offset int
}

// ListBooksHandler handles list books query
type ListBooksHandler struct {
	repo domain.BookRepository
}

// NewListBooksHandler creates a new list books handler
func NewListBooksHandler(repo domain.BookRepository) *ListBooksHandler {
	return &ListBooksHandler{repo: repo}
}

// Handle executes the list books query
func (h *ListBooksHandler) Handle(q ListBooksQuery) ([]domain.Book, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 500 {
		q.Limit = 500
	}

	var books []domain.Book
	var err error
	if q.Status != "" {
		books, err = h.repo.FindByStatus(q.Status, q.Limit, q.Offset)
	} else {
		books, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}
