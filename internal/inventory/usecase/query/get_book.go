package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// GetBookQuery represents the query to fetch one book
type GetBookQuery struct {
	BookID string
}

// GetBookHandler handles get book query
type GetBookHandler struct {
	repo domain.BookRepository
}

// NewGetBookHandler creates a new get book handler
func NewGetBookHandler(repo domain.BookRepository) *GetBookHandler {
	return &GetBookHandler{repo: repo}
}

// Handle executes the get book query
func (h *GetBookHandler) Handle(q GetBookQuery) (*domain.Book, error) {
	if q.BookID == "" {
		return nil, fmt.Errorf("book_id is required")
	}

	book, err := h.repo.FindByID(q.BookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookNotFound, q.BookID)
	}

	return book, nil
}
