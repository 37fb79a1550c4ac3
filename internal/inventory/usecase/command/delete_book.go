package command

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// DeleteBookCommand represents the command to remove a book
type DeleteBookCommand struct {
	BookID string
}

// DeleteBookHandler handles book deletion
type DeleteBookHandler struct {
	repo domain.BookRepository
}

// NewDeleteBookHandler creates a new delete book handler
func NewDeleteBookHandler(repo domain.BookRepository) *DeleteBookHandler {
	return &DeleteBookHandler{repo: repo}
}

// Handle executes the delete book command
func (h *DeleteBookHandler) Handle(cmd DeleteBookCommand) error {
	if cmd.BookID == "" {
		return fmt.Errorf("book_id is required")
	}

	if _, err := h.repo.FindByID(cmd.BookID); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrBookNotFound, cmd.BookID)
	}

	if err := h.repo.Delete(cmd.BookID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}
