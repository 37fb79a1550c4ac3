package command

import (
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// ChangeStatusCommand represents an administrative status override
type ChangeStatusCommand struct {
	BookID string
	Status domain.StockStatus
	Actor  string
}

// ChangeStatusHandler handles administrative status changes
type ChangeStatusHandler struct {
	repo domain.BookRepository
}

// NewChangeStatusHandler creates a new change status handler
func NewChangeStatusHandler(repo domain.BookRepository) *ChangeStatusHandler {
	return &ChangeStatusHandler{repo: repo}
}

var validStatuses = map[domain.StockStatus]bool{
	domain.StatusInStock:      true,
	domain.StatusLowStock:     true,
	domain.StatusOutOfStock:   true,
	domain.StatusDiscontinued: true,
	domain.StatusPreOrder:     true,
	domain.StatusComingSoon:   true,
}

// Handle executes the change status command
func (h *ChangeStatusHandler) Handle(cmd ChangeStatusCommand) (*domain.Book, error) {
	if cmd.BookID == "" {
		return nil, fmt.Errorf("book_id is required")
	}
	if !validStatuses[cmd.Status] {
		return nil, fmt.Errorf("unknown status %q", cmd.Status)
	}

	book, err := h.repo.FindByID(cmd.BookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookNotFound, cmd.BookID)
	}

	updated := domain.ApplyStatusChange(*book, cmd.Status, time.Now())

	if err := h.repo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	logger.Logger.Info().
		Str("book_id", cmd.BookID).
		Str("from", string(book.Status)).
		Str("to", string(updated.Status)).
		Str("actor", cmd.Actor).
		Msg("Book status changed")

	return &updated, nil
}
