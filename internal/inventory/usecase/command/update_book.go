package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// UpdateBookCommand updates catalog metadata and thresholds. Quantity is
// not part of this command; stock changes go through AdjustStock so they
// always leave a change-log entry.
type UpdateBookCommand struct {
	BookID             string
	Title              *string
	Author             *string
	UnitPrice          *decimal.Decimal
	MinThreshold       *int
	MaxThreshold       *int
	AllowPreOrder      *bool
	EnableWaitlist     *bool
	AverageSalesPerDay *decimal.Decimal
}

// UpdateBookHandler handles book metadata updates
type UpdateBookHandler struct {
	repo domain.BookRepository
}

// NewUpdateBookHandler creates a new update book handler
func NewUpdateBookHandler(repo domain.BookRepository) *UpdateBookHandler {
	return &UpdateBookHandler{repo: repo}
}

// Handle executes the update book command
func (h *UpdateBookHandler) Handle(cmd UpdateBookCommand) (*domain.Book, error) {
	if cmd.BookID == "" {
		return nil, fmt.Errorf("book_id is required")
	}

	book, err := h.repo.FindByID(cmd.BookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookNotFound, cmd.BookID)
	}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		book.Title = *cmd.Title
	}
	if cmd.Author != nil {
		book.Author = *cmd.Author
	}
	if cmd.UnitPrice != nil {
		if cmd.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("unit price cannot be negative")
		}
		book.UnitPrice = *cmd.UnitPrice
	}
	if cmd.MinThreshold != nil {
		if *cmd.MinThreshold <= 0 {
			book.MinThreshold = domain.DefaultMinThreshold
		} else {
			book.MinThreshold = *cmd.MinThreshold
		}
	}
	if cmd.MaxThreshold != nil {
		book.MaxThreshold = *cmd.MaxThreshold
	}
	if cmd.AllowPreOrder != nil {
		book.AllowPreOrder = *cmd.AllowPreOrder
	}
	if cmd.EnableWaitlist != nil {
		book.EnableWaitlist = *cmd.EnableWaitlist
	}
	if cmd.AverageSalesPerDay != nil {
		if cmd.AverageSalesPerDay.IsNegative() {
			return nil, fmt.Errorf("average sales per day cannot be negative")
		}
		book.AverageSalesPerDay = *cmd.AverageSalesPerDay
	}

	// A threshold change can move the book across the low-stock boundary
	if !book.Status.IsAdministrative() {
		book.Status = domain.Resolve(book.Quantity, book.MinThreshold)
	}
	book.UpdatedAt = time.Now()

	if err := h.repo.Update(book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return book, nil
}
