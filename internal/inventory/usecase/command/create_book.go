package command

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// CreateBookCommand represents the command to add a book to the catalog
type CreateBookCommand struct {
	Title              string
	Author             string
	Quantity           int
	MinThreshold       int
	MaxThreshold       int
	UnitPrice          decimal.Decimal
	AllowPreOrder      bool
	EnableWaitlist     bool
	AverageSalesPerDay decimal.Decimal
}

// CreateBookHandler handles book creation
type CreateBookHandler struct {
	repo domain.BookRepository
}

// NewCreateBookHandler creates a new create book handler
func NewCreateBookHandler(repo domain.BookRepository) *CreateBookHandler {
	return &CreateBookHandler{repo: repo}
}

// Handle executes the create book command
func (h *CreateBookHandler) Handle(cmd CreateBookCommand) (*domain.Book, error) {
	if cmd.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if cmd.Quantity < 0 {
		cmd.Quantity = 0
	}

	if cmd.MinThreshold <= 0 {
		cmd.MinThreshold = domain.DefaultMinThreshold
	}

	if cmd.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	status := domain.Resolve(cmd.Quantity, cmd.MinThreshold)

	book := &domain.Book{
		ID:                 uuid.NewString(),
		Title:              cmd.Title,
		Author:             cmd.Author,
		Quantity:           cmd.Quantity,
		MinThreshold:       cmd.MinThreshold,
		MaxThreshold:       cmd.MaxThreshold,
		UnitPrice:          cmd.UnitPrice,
		Status:             status,
		Visibility:         domain.VisibilityVisible,
		IsAvailable:        cmd.Quantity > 0,
		AllowPreOrder:      cmd.AllowPreOrder,
		EnableWaitlist:     cmd.EnableWaitlist,
		AverageSalesPerDay: cmd.AverageSalesPerDay,
	}

	if err := h.repo.Create(book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}
