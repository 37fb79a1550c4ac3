package command

import (
	"context"
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// EventPublisher publishes stock events. A nil publisher disables events,
// which is how unit tests and local runs without Kafka operate.
type EventPublisher interface {
	PublishStockAdjusted(ctx context.Context, event kafka.StockAdjustedEvent) error
	PublishStockAlert(ctx context.Context, event kafka.StockAlertEvent) error
}

// AdjustStockCommand represents the command to set a book's quantity
type AdjustStockCommand struct {
	BookID      string
	NewQuantity int
	Reason      string
	Actor       string
}

// AdjustStockHandler handles a single stock adjustment
type AdjustStockHandler struct {
	repo      domain.BookRepository
	publisher EventPublisher
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(repo domain.BookRepository, publisher EventPublisher) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo, publisher: publisher}
}

// Handle executes the adjust stock command. The mutation and its change-log
// entry are persisted together; events are emitted afterwards and delivery
// failures do not roll back the write.
func (h *AdjustStockHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*domain.Book, error) {
	if cmd.BookID == "" {
		return nil, fmt.Errorf("book_id is required")
	}
	if cmd.Actor == "" {
		cmd.Actor = "admin"
	}

	book, err := h.repo.FindByID(cmd.BookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookNotFound, cmd.BookID)
	}

	wasLow := book.Status == domain.StatusLowStock || book.Status == domain.StatusOutOfStock

	updated, change := domain.ApplyQuantityChange(*book, cmd.NewQuantity, cmd.Reason, cmd.Actor, time.Now())

	if err := h.repo.SaveWithChange(&updated, &change); err != nil {
		return nil, fmt.Errorf("failed to save stock change: %w", err)
	}

	h.publishEvents(ctx, &updated, &change, wasLow)

	return &updated, nil
}

func (h *AdjustStockHandler) publishEvents(ctx context.Context, book *domain.Book, change *domain.StockChange, wasLow bool) {
	if h.publisher == nil {
		return
	}

	err := h.publisher.PublishStockAdjusted(ctx, kafka.StockAdjustedEvent{
		BookID:      book.ID,
		Title:       book.Title,
		OldQuantity: change.OldQuantity,
		NewQuantity: change.NewQuantity,
		Status:      string(book.Status),
		Reason:      change.Reason,
		Actor:       change.Actor,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("book_id", book.ID).Msg("Failed to publish stock adjusted event")
	}

	// Alert only on entering a degraded state, not while staying in one
	isLow := book.Status == domain.StatusLowStock || book.Status == domain.StatusOutOfStock
	if !isLow || wasLow {
		return
	}

	alerts := domain.GenerateAlerts([]domain.Book{*book})
	if len(alerts) == 0 {
		return
	}

	err = h.publisher.PublishStockAlert(ctx, kafka.StockAlertEvent{
		BookID:       book.ID,
		Title:        book.Title,
		Quantity:     book.Quantity,
		MinThreshold: book.MinThreshold,
		Priority:     string(alerts[0].Priority),
		Message:      alerts[0].Message,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("book_id", book.ID).Msg("Failed to publish stock alert event")
	}
}
