package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// BulkAdjustCommand represents a bulk stock update. Reason applies to every
// operation that does not carry its own.
type BulkAdjustCommand struct {
	Operations []domain.BatchOp
	Reason     string
	Actor      string
}

// BulkItemResult reports the fate of one operation in the response
type BulkItemResult struct {
	BookID string       `json:"book_id"`
	Book   *domain.Book `json:"book,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// BulkAdjustResult is the outcome of a bulk update
type BulkAdjustResult struct {
	Results   []BulkItemResult `json:"results"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BulkAdjustHandler handles bulk stock updates
type BulkAdjustHandler struct {
	repo      domain.BookRepository
	publisher EventPublisher
}

// NewBulkAdjustHandler creates a new bulk adjust handler
func NewBulkAdjustHandler(repo domain.BookRepository, publisher EventPublisher) *BulkAdjustHandler {
	return &BulkAdjustHandler{repo: repo, publisher: publisher}
}

// Handle executes the bulk adjust command. One operation's failure never
// aborts the rest; the caller inspects per-item results. Persistence
// failures after a successful in-memory mutation are reported on the item
// they belong to.
func (h *BulkAdjustHandler) Handle(ctx context.Context, cmd BulkAdjustCommand) (*BulkAdjustResult, error) {
	if len(cmd.Operations) == 0 {
		return nil, fmt.Errorf("operations are required")
	}
	if cmd.Actor == "" {
		cmd.Actor = "admin"
	}

	// Fetch the referenced books. Missing ids surface as per-item errors
	// inside ApplyBatch; any other repository failure is kept apart so it
	// is never misreported as a missing record.
	books := make([]domain.Book, 0, len(cmd.Operations))
	seen := make(map[string]bool)
	loadErrs := make(map[string]error)
	for _, op := range cmd.Operations {
		if seen[op.BookID] {
			continue
		}
		seen[op.BookID] = true

		book, err := h.repo.FindByID(op.BookID)
		switch {
		case err == nil:
			books = append(books, *book)
		case !errors.Is(err, domain.ErrBookNotFound):
			loadErrs[op.BookID] = err
		}
	}

	batch := domain.ApplyBatch(books, cmd.Operations, cmd.Reason, cmd.Actor, time.Now())

	result := &BulkAdjustResult{Results: make([]BulkItemResult, 0, len(batch.Results))}
	for _, item := range batch.Results {
		out := BulkItemResult{BookID: item.BookID}

		switch {
		case item.Err != nil:
			if loadErr, ok := loadErrs[item.BookID]; ok {
				out.Error = fmt.Sprintf("failed to load book: %v", loadErr)
			} else {
				out.Error = item.Err.Error()
			}
			result.Failed++
		default:
			if err := h.repo.SaveWithChange(item.Book, item.Change); err != nil {
				out.Error = fmt.Sprintf("failed to save: %v", err)
				result.Failed++
				break
			}
			out.Book = item.Book
			result.Succeeded++
			h.publishAdjusted(ctx, item)
		}

		result.Results = append(result.Results, out)
	}

	logger.Info(ctx).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Str("actor", cmd.Actor).
		Msg("Bulk stock update applied")

	return result, nil
}

func (h *BulkAdjustHandler) publishAdjusted(ctx context.Context, item domain.BatchItemResult) {
	if h.publisher == nil {
		return
	}

	err := h.publisher.PublishStockAdjusted(ctx, kafka.StockAdjustedEvent{
		BookID:      item.Book.ID,
		Title:       item.Book.Title,
		OldQuantity: item.Change.OldQuantity,
		NewQuantity: item.Change.NewQuantity,
		Status:      string(item.Book.Status),
		Reason:      item.Change.Reason,
		Actor:       item.Change.Actor,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("book_id", item.Book.ID).Msg("Failed to publish stock adjusted event")
	}
}
