package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/internal/inventory/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// OrderConsumer decrements stock for every line of a placed order. Each
// line becomes a subtract operation in one bulk adjustment, so an order
// referencing an unknown book still decrements the other lines.
type OrderConsumer struct {
	bulkHandler *command.BulkAdjustHandler
}

// NewOrderConsumer creates a new order consumer
func NewOrderConsumer(bulkHandler *command.BulkAdjustHandler) *OrderConsumer {
	return &OrderConsumer{bulkHandler: bulkHandler}
}

// Register attaches the order-placed handler to a Kafka consumer
func (c *OrderConsumer) Register(consumer *kafka.Consumer) {
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, c.HandleOrderPlaced)
}

// HandleOrderPlaced processes an order.placed event
func (c *OrderConsumer) HandleOrderPlaced(ctx context.Context, payload []byte) error {
	var event kafka.OrderPlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode order placed event: %w", err)
	}

	if len(event.Lines) == 0 {
		logger.Warn(ctx).Str("order_id", event.OrderID).Msg("Order placed event has no lines")
		return nil
	}

	ops := make([]domain.BatchOp, 0, len(event.Lines))
	for _, line := range event.Lines {
		ops = append(ops, domain.BatchOp{
			BookID: line.BookID,
			Type:   domain.BatchOpSubtract,
			Value:  line.Quantity,
		})
	}

	cmd := command.BulkAdjustCommand{
		Operations: ops,
		Reason:     fmt.Sprintf("order %s", event.OrderID),
		Actor:      "order-service",
	}

	result, err := c.bulkHandler.Handle(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to apply order %s: %w", event.OrderID, err)
	}

	if result.Failed > 0 {
		for _, item := range result.Results {
			if item.Error != "" {
				logger.Error(ctx).
					Str("order_id", event.OrderID).
					Str("book_id", item.BookID).
					Str("error", item.Error).
					Msg("Order line could not be applied")
			}
		}
	}

	logger.Info(ctx).
		Str("order_id", event.OrderID).
		Int("lines", len(event.Lines)).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("Order applied to inventory")

	return nil
}
