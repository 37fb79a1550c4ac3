package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
	"github.com/bookhaven/bookstore-admin/internal/customer/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// OrderConsumer updates customer lifetime totals from placed orders
type OrderConsumer struct {
	recordHandler *command.RecordPurchaseHandler
}

// NewOrderConsumer creates a new order consumer
func NewOrderConsumer(recordHandler *command.RecordPurchaseHandler) *OrderConsumer {
	return &OrderConsumer{recordHandler: recordHandler}
}

// Register attaches the order-placed handler to a Kafka consumer
func (c *OrderConsumer) Register(consumer *kafka.Consumer) {
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, c.HandleOrderPlaced)
}

// HandleOrderPlaced processes an order.placed event. Orders for unknown
// customers are logged and dropped; retrying cannot make them resolve.
func (c *OrderConsumer) HandleOrderPlaced(ctx context.Context, payload []byte) error {
	var event kafka.OrderPlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode order placed event: %w", err)
	}

	cmd := command.RecordPurchaseCommand{
		CustomerID: event.CustomerID,
		OrderID:    event.OrderID,
		Total:      event.Total,
	}

	customer, err := c.recordHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			logger.Warn(ctx).
				Str("order_id", event.OrderID).
				Uint("customer_id", event.CustomerID).
				Msg("Order placed for unknown customer, skipping")
			return nil
		}
		return fmt.Errorf("failed to record purchase for order %s: %w", event.OrderID, err)
	}

	logger.Info(ctx).
		Str("order_id", event.OrderID).
		Uint("customer_id", customer.ID).
		Int("total_orders", customer.TotalOrders).
		Str("tier", customer.LoyaltyTier).
		Msg("Purchase recorded")

	return nil
}
