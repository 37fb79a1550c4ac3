package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/notification/usecase/command"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// AlertConsumer relays stock alerts from Kafka to the admin chat
type AlertConsumer struct {
	sendHandler *command.SendAlertHandler
}

// NewAlertConsumer creates a new alert consumer
func NewAlertConsumer(sendHandler *command.SendAlertHandler) *AlertConsumer {
	return &AlertConsumer{sendHandler: sendHandler}
}

// Register attaches the stock-alert handler to a Kafka consumer
func (c *AlertConsumer) Register(consumer *kafka.Consumer) {
	consumer.RegisterHandler(kafka.EventTypeStockAlert, c.HandleStockAlert)
}

// HandleStockAlert processes a stock.alert event
func (c *AlertConsumer) HandleStockAlert(ctx context.Context, payload []byte) error {
	var event kafka.StockAlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode stock alert event: %w", err)
	}

	cmd := command.SendAlertCommand{
		BookID:   event.BookID,
		Title:    event.Title,
		Quantity: event.Quantity,
		Priority: event.Priority,
		Message:  event.Message,
	}

	notification, err := c.sendHandler.Handle(ctx, cmd)
	if err != nil {
		// Delivery failures are recorded on the notification; the event is
		// not retried because the alert is already persisted.
		logger.Error(ctx).
			Err(err).
			Str("book_id", event.BookID).
			Msg("Failed to relay stock alert")
		return nil
	}

	logger.Info(ctx).
		Uint("notification_id", notification.ID).
		Str("book_id", event.BookID).
		Str("priority", event.Priority).
		Msg("Stock alert relayed to admin chat")

	return nil
}
