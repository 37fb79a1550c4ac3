package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	EventTypeOrderPlaced   = "order.placed"
	EventTypeStockAdjusted = "stock.adjusted"
	EventTypeStockAlert    = "stock.alert"
)

// Kafka topics
const (
	TopicOrderPlaced   = "order-placed"
	TopicStockAdjusted = "stock-adjusted"
	TopicStockAlerts   = "stock-alerts"
)

// OrderLine is one book position inside a placed order
type OrderLine struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// OrderPlacedEvent is emitted by the storefront ordering system. The
// inventory service consumes it to decrement stock; the customer service
// consumes it to update purchase totals.
type OrderPlacedEvent struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OrderID    string          `json:"order_id"`
	CustomerID uint            `json:"customer_id"`
	Lines      []OrderLine     `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	Timestamp  time.Time       `json:"timestamp"`
}

// StockAdjustedEvent is published on every quantity mutation
type StockAdjustedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason"`
	Actor       string    `json:"actor"`
	Timestamp   time.Time `json:"timestamp"`
}

// StockAlertEvent is published when a book enters a low-stock or
// out-of-stock state. The notification service relays it to the admin chat.
type StockAlertEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	Quantity     int       `json:"quantity"`
	MinThreshold int       `json:"min_threshold"`
	Priority     string    `json:"priority"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}
