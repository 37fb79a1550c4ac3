package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// RecordPurchaseCommand applies one placed order to a customer's lifetime
// totals. It normally arrives from the order-placed event stream.
type RecordPurchaseCommand struct {
	CustomerID uint
	OrderID    string
	Total      decimal.Decimal
}

// RecordPurchaseHandler handles purchase recording
type RecordPurchaseHandler struct {
	repo domain.CustomerRepository
}

// NewRecordPurchaseHandler creates a new record purchase handler
func NewRecordPurchaseHandler(repo domain.CustomerRepository) *RecordPurchaseHandler {
	return &RecordPurchaseHandler{repo: repo}
}

// Handle executes the record purchase command
func (h *RecordPurchaseHandler) Handle(cmd RecordPurchaseCommand) (*domain.Customer, error) {
	if cmd.CustomerID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}
	if cmd.Total.IsNegative() {
		return nil, fmt.Errorf("order total cannot be negative")
	}

	customer, err := h.repo.FindByID(cmd.CustomerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	previousTier := customer.LoyaltyTier
	customer.RecordPurchase(cmd.Total, time.Now())

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	if customer.LoyaltyTier != previousTier {
		logger.Logger.Info().
			Uint("customer_id", customer.ID).
			Str("from", previousTier).
			Str("to", customer.LoyaltyTier).
			Msg("Customer reached a new loyalty tier")
	}

	return customer, nil
}
