package command

import (
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

// ToggleActiveCommand represents the command to activate/deactivate a customer (admin only)
type ToggleActiveCommand struct {
	CustomerID uint
	IsActive   bool
}

// ToggleActiveHandler handles customer activation toggle command
type ToggleActiveHandler struct {
	repo domain.CustomerRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.CustomerRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) (*domain.Customer, error) {
	if cmd.CustomerID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}

	customer, err := h.repo.FindByID(cmd.CustomerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	customer.IsActive = cmd.IsActive
	customer.UpdatedAt = time.Now()

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer status: %w", err)
	}

	return customer, nil
}
