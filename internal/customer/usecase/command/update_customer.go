package command

import (
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

// UpdateCustomerCommand represents the command to update a customer
type UpdateCustomerCommand struct {
	ID          uint
	Email       string
	FullName    string
	MessagingID string
}

// UpdateCustomerHandler handles customer update command
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	// Validation
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid customer id")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	// Check if customer exists
	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	// Update fields
	customer.Email = cmd.Email
	customer.FullName = cmd.FullName
	customer.MessagingID = cmd.MessagingID
	customer.UpdatedAt = time.Now()

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}
