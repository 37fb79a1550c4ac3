package command

import (
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

// RegisterCustomerCommand represents the command to register a new customer
type RegisterCustomerCommand struct {
	Email       string
	FullName    string
	MessagingID string // Optional chat handle for order notifications
}

// RegisterCustomerHandler handles customer registration command
type RegisterCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewRegisterCustomerHandler creates a new register customer handler
func NewRegisterCustomerHandler(repo domain.CustomerRepository) *RegisterCustomerHandler {
	return &RegisterCustomerHandler{repo: repo}
}

// Handle executes the register customer command
func (h *RegisterCustomerHandler) Handle(cmd RegisterCustomerCommand) (*domain.Customer, error) {
	// Validation
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	// Check if customer already exists
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, fmt.Errorf("email already exists")
	}

	customer := &domain.Customer{
		Email:       cmd.Email,
		FullName:    cmd.FullName,
		MessagingID: cmd.MessagingID,
		LoyaltyTier: domain.TierBronze,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}
