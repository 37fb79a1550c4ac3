package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

// ListCustomersQuery represents the query to list customers, optionally
// filtered by loyalty tier.
type ListCustomersQuery struct {
	Tier   string
	Limit  int
	Offset int
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) ([]domain.Customer, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 500 {
		q.Limit = 500
	}

	var customers []domain.Customer
	var err error
	if q.Tier != "" {
		customers, err = h.repo.FindByTier(q.Tier, q.Limit, q.Offset)
	} else {
		customers, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}
