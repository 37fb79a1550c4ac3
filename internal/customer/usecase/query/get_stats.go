package query

import (
	"fmt"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

// GetStatsQuery represents the query to get customer statistics (admin only)
type GetStatsQuery struct{}

// CustomerStats represents customer statistics
type CustomerStats struct {
	TotalCustomers int64 `json:"total_customers"`
	BronzeCount    int64 `json:"bronze_count"`
	SilverCount    int64 `json:"silver_count"`
	GoldCount      int64 `json:"gold_count"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.CustomerRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.CustomerRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*CustomerStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	bronze, err := h.repo.CountByTier(domain.TierBronze)
	if err != nil {
		return nil, fmt.Errorf("failed to count bronze customers: %w", err)
	}

	silver, err := h.repo.CountByTier(domain.TierSilver)
	if err != nil {
		return nil, fmt.Errorf("failed to count silver customers: %w", err)
	}

	gold, err := h.repo.CountByTier(domain.TierGold)
	if err != nil {
		return nil, fmt.Errorf("failed to count gold customers: %w", err)
	}

	return &CustomerStats{
		TotalCustomers: total,
		BronzeCount:    bronze,
		SilverCount:    silver,
		GoldCount:      gold,
	}, nil
}
