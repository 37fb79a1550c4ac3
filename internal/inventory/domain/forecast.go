package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReorderSuggestion is a forecasted replenishment recommendation.
// DaysUntilStockout is nil when the sales velocity is zero or unknown; the
// sentinel is never coerced to a number.
type ReorderSuggestion struct {
	BookID            string        `json:"book_id"`
	Title             string        `json:"title"`
	Quantity          int           `json:"quantity"`
	DaysUntilStockout *int          `json:"days_until_stockout,omitempty"`
	SuggestedQuantity int           `json:"suggested_quantity"`
	Priority          AlertPriority `json:"priority"`
}

// Forecast computes reorder suggestions for books that are at or below
// their low-stock boundary, or projected to stock out within a week at the
// current sales velocity. Suggestions are ordered by priority rank
// descending; equal ranks keep input order.
func Forecast(books []Book) []ReorderSuggestion {
	suggestions := make([]ReorderSuggestion, 0)

	for _, b := range books {
		days := daysUntilStockout(&b)

		eligible := b.Quantity <= b.MinThreshold || (days != nil && *days <= 7)
		if !eligible {
			continue
		}

		suggestions = append(suggestions, ReorderSuggestion{
			BookID:            b.ID,
			Title:             b.Title,
			Quantity:          b.Quantity,
			DaysUntilStockout: days,
			SuggestedQuantity: suggestedQuantity(&b),
			Priority:          forecastPriority(b.Quantity, days),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.Rank() > suggestions[j].Priority.Rank()
	})

	return suggestions
}

// daysUntilStockout is floor(quantity / velocity), or nil when the velocity
// is zero so the result cannot be estimated.
func daysUntilStockout(b *Book) *int {
	if !b.AverageSalesPerDay.IsPositive() {
		return nil
	}

	days := int(decimal.NewFromInt(int64(b.Quantity)).
		Div(b.AverageSalesPerDay).
		Floor().
		IntPart())
	return &days
}

// suggestedQuantity is the larger of refilling to the fill target and
// covering thirty days of sales at the current velocity.
func suggestedQuantity(b *Book) int {
	refill := b.FillTarget() - b.Quantity

	monthly := int(b.AverageSalesPerDay.
		Mul(decimal.NewFromInt(30)).
		Round(0).
		IntPart())

	if monthly > refill {
		return monthly
	}
	return refill
}

func forecastPriority(quantity int, days *int) AlertPriority {
	switch {
	case quantity == 0:
		return PriorityCritical
	case days != nil && *days <= 3:
		return PriorityHigh
	case days != nil && *days <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
