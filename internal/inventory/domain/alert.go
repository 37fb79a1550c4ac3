package domain

import (
	"fmt"
	"sort"
)

// AlertPriority ranks how urgently a record needs attention
type AlertPriority string

const (
	PriorityCritical AlertPriority = "critical"
	PriorityHigh     AlertPriority = "high"
	PriorityMedium   AlertPriority = "medium"
	PriorityLow      AlertPriority = "low"
)

var priorityRank = map[AlertPriority]int{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

// Rank returns the fixed numeric rank used for ordering
func (p AlertPriority) Rank() int {
	return priorityRank[p]
}

// Alert is a derived stock warning. DaysUntilStockout is nil when it cannot
// be estimated because the sales velocity is zero or unknown.
type Alert struct {
	BookID            string        `json:"book_id"`
	Title             string        `json:"title"`
	Quantity          int           `json:"quantity"`
	Priority          AlertPriority `json:"priority"`
	Message           string        `json:"message"`
	DaysUntilStockout *int          `json:"days_until_stockout,omitempty"`
}

// GenerateAlerts derives a prioritized alert list over low-stock and
// out-of-stock books. Alerts are ordered by priority descending, ties broken
// by ascending quantity so the emptiest stock surfaces first. The message
// format is an external-facing contract; consumers pattern-match on it.
func GenerateAlerts(books []Book) []Alert {
	alerts := make([]Alert, 0)

	for _, b := range books {
		if b.Status != StatusLowStock && b.Status != StatusOutOfStock {
			continue
		}

		alert := Alert{
			BookID:            b.ID,
			Title:             b.Title,
			Quantity:          b.Quantity,
			Priority:          alertPriority(b),
			DaysUntilStockout: daysUntilStockout(&b),
		}

		if b.Quantity == 0 {
			alert.Message = fmt.Sprintf("%q is out of stock", b.Title)
		} else {
			alert.Message = fmt.Sprintf("%q is low on stock: %d left (minimum %d)", b.Title, b.Quantity, b.MinThreshold)
		}

		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Priority != alerts[j].Priority {
			return alerts[i].Priority.Rank() > alerts[j].Priority.Rank()
		}
		return alerts[i].Quantity < alerts[j].Quantity
	})

	return alerts
}

func alertPriority(b Book) AlertPriority {
	switch {
	case b.Quantity == 0:
		return PriorityCritical
	case b.Quantity <= b.MinThreshold/2:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
