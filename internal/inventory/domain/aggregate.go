package domain

import "github.com/shopspring/decimal"

// Summary is a derived aggregate over a set of books, recomputed on demand
// and never persisted.
type Summary struct {
	TotalBooks          int                 `json:"total_books"`
	StatusCounts        map[StockStatus]int `json:"status_counts"`
	TotalUnits          int                 `json:"total_units"`
	TotalValue          decimal.Decimal     `json:"total_value"`
	AverageUnitsPerBook decimal.Decimal     `json:"average_units_per_book"`
}

// Aggregate partitions books into status buckets and computes summary
// statistics. A book counts toward its persisted status, not a
// recomputation. Output does not depend on input order.
func Aggregate(books []Book) Summary {
	summary := Summary{
		TotalBooks:   len(books),
		StatusCounts: make(map[StockStatus]int),
		TotalValue:   decimal.Zero,
	}

	for _, b := range books {
		summary.StatusCounts[b.Status]++
		summary.TotalUnits += b.Quantity
		summary.TotalValue = summary.TotalValue.Add(b.StockValue())
	}

	summary.AverageUnitsPerBook = decimal.Zero
	if summary.TotalBooks > 0 {
		summary.AverageUnitsPerBook = decimal.NewFromInt(int64(summary.TotalUnits)).
			Div(decimal.NewFromInt(int64(summary.TotalBooks))).
			Round(2)
	}

	return summary
}

// Buckets groups books by their persisted status, preserving input order
// within each bucket.
func Buckets(books []Book) map[StockStatus][]Book {
	buckets := make(map[StockStatus][]Book)
	for _, b := range books {
		buckets[b.Status] = append(buckets[b.Status], b)
	}
	return buckets
}
