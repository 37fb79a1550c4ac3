package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SortField selects the report sort key
type SortField string

const (
	SortByStock   SortField = "stock"
	SortByValue   SortField = "value"
	SortByTitle   SortField = "title"
	SortByPrice   SortField = "price"
	SortByUpdated SortField = "updated"
)

// SortOrder selects the report sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ReportOptions controls filtering and ordering of a generated report
type ReportOptions struct {
	IncludeOutOfStock   bool      `json:"include_out_of_stock"`
	IncludeDiscontinued bool      `json:"include_discontinued"`
	SortBy              SortField `json:"sort_by"`
	SortOrder           SortOrder `json:"sort_order"`
}

// ReportLine is the export row shape for one book
type ReportLine struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Author       string          `json:"author"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	Status       StockStatus     `json:"status"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockValue   decimal.Decimal `json:"stock_value"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Report is the shaped export object handed to the dashboard
type Report struct {
	Summary     Summary      `json:"summary"`
	Books       []ReportLine `json:"books"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// GenerateReport filters, sorts, and aggregates books into a report.
// Filters apply before sorting and before aggregation, so the summary
// describes the filtered set. The sort is stable: equal keys preserve
// input order for reproducible report diffs.
func GenerateReport(books []Book, opts ReportOptions, now time.Time) Report {
	filtered := make([]Book, 0, len(books))
	for _, b := range books {
		if !opts.IncludeOutOfStock && b.Quantity == 0 {
			continue
		}
		if !opts.IncludeDiscontinued && b.Status == StatusDiscontinued {
			continue
		}
		filtered = append(filtered, b)
	}

	sortBooks(filtered, opts.SortBy, opts.SortOrder)

	lines := make([]ReportLine, len(filtered))
	for i, b := range filtered {
		lines[i] = ReportLine{
			ID:           b.ID,
			Title:        b.Title,
			Author:       b.Author,
			Quantity:     b.Quantity,
			MinThreshold: b.MinThreshold,
			Status:       b.Status,
			UnitPrice:    b.UnitPrice,
			StockValue:   b.StockValue(),
			UpdatedAt:    b.UpdatedAt,
		}
	}

	return Report{
		Summary:     Aggregate(filtered),
		Books:       lines,
		GeneratedAt: now,
	}
}

func sortBooks(books []Book, field SortField, order SortOrder) {
	if field == "" {
		field = SortByTitle
	}

	less := func(a, b *Book) bool { return a.Title < b.Title }
	switch field {
	case SortByStock:
		less = func(a, b *Book) bool { return a.Quantity < b.Quantity }
	case SortByValue:
		// Stock value is computed per record at sort time, not stored
		less = func(a, b *Book) bool { return a.StockValue().LessThan(b.StockValue()) }
	case SortByPrice:
		less = func(a, b *Book) bool { return a.UnitPrice.LessThan(b.UnitPrice) }
	case SortByUpdated:
		less = func(a, b *Book) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	}

	sort.SliceStable(books, func(i, j int) bool {
		if order == SortDesc {
			return less(&books[j], &books[i])
		}
		return less(&books[i], &books[j])
	})
}
