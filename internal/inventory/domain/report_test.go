package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

func reportBooks() []domain.Book {
	books := make([]domain.Book, 0, 10)
	for i := 0; i < 5; i++ {
		books = append(books, domain.Book{
			ID: fmt.Sprintf("ok-%d", i), Title: fmt.Sprintf("Title %d", i),
			Quantity: 10 + i, MinThreshold: 5, Status: domain.StatusInStock,
			UnitPrice: decimal.NewFromInt(int64(100 * (i + 1))),
			UpdatedAt: now.Add(time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 3; i++ {
		books = append(books, domain.Book{
			ID: fmt.Sprintf("oos-%d", i), Title: fmt.Sprintf("Gone %d", i),
			Quantity: 0, MinThreshold: 5, Status: domain.StatusOutOfStock,
		})
	}
	for i := 0; i < 2; i++ {
		books = append(books, domain.Book{
			ID: fmt.Sprintf("disc-%d", i), Title: fmt.Sprintf("Dead %d", i),
			Quantity: 1, MinThreshold: 5, Status: domain.StatusDiscontinued,
		})
	}
	return books
}

func TestGenerateReport_FilterComposition(t *testing.T) {
	report := domain.GenerateReport(reportBooks(), domain.ReportOptions{
		IncludeOutOfStock:   false,
		IncludeDiscontinued: false,
	}, now)

	if len(report.Books) != 5 {
		t.Errorf("books = %d, want 5 after both filters", len(report.Books))
	}
	if report.Summary.TotalBooks != 5 {
		t.Errorf("summary.TotalBooks = %d, want 5 (summary must cover filtered set)", report.Summary.TotalBooks)
	}
}

func TestGenerateReport_IncludeEverything(t *testing.T) {
	report := domain.GenerateReport(reportBooks(), domain.ReportOptions{
		IncludeOutOfStock:   true,
		IncludeDiscontinued: true,
	}, now)

	if len(report.Books) != 10 {
		t.Errorf("books = %d, want 10", len(report.Books))
	}
}

func TestGenerateReport_SortByValueDesc(t *testing.T) {
	report := domain.GenerateReport(reportBooks(), domain.ReportOptions{
		SortBy:    domain.SortByValue,
		SortOrder: domain.SortDesc,
	}, now)

	for i := 1; i < len(report.Books); i++ {
		prev, cur := report.Books[i-1].StockValue, report.Books[i].StockValue
		if prev.LessThan(cur) {
			t.Fatalf("report not sorted by value desc: %s before %s", prev, cur)
		}
	}
}

func TestGenerateReport_SortByStockAsc(t *testing.T) {
	report := domain.GenerateReport(reportBooks(), domain.ReportOptions{
		IncludeOutOfStock: true,
		SortBy:            domain.SortByStock,
		SortOrder:         domain.SortAsc,
	}, now)

	for i := 1; i < len(report.Books); i++ {
		if report.Books[i-1].Quantity > report.Books[i].Quantity {
			t.Fatal("report not sorted by stock asc")
		}
	}
}

func TestGenerateReport_StableOnEqualKeys(t *testing.T) {
	books := []domain.Book{
		{ID: "a", Title: "Same", Quantity: 5, MinThreshold: 3, Status: domain.StatusInStock},
		{ID: "b", Title: "Same", Quantity: 5, MinThreshold: 3, Status: domain.StatusInStock},
	}

	report := domain.GenerateReport(books, domain.ReportOptions{
		SortBy: domain.SortByTitle,
	}, now)

	if report.Books[0].ID != "a" || report.Books[1].ID != "b" {
		t.Error("equal sort keys must preserve input order")
	}
}

func TestGenerateReport_LineShape(t *testing.T) {
	books := []domain.Book{
		{ID: "x", Title: "Hamlet", Author: "Shakespeare", Quantity: 4, MinThreshold: 5,
			Status: domain.StatusLowStock, UnitPrice: decimal.NewFromInt(250), UpdatedAt: now},
	}

	report := domain.GenerateReport(books, domain.ReportOptions{}, now)
	line := report.Books[0]

	if line.ID != "x" || line.Title != "Hamlet" || line.Author != "Shakespeare" {
		t.Errorf("identity fields wrong: %+v", line)
	}
	if !line.StockValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("stock value = %s, want 1000", line.StockValue)
	}
	if !report.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %s, want %s", report.GeneratedAt, now)
	}
}
