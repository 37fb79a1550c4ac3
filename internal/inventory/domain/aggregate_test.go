package domain_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// The scenario from the dashboard acceptance sheet: three books with known
// statuses and a 16000 total value.
func scenarioBooks() []domain.Book {
	return []domain.Book{
		{ID: "a", Quantity: 0, MinThreshold: 5, UnitPrice: decimal.NewFromInt(1000), Status: domain.Resolve(0, 5)},
		{ID: "b", Quantity: 3, MinThreshold: 5, UnitPrice: decimal.NewFromInt(2000), Status: domain.Resolve(3, 5)},
		{ID: "c", Quantity: 20, MinThreshold: 5, UnitPrice: decimal.NewFromInt(500), Status: domain.Resolve(20, 5)},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	books := scenarioBooks()

	if books[0].Status != domain.StatusOutOfStock ||
		books[1].Status != domain.StatusLowStock ||
		books[2].Status != domain.StatusInStock {
		t.Fatalf("unexpected statuses: %s %s %s", books[0].Status, books[1].Status, books[2].Status)
	}

	summary := domain.Aggregate(books)

	if summary.TotalBooks != 3 {
		t.Errorf("total books = %d, want 3", summary.TotalBooks)
	}
	if summary.TotalUnits != 23 {
		t.Errorf("total units = %d, want 23", summary.TotalUnits)
	}
	if !summary.TotalValue.Equal(decimal.NewFromInt(16000)) {
		t.Errorf("total value = %s, want 16000", summary.TotalValue)
	}
	if summary.StatusCounts[domain.StatusOutOfStock] != 1 ||
		summary.StatusCounts[domain.StatusLowStock] != 1 ||
		summary.StatusCounts[domain.StatusInStock] != 1 {
		t.Errorf("status counts = %v", summary.StatusCounts)
	}
}

func TestAggregate_OrderIndependence(t *testing.T) {
	books := scenarioBooks()
	want := domain.Aggregate(books)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(books), func(a, b int) { books[a], books[b] = books[b], books[a] })
		got := domain.Aggregate(books)

		if got.TotalUnits != want.TotalUnits {
			t.Fatalf("total units changed with input order: %d != %d", got.TotalUnits, want.TotalUnits)
		}
		if !got.TotalValue.Equal(want.TotalValue) {
			t.Fatalf("total value changed with input order: %s != %s", got.TotalValue, want.TotalValue)
		}
		for status, count := range want.StatusCounts {
			if got.StatusCounts[status] != count {
				t.Fatalf("bucket %s changed with input order", status)
			}
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	summary := domain.Aggregate(nil)

	if summary.TotalBooks != 0 || summary.TotalUnits != 0 {
		t.Errorf("empty aggregate should be zero, got %+v", summary)
	}
	if !summary.TotalValue.IsZero() {
		t.Errorf("total value = %s, want 0", summary.TotalValue)
	}
	if !summary.AverageUnitsPerBook.IsZero() {
		t.Errorf("average = %s, want 0 and not a division error", summary.AverageUnitsPerBook)
	}
}

func TestAggregate_Average(t *testing.T) {
	summary := domain.Aggregate(scenarioBooks())

	want := decimal.NewFromFloat(7.67) // 23 / 3 rounded to 2 places
	if !summary.AverageUnitsPerBook.Equal(want) {
		t.Errorf("average = %s, want %s", summary.AverageUnitsPerBook, want)
	}
}

func TestBuckets_UsesPersistedStatus(t *testing.T) {
	// Bucket by the stored status, not a recomputation
	books := []domain.Book{
		{ID: "x", Quantity: 50, MinThreshold: 5, Status: domain.StatusDiscontinued},
	}

	buckets := domain.Buckets(books)
	if len(buckets[domain.StatusDiscontinued]) != 1 {
		t.Error("book must land in its persisted status bucket")
	}
	if len(buckets[domain.StatusInStock]) != 0 {
		t.Error("bucket assignment must not recompute status from quantity")
	}
}
