package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

func TestForecast_Eligibility(t *testing.T) {
	books := []domain.Book{
		// Below threshold, no velocity: eligible
		{ID: "low", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock},
		// Above threshold but selling out within a week: eligible
		{ID: "fast", Quantity: 20, MinThreshold: 5, Status: domain.StatusInStock,
			AverageSalesPerDay: decimal.NewFromInt(4)},
		// Healthy and slow moving: not eligible
		{ID: "slow", Quantity: 60, MinThreshold: 5, Status: domain.StatusInStock,
			AverageSalesPerDay: decimal.NewFromInt(1)},
	}

	suggestions := domain.Forecast(books)

	ids := make(map[string]bool)
	for _, s := range suggestions {
		ids[s.BookID] = true
	}

	if !ids["low"] || !ids["fast"] {
		t.Errorf("expected low and fast to be eligible, got %v", ids)
	}
	if ids["slow"] {
		t.Error("slow mover with healthy stock must not appear")
	}
}

// A record with zero velocity must carry the explicit unknown sentinel,
// never 0 and never a number standing in for infinity.
func TestForecast_UnknownSentinel(t *testing.T) {
	books := []domain.Book{
		{ID: "a", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock},
	}

	suggestions := domain.Forecast(books)
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].DaysUntilStockout != nil {
		t.Errorf("days until stockout = %d, want nil sentinel", *suggestions[0].DaysUntilStockout)
	}
}

func TestForecast_DaysUntilStockoutFloor(t *testing.T) {
	books := []domain.Book{
		{ID: "a", Quantity: 7, MinThreshold: 10, Status: domain.StatusLowStock,
			AverageSalesPerDay: decimal.NewFromInt(2)},
	}

	suggestions := domain.Forecast(books)
	if suggestions[0].DaysUntilStockout == nil || *suggestions[0].DaysUntilStockout != 3 {
		t.Errorf("days = %v, want floor(7/2) = 3", suggestions[0].DaysUntilStockout)
	}
}

func TestForecast_SuggestedQuantity(t *testing.T) {
	tests := []struct {
		name string
		book domain.Book
		want int
	}{
		{
			name: "fill target dominates",
			// fill target 4*5=20, refill 20-2=18; 30-day demand 0
			book: domain.Book{ID: "a", Quantity: 2, MinThreshold: 5, Status: domain.StatusLowStock},
			want: 18,
		},
		{
			name: "monthly demand dominates",
			// refill 20-2=18; 30-day demand 30
			book: domain.Book{ID: "b", Quantity: 2, MinThreshold: 5, Status: domain.StatusLowStock,
				AverageSalesPerDay: decimal.NewFromInt(1)},
			want: 30,
		},
		{
			name: "explicit max threshold",
			// refill 50-2=48; 30-day demand 30
			book: domain.Book{ID: "c", Quantity: 2, MinThreshold: 5, MaxThreshold: 50,
				Status: domain.StatusLowStock, AverageSalesPerDay: decimal.NewFromInt(1)},
			want: 48,
		},
		{
			name: "fractional velocity rounds to whole units",
			// refill 20-0=20; 30-day demand 0.7*30=21
			book: domain.Book{ID: "d", Quantity: 0, MinThreshold: 5, Status: domain.StatusOutOfStock,
				AverageSalesPerDay: decimal.NewFromFloat(0.7)},
			want: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := domain.Forecast([]domain.Book{tt.book})
			if len(suggestions) != 1 {
				t.Fatalf("got %d suggestions, want 1", len(suggestions))
			}
			if suggestions[0].SuggestedQuantity != tt.want {
				t.Errorf("suggested = %d, want %d", suggestions[0].SuggestedQuantity, tt.want)
			}
		})
	}
}

func TestForecast_PriorityRanking(t *testing.T) {
	books := []domain.Book{
		// days = 5 -> medium
		{ID: "medium", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock,
			AverageSalesPerDay: decimal.NewFromInt(2)},
		// no velocity, low stock -> low
		{ID: "low", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock},
		// quantity 0 -> critical
		{ID: "critical", Quantity: 0, MinThreshold: 5, Status: domain.StatusOutOfStock},
		// days = 1 -> high
		{ID: "high", Quantity: 2, MinThreshold: 5, Status: domain.StatusLowStock,
			AverageSalesPerDay: decimal.NewFromInt(2)},
	}

	suggestions := domain.Forecast(books)
	if len(suggestions) != 4 {
		t.Fatalf("got %d suggestions, want 4", len(suggestions))
	}

	wantOrder := []string{"critical", "high", "medium", "low"}
	for i, want := range wantOrder {
		if suggestions[i].BookID != want {
			t.Errorf("position %d = %s, want %s", i, suggestions[i].BookID, want)
		}
	}
}

func TestForecast_StableWithinPriority(t *testing.T) {
	books := []domain.Book{
		{ID: "first", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock},
		{ID: "second", Quantity: 4, MinThreshold: 5, Status: domain.StatusLowStock},
	}

	suggestions := domain.Forecast(books)
	if suggestions[0].BookID != "first" || suggestions[1].BookID != "second" {
		t.Error("equal priorities must keep input order")
	}
}
