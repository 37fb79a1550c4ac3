package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minThreshold int
		want         domain.StockStatus
	}{
		{"zero quantity", 0, 5, domain.StatusOutOfStock},
		{"negative quantity", -3, 5, domain.StatusOutOfStock},
		{"one below threshold", 4, 5, domain.StatusLowStock},
		{"exactly at threshold", 5, 5, domain.StatusLowStock},
		{"one above threshold", 6, 5, domain.StatusInStock},
		{"well stocked", 100, 5, domain.StatusInStock},
		{"zero threshold positive quantity", 1, 0, domain.StatusInStock},
		{"zero threshold zero quantity", 0, 0, domain.StatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.Resolve(tt.quantity, tt.minThreshold); got != tt.want {
				t.Errorf("Resolve(%d, %d) = %s, want %s", tt.quantity, tt.minThreshold, got, tt.want)
			}
		})
	}
}

// Resolve must be total over the quantity-derived subset: no input may map
// to an administrative status.
func TestResolve_Totality(t *testing.T) {
	for quantity := 0; quantity <= 50; quantity++ {
		for threshold := 0; threshold <= 20; threshold++ {
			got := domain.Resolve(quantity, threshold)
			switch got {
			case domain.StatusInStock, domain.StatusLowStock, domain.StatusOutOfStock:
			default:
				t.Fatalf("Resolve(%d, %d) = %s, not a quantity-derived status", quantity, threshold, got)
			}
			if quantity == 0 && got != domain.StatusOutOfStock {
				t.Fatalf("Resolve(0, %d) = %s, want out_of_stock", threshold, got)
			}
			if quantity == threshold && quantity > 0 && got != domain.StatusLowStock {
				t.Fatalf("Resolve(%d, %d) = %s, want low_stock at the boundary", quantity, threshold, got)
			}
		}
	}
}

func TestIsAdministrative(t *testing.T) {
	admin := []domain.StockStatus{domain.StatusDiscontinued, domain.StatusPreOrder, domain.StatusComingSoon}
	for _, s := range admin {
		if !s.IsAdministrative() {
			t.Errorf("%s should be administrative", s)
		}
	}

	derived := []domain.StockStatus{domain.StatusInStock, domain.StatusLowStock, domain.StatusOutOfStock}
	for _, s := range derived {
		if s.IsAdministrative() {
			t.Errorf("%s should not be administrative", s)
		}
	}
}

func TestFillTarget(t *testing.T) {
	b := domain.Book{MinThreshold: 5}
	if got := b.FillTarget(); got != 20 {
		t.Errorf("FillTarget with unset max = %d, want 20", got)
	}

	b.MaxThreshold = 12
	if got := b.FillTarget(); got != 12 {
		t.Errorf("FillTarget with max set = %d, want 12", got)
	}
}

func TestStockValue(t *testing.T) {
	b := domain.Book{Quantity: 3, UnitPrice: decimal.NewFromInt(2000)}
	if !b.StockValue().Equal(decimal.NewFromInt(6000)) {
		t.Errorf("StockValue = %s, want 6000", b.StockValue())
	}
}
