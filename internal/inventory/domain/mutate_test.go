package domain_test

import (
	"testing"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func makeBook(quantity int, status domain.StockStatus) domain.Book {
	return domain.Book{
		ID:           "bk-1",
		Title:        "The Left Hand of Darkness",
		Quantity:     quantity,
		MinThreshold: 5,
		Status:       status,
	}
}

func TestApplyQuantityChange_ClampsNegative(t *testing.T) {
	for _, start := range []int{0, 3, 50} {
		book := makeBook(start, domain.Resolve(start, 5))
		updated, change := domain.ApplyQuantityChange(book, -5, "correction", "admin", now)

		if updated.Quantity != 0 {
			t.Errorf("start=%d: quantity = %d, want 0", start, updated.Quantity)
		}
		if change.NewQuantity != 0 {
			t.Errorf("start=%d: change.NewQuantity = %d, want 0", start, change.NewQuantity)
		}
		if change.OldQuantity != start {
			t.Errorf("start=%d: change.OldQuantity = %d, want %d", start, change.OldQuantity, start)
		}
	}
}

func TestApplyQuantityChange_RecomputesStatus(t *testing.T) {
	tests := []struct {
		name        string
		newQuantity int
		wantStatus  domain.StockStatus
		wantAvail   bool
	}{
		{"to zero", 0, domain.StatusOutOfStock, false},
		{"to low", 3, domain.StatusLowStock, true},
		{"to boundary", 5, domain.StatusLowStock, true},
		{"to in stock", 10, domain.StatusInStock, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := makeBook(7, domain.StatusInStock)
			updated, _ := domain.ApplyQuantityChange(book, tt.newQuantity, "sale", "order-sync", now)

			if updated.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", updated.Status, tt.wantStatus)
			}
			if updated.IsAvailable != tt.wantAvail {
				t.Errorf("is_available = %v, want %v", updated.IsAvailable, tt.wantAvail)
			}
		})
	}
}

func TestApplyQuantityChange_PreservesAdministrativeStatus(t *testing.T) {
	for _, status := range []domain.StockStatus{
		domain.StatusDiscontinued, domain.StatusPreOrder, domain.StatusComingSoon,
	} {
		book := makeBook(0, status)
		updated, _ := domain.ApplyQuantityChange(book, 40, "restock", "admin", now)

		if updated.Status != status {
			t.Errorf("status = %s, want %s untouched by quantity change", updated.Status, status)
		}
		if updated.Quantity != 40 {
			t.Errorf("quantity = %d, want 40", updated.Quantity)
		}
	}
}

func TestApplyQuantityChange_DiscontinuedNeverAvailable(t *testing.T) {
	book := makeBook(0, domain.StatusDiscontinued)
	updated, _ := domain.ApplyQuantityChange(book, 10, "restock", "admin", now)

	if updated.IsAvailable {
		t.Error("discontinued book must stay unavailable regardless of quantity")
	}
}

func TestApplyQuantityChange_LastRestocked(t *testing.T) {
	book := makeBook(10, domain.StatusInStock)

	updated, _ := domain.ApplyQuantityChange(book, 20, "restock", "admin", now)
	if updated.LastRestocked == nil || !updated.LastRestocked.Equal(now) {
		t.Error("increase should set LastRestocked")
	}

	earlier := now.Add(-48 * time.Hour)
	book.LastRestocked = &earlier
	updated, _ = domain.ApplyQuantityChange(book, 4, "sale", "order-sync", now)
	if updated.LastRestocked == nil || !updated.LastRestocked.Equal(earlier) {
		t.Error("decrease should preserve prior LastRestocked")
	}
}

func TestApplyQuantityChange_NoOpStillLogged(t *testing.T) {
	book := makeBook(7, domain.StatusInStock)
	_, change := domain.ApplyQuantityChange(book, 7, "audit adjustment", "admin", now)

	if change.OldQuantity != 7 || change.NewQuantity != 7 {
		t.Errorf("change = %d -> %d, want 7 -> 7", change.OldQuantity, change.NewQuantity)
	}
	if change.Reason != "audit adjustment" {
		t.Errorf("reason = %q", change.Reason)
	}
	if change.Actor != "admin" {
		t.Errorf("actor = %q", change.Actor)
	}
}

func TestApplyStatusChange(t *testing.T) {
	t.Run("discontinued hides by default", func(t *testing.T) {
		book := makeBook(10, domain.StatusInStock)
		book.Visibility = domain.VisibilityVisible

		updated := domain.ApplyStatusChange(book, domain.StatusDiscontinued, now)
		if updated.Status != domain.StatusDiscontinued {
			t.Errorf("status = %s", updated.Status)
		}
		if updated.IsAvailable {
			t.Error("discontinued book must not be available")
		}
		if updated.Visibility != domain.VisibilityHidden {
			t.Errorf("visibility = %s, want hidden", updated.Visibility)
		}
		if updated.Quantity != 10 {
			t.Errorf("quantity = %d, status change must not touch quantity", updated.Quantity)
		}
	})

	t.Run("discontinued stays visible when flagged", func(t *testing.T) {
		book := makeBook(10, domain.StatusInStock)
		book.ShowWhenDiscontinued = true

		updated := domain.ApplyStatusChange(book, domain.StatusDiscontinued, now)
		if updated.Visibility != domain.VisibilityVisible {
			t.Errorf("visibility = %s, want visible", updated.Visibility)
		}
	})

	t.Run("pre-order enables pre-order flags", func(t *testing.T) {
		book := makeBook(0, domain.StatusOutOfStock)

		updated := domain.ApplyStatusChange(book, domain.StatusPreOrder, now)
		if !updated.IsPreOrder || !updated.AllowPreOrder {
			t.Error("pre-order must set IsPreOrder and AllowPreOrder")
		}
	})

	t.Run("coming soon blocks availability", func(t *testing.T) {
		book := makeBook(3, domain.StatusLowStock)

		updated := domain.ApplyStatusChange(book, domain.StatusComingSoon, now)
		if updated.IsAvailable {
			t.Error("coming soon must not be available")
		}
		if !updated.AllowPreOrder {
			t.Error("coming soon must allow pre-orders")
		}
	})

	t.Run("returning to in stock re-resolves from quantity", func(t *testing.T) {
		book := makeBook(3, domain.StatusDiscontinued)
		book.Visibility = domain.VisibilityHidden
		book.IsPreOrder = true

		updated := domain.ApplyStatusChange(book, domain.StatusInStock, now)
		if updated.Status != domain.StatusLowStock {
			t.Errorf("status = %s, want low_stock resolved from quantity 3", updated.Status)
		}
		if updated.Visibility != domain.VisibilityVisible {
			t.Errorf("visibility = %s, want visible", updated.Visibility)
		}
		if updated.IsPreOrder {
			t.Error("IsPreOrder must be cleared")
		}
		if !updated.IsAvailable {
			t.Error("book with stock must be available again")
		}
	})
}
