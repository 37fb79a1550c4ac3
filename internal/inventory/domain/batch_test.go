package domain_test

import (
	"errors"
	"testing"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

func batchBooks() []domain.Book {
	return []domain.Book{
		{ID: "a", Title: "A", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
		{ID: "b", Title: "B", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock},
		{ID: "c", Title: "C", Quantity: 0, MinThreshold: 5, Status: domain.StatusOutOfStock},
	}
}

func TestApplyBatch_Isolation(t *testing.T) {
	ops := []domain.BatchOp{
		{BookID: "a", Type: domain.BatchOpAdd, Value: 5},
		{BookID: "missing", Type: domain.BatchOpAdd, Value: 1},
		{BookID: "c", Type: domain.BatchOpSet, Value: 8},
	}

	result := domain.ApplyBatch(batchBooks(), ops, "bulk restock", "admin", now)

	if result.Succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", result.Succeeded)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}

	if result.Results[0].Err != nil {
		t.Errorf("op 1 should succeed: %v", result.Results[0].Err)
	}
	if !errors.Is(result.Results[1].Err, domain.ErrBookNotFound) {
		t.Errorf("op 2 err = %v, want ErrBookNotFound", result.Results[1].Err)
	}
	if result.Results[2].Err != nil {
		t.Errorf("op 3 should succeed despite op 2 failing: %v", result.Results[2].Err)
	}
	if got := result.Results[2].Book.Quantity; got != 8 {
		t.Errorf("op 3 quantity = %d, want 8", got)
	}
}

func TestApplyBatch_SubtractClampsAtZero(t *testing.T) {
	ops := []domain.BatchOp{
		{BookID: "b", Type: domain.BatchOpSubtract, Value: 10},
	}

	result := domain.ApplyBatch(batchBooks(), ops, "sale", "order-sync", now)

	if result.Results[0].Book.Quantity != 0 {
		t.Errorf("quantity = %d, want clamped to 0", result.Results[0].Book.Quantity)
	}
	if result.Results[0].Book.Status != domain.StatusOutOfStock {
		t.Errorf("status = %s, want out_of_stock", result.Results[0].Book.Status)
	}
}

func TestApplyBatch_RepeatedOpsCompound(t *testing.T) {
	ops := []domain.BatchOp{
		{BookID: "a", Type: domain.BatchOpAdd, Value: 5},
		{BookID: "a", Type: domain.BatchOpAdd, Value: 5},
	}

	result := domain.ApplyBatch(batchBooks(), ops, "restock", "admin", now)

	if got := result.Results[1].Book.Quantity; got != 20 {
		t.Errorf("quantity after two adds = %d, want 20", got)
	}
}

func TestApplyBatch_ReasonFallback(t *testing.T) {
	ops := []domain.BatchOp{
		{BookID: "a", Type: domain.BatchOpAdd, Value: 1},
		{BookID: "b", Type: domain.BatchOpAdd, Value: 1, Reason: "damaged return"},
	}

	result := domain.ApplyBatch(batchBooks(), ops, "bulk restock", "admin", now)

	if got := result.Results[0].Change.Reason; got != "bulk restock" {
		t.Errorf("reason = %q, want batch-wide reason", got)
	}
	if got := result.Results[1].Change.Reason; got != "damaged return" {
		t.Errorf("reason = %q, want per-op reason", got)
	}
}

func TestApplyBatch_UnknownOpType(t *testing.T) {
	ops := []domain.BatchOp{
		{BookID: "a", Type: "multiply", Value: 2},
	}

	result := domain.ApplyBatch(batchBooks(), ops, "", "admin", now)

	if result.Failed != 1 {
		t.Fatalf("failed = %d, want 1", result.Failed)
	}
	if !errors.Is(result.Results[0].Err, domain.ErrInvalidOperation) {
		t.Errorf("err = %v, want ErrInvalidOperation", result.Results[0].Err)
	}
}

func TestApplyBatch_EmptyOps(t *testing.T) {
	result := domain.ApplyBatch(batchBooks(), nil, "", "admin", now)
	if result.Succeeded != 0 || result.Failed != 0 || len(result.Results) != 0 {
		t.Errorf("empty batch should be a no-op, got %+v", result)
	}
}
