package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

func TestBulkAdjustRequiresOperations(t *testing.T) {
	handler := NewBulkAdjustHandler(newFakeBookRepository(), nil)

	if _, err := handler.Handle(context.Background(), BulkAdjustCommand{}); err == nil {
		t.Fatal("Handle() accepted empty operation list")
	}
}

func TestBulkAdjustAppliesAllOperations(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
		domain.Book{ID: "b2", Title: "Hyperion", Quantity: 4, MinThreshold: 5, Status: domain.StatusLowStock},
	)
	pub := &fakePublisher{}
	handler := NewBulkAdjustHandler(repo, pub)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: domain.BatchOpSubtract, Value: 3},
			{BookID: "b2", Type: domain.BatchOpAdd, Value: 20},
		},
		Reason: "order 42",
		Actor:  "order-service",
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Succeeded != 2 || result.Failed != 0 {
		t.Fatalf("succeeded/failed = %d/%d, want 2/0", result.Succeeded, result.Failed)
	}

	b1, _ := repo.FindByID("b1")
	if b1.Quantity != 7 {
		t.Errorf("b1 quantity = %d, want 7", b1.Quantity)
	}
	b2, _ := repo.FindByID("b2")
	if b2.Quantity != 24 {
		t.Errorf("b2 quantity = %d, want 24", b2.Quantity)
	}
	if b2.Status != domain.StatusInStock {
		t.Errorf("b2 status = %q, want %q after restock", b2.Status, domain.StatusInStock)
	}

	if len(pub.adjusted) != 2 {
		t.Errorf("published %d adjusted events, want 2", len(pub.adjusted))
	}
}

func TestBulkAdjustUnknownBookIsPerItemFailure(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
	)
	handler := NewBulkAdjustHandler(repo, nil)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: domain.BatchOpSet, Value: 6},
			{BookID: "ghost", Type: domain.BatchOpSet, Value: 1},
		},
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Succeeded != 1 || result.Failed != 1 {
		t.Fatalf("succeeded/failed = %d/%d, want 1/1", result.Succeeded, result.Failed)
	}

	var failed *BulkItemResult
	for i := range result.Results {
		if result.Results[i].BookID == "ghost" {
			failed = &result.Results[i]
		}
	}
	if failed == nil || failed.Error == "" {
		t.Error("unknown book did not surface a per-item error")
	}

	// The known book's update still landed
	b1, _ := repo.FindByID("b1")
	if b1.Quantity != 6 {
		t.Errorf("b1 quantity = %d, want 6", b1.Quantity)
	}
}

func TestBulkAdjustRepeatedOperationsCompound(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
	)
	handler := NewBulkAdjustHandler(repo, nil)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: domain.BatchOpSubtract, Value: 4},
			{BookID: "b1", Type: domain.BatchOpSubtract, Value: 4},
		},
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Succeeded != 2 {
		t.Fatalf("succeeded = %d, want 2", result.Succeeded)
	}

	b1, _ := repo.FindByID("b1")
	if b1.Quantity != 2 {
		t.Errorf("b1 quantity = %d, want 2 after compounded subtracts", b1.Quantity)
	}
}

func TestBulkAdjustSaveFailureIsPerItem(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
		domain.Book{ID: "b2", Title: "Hyperion", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
	)
	repo.saveFail["b2"] = true
	handler := NewBulkAdjustHandler(repo, nil)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: domain.BatchOpSet, Value: 5},
			{BookID: "b2", Type: domain.BatchOpSet, Value: 5},
		},
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Succeeded != 1 || result.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 1/1", result.Succeeded, result.Failed)
	}
}

func TestBulkAdjustLoadFailureIsNotReportedAsMissing(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
	)
	repo.findErrs["b2"] = errors.New("connection reset")
	handler := NewBulkAdjustHandler(repo, nil)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: domain.BatchOpSet, Value: 6},
			{BookID: "b2", Type: domain.BatchOpSet, Value: 6},
		},
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Succeeded != 1 || result.Failed != 1 {
		t.Fatalf("succeeded/failed = %d/%d, want 1/1", result.Succeeded, result.Failed)
	}

	var failed *BulkItemResult
	for i := range result.Results {
		if result.Results[i].BookID == "b2" {
			failed = &result.Results[i]
		}
	}
	if failed == nil {
		t.Fatal("no result for the book that failed to load")
	}
	if !strings.Contains(failed.Error, "connection reset") {
		t.Errorf("error = %q, want the underlying load failure", failed.Error)
	}
	if strings.Contains(failed.Error, "not found") {
		t.Errorf("error = %q, misreports a load failure as a missing record", failed.Error)
	}
}

func TestBulkAdjustInvalidOperationType(t *testing.T) {
	repo := newFakeBookRepository(
		domain.Book{ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock},
	)
	handler := NewBulkAdjustHandler(repo, nil)

	result, err := handler.Handle(context.Background(), BulkAdjustCommand{
		Operations: []domain.BatchOp{
			{BookID: "b1", Type: "divide", Value: 2},
		},
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1 for unknown operation type", result.Failed)
	}
}
