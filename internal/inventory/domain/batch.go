package domain

import (
	"fmt"
	"time"
)

// BatchOpType identifies how a batch operation adjusts a book's quantity
type BatchOpType string

const (
	BatchOpAdd      BatchOpType = "add"
	BatchOpSubtract BatchOpType = "subtract"
	BatchOpSet      BatchOpType = "set"
)

// BatchOp is one per-book operation inside a bulk update. Reason overrides
// the batch-wide reason when set.
type BatchOp struct {
	BookID string      `json:"book_id"`
	Type   BatchOpType `json:"type"`
	Value  int         `json:"value"`
	Reason string      `json:"reason,omitempty"`
}

// BatchItemResult reports the fate of a single operation
type BatchItemResult struct {
	BookID string
	Book   *Book
	Change *StockChange
	Err    error
}

// BatchResult is the outcome of a bulk update. Callers must inspect Results
// to learn which operations failed; a batch never fails wholesale.
type BatchResult struct {
	Results   []BatchItemResult
	Succeeded int
	Failed    int
}

// ApplyBatch applies a list of operations against the supplied books.
// Operations are independent: an unresolved book id or malformed operation
// is captured per item and does not stop the rest. Repeated operations on
// the same book compound, since each runs against the previous result.
func ApplyBatch(books []Book, ops []BatchOp, defaultReason, actor string, now time.Time) BatchResult {
	byID := make(map[string]Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	result := BatchResult{Results: make([]BatchItemResult, 0, len(ops))}

	for _, op := range ops {
		item := BatchItemResult{BookID: op.BookID}

		book, ok := byID[op.BookID]
		if !ok {
			item.Err = fmt.Errorf("%w: %s", ErrBookNotFound, op.BookID)
			result.Results = append(result.Results, item)
			result.Failed++
			continue
		}

		newQuantity, err := resolveQuantity(book.Quantity, op)
		if err != nil {
			item.Err = err
			result.Results = append(result.Results, item)
			result.Failed++
			continue
		}

		reason := op.Reason
		if reason == "" {
			reason = defaultReason
		}

		updated, change := ApplyQuantityChange(book, newQuantity, reason, actor, now)
		byID[op.BookID] = updated

		item.Book = &updated
		item.Change = &change
		result.Results = append(result.Results, item)
		result.Succeeded++
	}

	return result
}

// resolveQuantity turns a relative operation into an absolute quantity.
// Subtract clamps at zero, same rule as single mutations.
func resolveQuantity(current int, op BatchOp) (int, error) {
	switch op.Type {
	case BatchOpAdd:
		return current + op.Value, nil
	case BatchOpSubtract:
		q := current - op.Value
		if q < 0 {
			q = 0
		}
		return q, nil
	case BatchOpSet:
		return op.Value, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, op.Type)
	}
}
