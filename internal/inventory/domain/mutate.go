package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplyQuantityChange applies an absolute quantity change to a book and
// returns the updated copy together with its change-log entry. Negative
// requests clamp to zero rather than erroring; that clamping is policy,
// not an oversight. A change entry is emitted even when the quantity is
// unchanged, so manual adjustments always leave an audit trail.
func ApplyQuantityChange(book Book, newQuantity int, reason, actor string, now time.Time) (Book, StockChange) {
	if newQuantity < 0 {
		newQuantity = 0
	}

	change := StockChange{
		ID:          uuid.NewString(),
		BookID:      book.ID,
		OldQuantity: book.Quantity,
		NewQuantity: newQuantity,
		Reason:      reason,
		Actor:       actor,
		CreatedAt:   now,
	}

	restocked := newQuantity > book.Quantity
	book.Quantity = newQuantity

	// Administrative statuses survive quantity changes; an explicit status
	// change is required to leave them.
	if !book.Status.IsAdministrative() {
		book.Status = Resolve(book.Quantity, book.MinThreshold)
	}

	book.IsAvailable = book.Quantity > 0 && book.Status != StatusDiscontinued
	if restocked {
		book.LastRestocked = &now
	}
	book.UpdatedAt = now

	return book, change
}

// ApplyStatusChange performs an administrative status override. Quantity is
// never touched. Requesting one of the quantity-derived statuses re-resolves
// from the current quantity instead of trusting the caller's value, keeping
// the persisted status consistent with the resolution rule.
func ApplyStatusChange(book Book, newStatus StockStatus, now time.Time) Book {
	switch newStatus {
	case StatusDiscontinued:
		book.Status = StatusDiscontinued
		book.IsAvailable = false
		if book.ShowWhenDiscontinued {
			book.Visibility = VisibilityVisible
		} else {
			book.Visibility = VisibilityHidden
		}
	case StatusPreOrder:
		book.Status = StatusPreOrder
		book.IsPreOrder = true
		book.AllowPreOrder = true
	case StatusComingSoon:
		book.Status = StatusComingSoon
		book.IsAvailable = false
		book.AllowPreOrder = true
	default:
		book.Status = Resolve(book.Quantity, book.MinThreshold)
		book.IsAvailable = book.Quantity > 0
		book.Visibility = VisibilityVisible
		book.IsPreOrder = false
	}

	book.UpdatedAt = now
	return book
}
