package query

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// stubBookRepository serves canned data for query handler tests
type stubBookRepository struct {
	books   []domain.Book
	changes []domain.StockChange
	err     error

	lastLimit  int
	lastStatus domain.StockStatus
}

func (r *stubBookRepository) Create(*domain.Book) error { return nil }

func (r *stubBookRepository) FindByID(id string) (*domain.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrBookNotFound
}

func (r *stubBookRepository) FindAll(limit, offset int) ([]domain.Book, error) {
	r.lastLimit = limit
	return r.books, r.err
}

func (r *stubBookRepository) FindByStatus(status domain.StockStatus, limit, offset int) ([]domain.Book, error) {
	r.lastStatus = status
	r.lastLimit = limit
	var out []domain.Book
	for _, b := range r.books {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, r.err
}

func (r *stubBookRepository) Update(*domain.Book) error { return nil }
func (r *stubBookRepository) Delete(string) error       { return nil }
func (r *stubBookRepository) Count() (int64, error)     { return int64(len(r.books)), nil }

func (r *stubBookRepository) SaveWithChange(*domain.Book, *domain.StockChange) error { return nil }

func (r *stubBookRepository) ListChanges(bookID string, limit int) ([]domain.StockChange, error) {
	r.lastLimit = limit
	return r.changes, r.err
}

func TestGetBookRequiresID(t *testing.T) {
	handler := NewGetBookHandler(&stubBookRepository{})

	if _, err := handler.Handle(GetBookQuery{}); err == nil {
		t.Fatal("Handle() accepted empty book id")
	}
}

func TestGetBookUnknownID(t *testing.T) {
	handler := NewGetBookHandler(&stubBookRepository{})

	_, err := handler.Handle(GetBookQuery{BookID: "ghost"})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("Handle() error = %v, want ErrBookNotFound", err)
	}
}

func TestListBooksDefaultsAndCapsLimit(t *testing.T) {
	repo := &stubBookRepository{}
	handler := NewListBooksHandler(repo)

	if _, err := handler.Handle(ListBooksQuery{}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if repo.lastLimit != 50 {
		t.Errorf("default limit = %d, want 50", repo.lastLimit)
	}

	if _, err := handler.Handle(ListBooksQuery{Limit: 9000}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if repo.lastLimit != 500 {
		t.Errorf("capped limit = %d, want 500", repo.lastLimit)
	}
}

func TestListBooksFiltersByStatus(t *testing.T) {
	repo := &stubBookRepository{books: []domain.Book{
		{ID: "b1", Status: domain.StatusInStock},
		{ID: "b2", Status: domain.StatusLowStock},
	}}
	handler := NewListBooksHandler(repo)

	books, err := handler.Handle(ListBooksQuery{Status: domain.StatusLowStock})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if len(books) != 1 || books[0].ID != "b2" {
		t.Errorf("filtered books = %v, want only b2", books)
	}
}

func TestListChangesRequiresBookID(t *testing.T) {
	handler := NewListChangesHandler(&stubBookRepository{})

	if _, err := handler.Handle(ListChangesQuery{}); err == nil {
		t.Fatal("Handle() accepted empty book id")
	}
}

func TestListChangesDefaultsLimit(t *testing.T) {
	repo := &stubBookRepository{changes: []domain.StockChange{
		{ID: "c1", BookID: "b1", OldQuantity: 10, NewQuantity: 8, CreatedAt: time.Now()},
	}}
	handler := NewListChangesHandler(repo)

	changes, err := handler.Handle(ListChangesQuery{BookID: "b1"})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if repo.lastLimit != 50 {
		t.Errorf("default limit = %d, want 50", repo.lastLimit)
	}
	if len(changes) != 1 {
		t.Errorf("changes = %d, want 1", len(changes))
	}
}

func TestGetSummaryAggregatesSnapshot(t *testing.T) {
	repo := &stubBookRepository{books: []domain.Book{
		{ID: "b1", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock, UnitPrice: decimal.NewFromInt(20)},
		{ID: "b2", Quantity: 0, MinThreshold: 5, Status: domain.StatusOutOfStock, UnitPrice: decimal.NewFromInt(15)},
	}}
	handler := NewGetSummaryHandler(repo)

	summary, err := handler.Handle(GetSummaryQuery{})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if summary.TotalBooks != 2 {
		t.Errorf("TotalBooks = %d, want 2", summary.TotalBooks)
	}
	if !summary.TotalValue.Equal(decimal.NewFromInt(200)) {
		t.Errorf("TotalValue = %s, want 200", summary.TotalValue)
	}
}

func TestGetSummaryPropagatesRepositoryError(t *testing.T) {
	repo := &stubBookRepository{err: errors.New("db down")}
	handler := NewGetSummaryHandler(repo)

	if _, err := handler.Handle(GetSummaryQuery{}); err == nil {
		t.Fatal("Handle() swallowed repository error")
	}
}
