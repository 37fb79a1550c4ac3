package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/kafka"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

func init() {
	logger.Init("command-test", true)
}

// fakeBookRepository is an in-memory BookRepository for handler tests
type fakeBookRepository struct {
	books    map[string]domain.Book
	changes  []domain.StockChange
	saveErr  error
	saveFail map[string]bool
	findErrs map[string]error
}

func newFakeBookRepository(books ...domain.Book) *fakeBookRepository {
	repo := &fakeBookRepository{
		books:    make(map[string]domain.Book),
		saveFail: make(map[string]bool),
		findErrs: make(map[string]error),
	}
	for _, b := range books {
		repo.books[b.ID] = b
	}
	return repo
}

func (r *fakeBookRepository) Create(book *domain.Book) error {
	r.books[book.ID] = *book
	return nil
}

func (r *fakeBookRepository) FindByID(id string) (*domain.Book, error) {
	if err := r.findErrs[id]; err != nil {
		return nil, err
	}
	book, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return &book, nil
}

func (r *fakeBookRepository) FindAll(limit, offset int) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *fakeBookRepository) FindByStatus(status domain.StockStatus, limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	for _, b := range r.books {
		if b.Status == status {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *fakeBookRepository) Update(book *domain.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return domain.ErrBookNotFound
	}
	r.books[book.ID] = *book
	return nil
}

func (r *fakeBookRepository) Delete(id string) error {
	if _, ok := r.books[id]; !ok {
		return domain.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepository) Count() (int64, error) {
	return int64(len(r.books)), nil
}

func (r *fakeBookRepository) SaveWithChange(book *domain.Book, change *domain.StockChange) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.saveFail[book.ID] {
		return fmt.Errorf("save rejected for %s", book.ID)
	}
	r.books[book.ID] = *book
	r.changes = append(r.changes, *change)
	return nil
}

func (r *fakeBookRepository) ListChanges(bookID string, limit int) ([]domain.StockChange, error) {
	var changes []domain.StockChange
	for _, c := range r.changes {
		if c.BookID == bookID {
			changes = append(changes, c)
		}
	}
	return changes, nil
}

// fakePublisher records published events
type fakePublisher struct {
	adjusted []kafka.StockAdjustedEvent
	alerts   []kafka.StockAlertEvent
	err      error
}

func (p *fakePublisher) PublishStockAdjusted(ctx context.Context, event kafka.StockAdjustedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.adjusted = append(p.adjusted, event)
	return nil
}

func (p *fakePublisher) PublishStockAlert(ctx context.Context, event kafka.StockAlertEvent) error {
	if p.err != nil {
		return p.err
	}
	p.alerts = append(p.alerts, event)
	return nil
}

func TestAdjustStockRequiresBookID(t *testing.T) {
	handler := NewAdjustStockHandler(newFakeBookRepository(), nil)

	_, err := handler.Handle(context.Background(), AdjustStockCommand{NewQuantity: 10})
	if err == nil {
		t.Fatal("Handle() accepted empty book id")
	}
}

func TestAdjustStockUnknownBook(t *testing.T) {
	handler := NewAdjustStockHandler(newFakeBookRepository(), nil)

	_, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "missing", NewQuantity: 10})
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("Handle() error = %v, want ErrBookNotFound", err)
	}
}

func TestAdjustStockPersistsBookAndChange(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 20, MinThreshold: 5, Status: domain.StatusInStock,
	})
	handler := NewAdjustStockHandler(repo, nil)

	book, err := handler.Handle(context.Background(), AdjustStockCommand{
		BookID:      "b1",
		NewQuantity: 12,
		Reason:      "recount",
		Actor:       "alice",
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if book.Quantity != 12 {
		t.Errorf("quantity = %d, want 12", book.Quantity)
	}
	if len(repo.changes) != 1 {
		t.Fatalf("recorded %d changes, want 1", len(repo.changes))
	}
	change := repo.changes[0]
	if change.OldQuantity != 20 || change.NewQuantity != 12 {
		t.Errorf("change = %d->%d, want 20->12", change.OldQuantity, change.NewQuantity)
	}
	if change.Actor != "alice" {
		t.Errorf("actor = %q, want alice", change.Actor)
	}
}

func TestAdjustStockDefaultsActor(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 10, MinThreshold: 5, Status: domain.StatusInStock,
	})
	handler := NewAdjustStockHandler(repo, nil)

	if _, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "b1", NewQuantity: 8}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if repo.changes[0].Actor != "admin" {
		t.Errorf("actor = %q, want admin", repo.changes[0].Actor)
	}
}

func TestAdjustStockPublishesAdjustedEvent(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 20, MinThreshold: 5, Status: domain.StatusInStock,
	})
	pub := &fakePublisher{}
	handler := NewAdjustStockHandler(repo, pub)

	if _, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "b1", NewQuantity: 15}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if len(pub.adjusted) != 1 {
		t.Fatalf("published %d adjusted events, want 1", len(pub.adjusted))
	}
	if pub.adjusted[0].NewQuantity != 15 {
		t.Errorf("event new quantity = %d, want 15", pub.adjusted[0].NewQuantity)
	}
	if len(pub.alerts) != 0 {
		t.Errorf("published %d alerts for a healthy quantity, want 0", len(pub.alerts))
	}
}

func TestAdjustStockAlertsOnEnteringLowStock(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 20, MinThreshold: 5, Status: domain.StatusInStock,
	})
	pub := &fakePublisher{}
	handler := NewAdjustStockHandler(repo, pub)

	if _, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "b1", NewQuantity: 3}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if len(pub.alerts) != 1 {
		t.Fatalf("published %d alerts, want 1", len(pub.alerts))
	}
}

func TestAdjustStockNoAlertWhileAlreadyLow(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 3, MinThreshold: 5, Status: domain.StatusLowStock,
	})
	pub := &fakePublisher{}
	handler := NewAdjustStockHandler(repo, pub)

	if _, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "b1", NewQuantity: 2}); err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if len(pub.alerts) != 0 {
		t.Errorf("published %d alerts while already low, want 0", len(pub.alerts))
	}
}

func TestAdjustStockPublishFailureDoesNotFailCommand(t *testing.T) {
	repo := newFakeBookRepository(domain.Book{
		ID: "b1", Title: "Dune", Quantity: 20, MinThreshold: 5, Status: domain.StatusInStock,
	})
	pub := &fakePublisher{err: errors.New("broker down")}
	handler := NewAdjustStockHandler(repo, pub)

	book, err := handler.Handle(context.Background(), AdjustStockCommand{BookID: "b1", NewQuantity: 10})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if book.Quantity != 10 {
		t.Errorf("quantity = %d, want 10 despite publish failure", book.Quantity)
	}
}
