package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// routerRepo is an in-memory BookRepository backing the route tests
type routerRepo struct {
	books map[string]domain.Book
}

func (r *routerRepo) Create(book *domain.Book) error {
	r.books[book.ID] = *book
	return nil
}

func (r *routerRepo) FindByID(id string) (*domain.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return &book, nil
}

func (r *routerRepo) FindAll(limit, offset int) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *routerRepo) FindByStatus(status domain.StockStatus, limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	for _, b := range r.books {
		if b.Status == status {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *routerRepo) Update(book *domain.Book) error {
	r.books[book.ID] = *book
	return nil
}

func (r *routerRepo) Delete(id string) error {
	delete(r.books, id)
	return nil
}

func (r *routerRepo) Count() (int64, error) {
	return int64(len(r.books)), nil
}

func (r *routerRepo) SaveWithChange(book *domain.Book, change *domain.StockChange) error {
	r.books[book.ID] = *book
	return nil
}

func (r *routerRepo) ListChanges(bookID string, limit int) ([]domain.StockChange, error) {
	return nil, nil
}

// The handler registers prometheus collectors on the default registry, so
// the tests share a single instance.
var (
	setupOnce  sync.Once
	testRepo   *routerRepo
	testRouter *mux.Router
)

func setupRouter() (*routerRepo, *mux.Router) {
	setupOnce.Do(func() {
		logger.Init("inventory-http-test", true)

		testRepo = &routerRepo{books: make(map[string]domain.Book)}
		handler := NewInventoryHandler(testRepo, nil)

		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	testRepo.books = map[string]domain.Book{}
	return testRepo, testRouter
}

func TestGetBookRoute(t *testing.T) {
	repo, router := setupRouter()
	repo.books["b1"] = domain.Book{
		ID: "b1", Title: "Dune", Quantity: 12, MinThreshold: 5, Status: domain.StatusInStock,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/books/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success {
		t.Errorf("success = false, want true (error: %s)", resp.Error)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want object", resp.Data)
	}
	if data["id"] != "b1" {
		t.Errorf("data.id = %v, want b1", data["id"])
	}
	if data["title"] != "Dune" {
		t.Errorf("data.title = %v, want Dune", data["title"])
	}
}

func TestGetBookRouteUnknownID(t *testing.T) {
	_, router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/books/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Success {
		t.Error("success = true for unknown book, want false")
	}
}
