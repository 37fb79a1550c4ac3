package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormBookRepositoryWithTracing wraps GormBookRepository with tracing
type GormBookRepositoryWithTracing struct {
	*GormBookRepository
}

// NewGormBookRepositoryWithTracing creates a new repository with tracing
func NewGormBookRepositoryWithTracing(db *gorm.DB) *GormBookRepositoryWithTracing {
	return &GormBookRepositoryWithTracing{
		GormBookRepository: NewGormBookRepository(db),
	}
}

// Create with tracing
func (r *GormBookRepositoryWithTracing) CreateWithContext(ctx context.Context, book *domain.Book) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("book.title", book.Title),
			attribute.String("book.author", book.Author),
			attribute.Int("book.quantity", book.Quantity),
			attribute.String("book.status", string(book.Status)),
		),
	)
	defer span.End()

	err := r.GormBookRepository.Create(book)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("book.id", book.ID))
	return nil
}

// FindByID with tracing
func (r *GormBookRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("book.id", id),
		),
	)
	defer span.End()

	book, err := r.GormBookRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("book.title", book.Title),
		attribute.String("book.status", string(book.Status)),
	)
	return book, nil
}

// FindAll with tracing
func (r *GormBookRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	books, err := r.GormBookRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(books)))
	return books, nil
}

// FindByStatus with tracing
func (r *GormBookRepositoryWithTracing) FindByStatusWithContext(ctx context.Context, status domain.StockStatus, limit, offset int) ([]domain.Book, error) {
	_, span := tracer.Start(ctx, "repository.FindByStatus",
		trace.WithAttributes(
			attribute.String("query.status", string(status)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	books, err := r.GormBookRepository.FindByStatus(status, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(books)))
	return books, nil
}

// Update with tracing
func (r *GormBookRepositoryWithTracing) UpdateWithContext(ctx context.Context, book *domain.Book) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("book.id", book.ID),
			attribute.Int("book.quantity", book.Quantity),
			attribute.String("book.status", string(book.Status)),
		),
	)
	defer span.End()

	err := r.GormBookRepository.Update(book)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormBookRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("book.id", id),
		),
	)
	defer span.End()

	err := r.GormBookRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// SaveWithChange with tracing
func (r *GormBookRepositoryWithTracing) SaveWithChangeWithContext(ctx context.Context, book *domain.Book, change *domain.StockChange) error {
	_, span := tracer.Start(ctx, "repository.SaveWithChange",
		trace.WithAttributes(
			attribute.String("book.id", book.ID),
			attribute.Int("change.old_quantity", change.OldQuantity),
			attribute.Int("change.new_quantity", change.NewQuantity),
			attribute.String("change.reason", change.Reason),
		),
	)
	defer span.End()

	err := r.GormBookRepository.SaveWithChange(book, change)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// ListChanges with tracing
func (r *GormBookRepositoryWithTracing) ListChangesWithContext(ctx context.Context, bookID string, limit int) ([]domain.StockChange, error) {
	_, span := tracer.Start(ctx, "repository.ListChanges",
		trace.WithAttributes(
			attribute.String("book.id", bookID),
			attribute.Int("query.limit", limit),
		),
	)
	defer span.End()

	changes, err := r.GormBookRepository.ListChanges(bookID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(changes)))
	return changes, nil
}
