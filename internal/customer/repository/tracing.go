package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

var tracer = otel.Tracer("customer-repository")

// GormCustomerRepositoryWithTracing wraps GormCustomerRepository with tracing
type GormCustomerRepositoryWithTracing struct {
	*GormCustomerRepository
}

// NewGormCustomerRepositoryWithTracing creates a new repository with tracing
func NewGormCustomerRepositoryWithTracing(db *gorm.DB) *GormCustomerRepositoryWithTracing {
	return &GormCustomerRepositoryWithTracing{
		GormCustomerRepository: NewGormCustomerRepository(db),
	}
}

// Create with tracing
func (r *GormCustomerRepositoryWithTracing) CreateWithContext(ctx context.Context, customer *domain.Customer) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("customer.email", customer.Email),
			attribute.String("customer.tier", customer.LoyaltyTier),
		),
	)
	defer span.End()

	err := r.GormCustomerRepository.Create(customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("customer.id", int(customer.ID)))
	return nil
}

// FindByID with tracing
func (r *GormCustomerRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Customer, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("customer.id", int(id)),
		),
	)
	defer span.End()

	customer, err := r.GormCustomerRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("customer.tier", customer.LoyaltyTier),
		attribute.Bool("customer.is_active", customer.IsActive),
	)
	return customer, nil
}

// FindAll with tracing
func (r *GormCustomerRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	customers, err := r.GormCustomerRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(customers)))
	return customers, nil
}

// Update with tracing
func (r *GormCustomerRepositoryWithTracing) UpdateWithContext(ctx context.Context, customer *domain.Customer) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("customer.id", int(customer.ID)),
			attribute.String("customer.tier", customer.LoyaltyTier),
			attribute.Int("customer.total_orders", customer.TotalOrders),
		),
	)
	defer span.End()

	err := r.GormCustomerRepository.Update(customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormCustomerRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("customer.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormCustomerRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
