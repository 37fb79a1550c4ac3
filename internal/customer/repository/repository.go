package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/customer/domain"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByEmail(email string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Limit(limit).Offset(offset).Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) FindByTier(tier string, limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Where("loyalty_tier = ?", tier).Limit(limit).Offset(offset).Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Customer{}, id).Error
}

func (r *GormCustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Customer{}).Count(&count).Error
	return count, err
}

func (r *GormCustomerRepository) CountByTier(tier string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Customer{}).Where("loyalty_tier = ?", tier).Count(&count).Error
	return count, err
}
