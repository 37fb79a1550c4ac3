package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Book{}, &domain.StockChange{})
}

func (r *GormBookRepository) Create(book *domain.Book) error {
	return r.db.Create(book).Error
}

func (r *GormBookRepository) FindByID(id string) (*domain.Book, error) {
	var book domain.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) FindAll(limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Order("title asc").Limit(limit).Offset(offset).Find(&books).Error
	return books, err
}

func (r *GormBookRepository) FindByStatus(status domain.StockStatus, limit, offset int) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Where("status = ?", status).Order("title asc").Limit(limit).Offset(offset).Find(&books).Error
	return books, err
}

func (r *GormBookRepository) Update(book *domain.Book) error {
	return r.db.Save(book).Error
}

func (r *GormBookRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&domain.Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Book{}).Count(&count).Error
	return count, err
}

// SaveWithChange persists the mutated book and its change record in one transaction
func (r *GormBookRepository) SaveWithChange(book *domain.Book, change *domain.StockChange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(book).Error; err != nil {
			return err
		}
		return tx.Create(change).Error
	})
}

func (r *GormBookRepository) ListChanges(bookID string, limit int) ([]domain.StockChange, error) {
	var changes []domain.StockChange
	err := r.db.Where("book_id = ?", bookID).Order("created_at desc").Limit(limit).Find(&changes).Error
	return changes, err
}
