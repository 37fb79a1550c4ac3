package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookstore-admin/internal/notification/domain"
)

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Notification{})
}

func (r *GormNotificationRepository) Create(notification *domain.Notification) error {
	return r.db.Create(notification).Error
}

func (r *GormNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *GormNotificationRepository) FindAll(limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Order("created_at desc").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, err
}

func (r *GormNotificationRepository) FindByStatus(status string, limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Where("status = ?", status).Order("created_at desc").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, err
}

func (r *GormNotificationRepository) Update(notification *domain.Notification) error {
	return r.db.Save(notification).Error
}

func (r *GormNotificationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).Count(&count).Error
	return count, err
}
