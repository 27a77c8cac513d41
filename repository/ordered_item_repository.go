package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

// OrderedItemRepository is the data access boundary for individual order lines.
type OrderedItemRepository interface {
	FindByID(ctx context.Context, id, orderID uuid.UUID) (*models.OrderedItem, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	Create(ctx context.Context, item *models.OrderedItem) error
	Save(ctx context.Context, item *models.OrderedItem) error
	Delete(ctx context.Context, item *models.OrderedItem) error
}

type gormOrderedItemRepository struct {
	db *gorm.DB
}

func (r *gormOrderedItemRepository) FindByID(ctx context.Context, id, orderID uuid.UUID) (*models.OrderedItem, error) {
	var item models.OrderedItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", id, orderID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormOrderedItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderedItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}

func (r *gormOrderedItemRepository) Create(ctx context.Context, item *models.OrderedItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormOrderedItemRepository) Save(ctx context.Context, item *models.OrderedItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *gormOrderedItemRepository) Delete(ctx context.Context, item *models.OrderedItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
