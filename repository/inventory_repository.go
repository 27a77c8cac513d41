package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

// InventoryFilter narrows and orders an inventory listing.
type InventoryFilter struct {
	Query    string // matches product_name or description, case-insensitive
	Category string
	LowStock bool // only items at or below their low-stock threshold
	OrderBy  string
	Page     int
	PerPage  int
}

// InventoryStats is the read-side rollup over one owner's inventory.
type InventoryStats struct {
	TotalStockValue int64 `json:"total_stock_value"`
	LowStockCount   int64 `json:"low_stock_count"`
	TotalProducts   int64 `json:"total_products"`
}

// InventoryRepository is the data access boundary for inventory rows.
type InventoryRepository interface {
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.InventoryItem, error)
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.InventoryItem, error)
	List(ctx context.Context, ownerID uuid.UUID, filter InventoryFilter) ([]models.InventoryItem, int64, error)
	LowStock(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.InventoryItem, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*InventoryStats, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Save(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, item *models.InventoryItem) error
}

type gormInventoryRepository struct {
	db *gorm.DB
}

func (r *gormInventoryRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormInventoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND product_name = ?", ownerID, name).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormInventoryRepository) List(ctx context.Context, ownerID uuid.UUID, filter InventoryFilter) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("owner_id = ?", ownerID)

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("product_name ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", filter.Category)
	}
	if filter.LowStock {
		query = query.Where("stock_level <= low_stock_threshold")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(inventoryOrderClause(filter.OrderBy))
	if filter.Page > 0 && filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *gormInventoryRepository) LowStock(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("stock_level <= low_stock_threshold").
		Order("last_updated DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormInventoryRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*InventoryStats, error) {
	var stats InventoryStats

	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(stock_level * price), 0)").
		Scan(&stats.TotalStockValue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("owner_id = ?", ownerID).
		Where("stock_level <= low_stock_threshold").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("owner_id = ?", ownerID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormInventoryRepository) Save(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *gormInventoryRepository) Delete(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func inventoryOrderClause(orderBy string) string {
	switch orderBy {
	case "id":
		return "id ASC"
	case "-id":
		return "id DESC"
	case "price":
		return "price ASC"
	case "-price":
		return "price DESC"
	case "last_updated":
		return "last_updated ASC"
	default:
		return "last_updated DESC"
	}
}
