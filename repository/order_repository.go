package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

// OrderFilter narrows and orders an order listing.
type OrderFilter struct {
	Query   string // matches client name or an ordered product name
	Status  models.OrderStatus
	OrderBy string
	Page    int
	PerPage int
}

// OrderStats is the read-side rollup over one owner's orders.
type OrderStats struct {
	TotalOrders   int64 `json:"total_orders"`
	TotalRevenue  int64 `json:"total_revenue"`
	PendingOrders int64 `json:"pending_orders"`
}

// OrderRepository is the data access boundary for order rows and their items.
type OrderRepository interface {
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Order, error)
	List(ctx context.Context, ownerID uuid.UUID, filter OrderFilter) ([]models.Order, int64, error)
	RecentPending(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Order, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*OrderStats, error)
	TopSellingProduct(ctx context.Context, ownerID uuid.UUID) (string, error)
	Create(ctx context.Context, order *models.Order) error
	Save(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func (r *gormOrderRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) List(ctx context.Context, ownerID uuid.UUID, filter OrderFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("orders.owner_id = ?", ownerID)

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.
			Joins("LEFT JOIN ordered_items ON ordered_items.order_id = orders.id").
			Where("orders.client_name ILIKE ? OR ordered_items.product_name ILIKE ?", like, like).
			Distinct("orders.*")
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Items").Order(orderOrderClause(filter.OrderBy))
	if filter.Page > 0 && filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *gormOrderRepository) RecentPending(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND status = ?", ownerID, models.OrderStatusPending).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*OrderStats, error) {
	var stats OrderStats

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Order{}).Where("owner_id = ?", ownerID)
	}

	if err := base().Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := base().
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopSellingProduct returns the ordered product name with the largest summed
// quantity across all of the owner's orders, or "" when no orders exist.
func (r *gormOrderRepository) TopSellingProduct(ctx context.Context, ownerID uuid.UUID) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Model(&models.OrderedItem{}).
		Joins("JOIN orders ON orders.id = ordered_items.order_id").
		Where("orders.owner_id = ?", ownerID).
		Group("ordered_items.product_name").
		Order("SUM(ordered_items.quantity) DESC").
		Limit(1).
		Pluck("ordered_items.product_name", &name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return name, err
}

func (r *gormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Save persists the order row only. Items travel through their own
// repository; saving them as a side effect here would hide writes from the
// ledger's accounting.
func (r *gormOrderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *gormOrderRepository) Delete(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Select("Items").Delete(order).Error
}

func orderOrderClause(orderBy string) string {
	switch orderBy {
	case "id":
		return "orders.id ASC"
	case "-id":
		return "orders.id DESC"
	case "total_price":
		return "orders.total_price ASC"
	case "-total_price":
		return "orders.total_price DESC"
	case "order_date":
		return "orders.order_date ASC"
	default:
		return "orders.order_date DESC"
	}
}
