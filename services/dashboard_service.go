package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// Dashboard is the landing-page rollup: business identity, the headline
// numbers and the short lists the UI renders first.
type Dashboard struct {
	BusinessName      string                 `json:"business_name"`
	Currency          string                 `json:"currency"`
	Language          string                 `json:"language"`
	TopSellingProduct *string                `json:"top_selling_product"`
	Revenue           int64                  `json:"revenue"`
	PendingOrders     []models.Order         `json:"pending_orders"`
	LowStockItems     []models.InventoryItem `json:"low_stock_items"`
}

// DashboardService reads the ledger's tables, read-only, to build the
// dashboard. It never participates in the consistency protocol.
type DashboardService struct {
	store repository.Store
	log   *zap.Logger
}

func NewDashboardService(store repository.Store, log *zap.Logger) *DashboardService {
	return &DashboardService{store: store, log: log}
}

const dashboardListLimit = 6

func (s *DashboardService) Build(ctx context.Context, ownerID uuid.UUID) (*Dashboard, error) {
	account, err := s.store.Accounts().FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.store.Orders().Stats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	top, err := s.store.Orders().TopSellingProduct(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.Orders().RecentPending(ctx, ownerID, dashboardListLimit)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.store.Inventory().LowStock(ctx, ownerID, dashboardListLimit)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		BusinessName:  account.BusinessName,
		Currency:      account.Currency,
		Language:      account.Language,
		Revenue:       stats.TotalRevenue,
		PendingOrders: pending,
		LowStockItems: lowStock,
	}
	if top != "" {
		dashboard.TopSellingProduct = &top
	}
	return dashboard, nil
}
