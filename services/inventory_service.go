package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// InventoryService manages an owner's product catalog. Stock levels are only
// ever mutated here through explicit edits; order-driven reservation and
// release go through the ledger operations in stock.go.
type InventoryService struct {
	store repository.Store
	log   *zap.Logger
}

func NewInventoryService(store repository.Store, log *zap.Logger) *InventoryService {
	return &InventoryService{store: store, log: log}
}

// Create adds a product to the owner's inventory. Product names are
// title-cased and must be unique per owner.
func (s *InventoryService) Create(ctx context.Context, ownerID uuid.UUID, req NewInventoryItemRequest) (*models.InventoryItem, error) {
	name := normalizeProductName(req.ProductName)

	if _, err := s.store.Inventory().FindByName(ctx, ownerID, name); err == nil {
		return nil, ErrDuplicateInventory
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &models.InventoryItem{
		OwnerID:           ownerID,
		ProductName:       name,
		Description:       req.Description,
		Category:          normalizeProductName(req.Category),
		StockLevel:        req.StockLevel,
		LowStockThreshold: 5,
		Price:             req.Price,
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}

	if err := s.store.Inventory().Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("product", item.ProductName),
		zap.Int("stock_level", item.StockLevel))
	return item, nil
}

// Get returns one inventory item.
func (s *InventoryService) Get(ctx context.Context, ownerID, itemID uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.store.Inventory().FindByID(ctx, itemID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

// List returns one page of the owner's inventory.
func (s *InventoryService) List(ctx context.Context, ownerID uuid.UUID, filter repository.InventoryFilter) (*InventoryPage, error) {
	items, total, err := s.store.Inventory().List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	pageCount, next, prev := pageLinks(filter.Page, filter.PerPage, total)
	return &InventoryPage{
		PageCount: pageCount,
		NextPage:  next,
		PrevPage:  prev,
		Length:    len(items),
		Products:  items,
	}, nil
}

// Update applies a partial edit. Renaming onto another product's name is
// rejected the same way a duplicate create is.
func (s *InventoryService) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.Get(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		name := normalizeProductName(*req.ProductName)
		if name != item.ProductName {
			if _, err := s.store.Inventory().FindByName(ctx, ownerID, name); err == nil {
				return nil, ErrDuplicateInventory
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			item.ProductName = name
		}
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = normalizeProductName(*req.Category)
	}
	if req.StockLevel != nil {
		item.StockLevel = *req.StockLevel
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := s.store.Inventory().Save(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("inventory item updated",
		zap.String("item_id", item.ID.String()),
		zap.String("product", item.ProductName))
	return item, nil
}

// Delete removes a product from the inventory. Historical orders keep their
// denormalized product-name snapshots; nothing cascades to them.
func (s *InventoryService) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	item, err := s.Get(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	if err := s.store.Inventory().Delete(ctx, item); err != nil {
		return err
	}

	s.log.Info("inventory item deleted",
		zap.String("item_id", itemID.String()),
		zap.String("product", item.ProductName))
	return nil
}

// Stats returns the owner's inventory rollup for the stats endpoint.
func (s *InventoryService) Stats(ctx context.Context, ownerID uuid.UUID) (*repository.InventoryStats, error) {
	return s.store.Inventory().Stats(ctx, ownerID)
}
