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

// LineItemService creates, updates and deletes individual order lines, keeping
// the inventory ledger and the owning order's cached total in lockstep. Every
// mutation runs in a single transaction.
type LineItemService struct {
	store repository.Store
	log   *zap.Logger
}

func NewLineItemService(store repository.Store, log *zap.Logger) *LineItemService {
	return &LineItemService{store: store, log: log}
}

// createOrderedItem validates one candidate line against inventory, reserves
// its stock, persists the row and folds its cumulative price into
// order.TotalPrice (the caller saves the order). The string slice carries the
// accumulated reconciliation problems for this product; the error return is
// fatal (storage failures, including a racy duplicate (order, product) pair
// caught by the unique constraint).
//
// Must run inside an open transaction; the order row must already be persisted
// so the line has a foreign key to point at.
func createOrderedItem(ctx context.Context, s repository.Store, order *models.Order, req OrderedItemRequest) (*models.OrderedItem, []string, error) {
	if problems := validateOrderedItemShape(req); len(problems) > 0 {
		return nil, problems, nil
	}

	name := normalizeProductName(req.Name)
	problems, err := reserveStock(ctx, s, order.OwnerID, name, req.Quantity, req.Price)
	if err != nil {
		return nil, nil, err
	}
	if len(problems) > 0 {
		return nil, problems, nil
	}

	item := &models.OrderedItem{
		OrderID:         order.ID,
		ProductName:     name,
		Quantity:        req.Quantity,
		Price:           req.Price,
		CumulativePrice: int64(req.Quantity) * req.Price,
	}
	if err := s.OrderedItems().Create(ctx, item); err != nil {
		return nil, nil, err
	}

	order.TotalPrice += item.CumulativePrice
	order.Items = append(order.Items, *item)
	return item, nil, nil
}

// Add appends a new line to an existing pending order.
func (s *LineItemService) Add(ctx context.Context, ownerID, orderID uuid.UUID, req OrderedItemRequest) (*models.OrderedItem, error) {
	var created *models.OrderedItem

	err := s.store.Atomically(ctx, func(tx repository.Store) error {
		order, err := findOrder(ctx, tx, orderID, ownerID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrOnlyPendingEditable
		}

		item, problems, err := createOrderedItem(ctx, tx, order, req)
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			ve := ValidationErrors{}
			ve.Add(normalizeProductName(req.Name), problems...)
			return ve
		}

		created = item
		return tx.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("ordered item added",
		zap.String("order_id", orderID.String()),
		zap.String("product", created.ProductName),
		zap.Int("quantity", created.Quantity))
	return created, nil
}

// UpdateQuantity changes a line's quantity, adjusting stock by the delta and
// recomputing the cumulative price and the order total. Any attempt to change
// another field through this path is rejected before storage is touched.
func (s *LineItemService) UpdateQuantity(ctx context.Context, ownerID, orderID, itemID uuid.UUID, req UpdateOrderedItemRequest) (*models.OrderedItem, error) {
	var updated *models.OrderedItem

	err := s.store.Atomically(ctx, func(tx repository.Store) error {
		order, err := findOrder(ctx, tx, orderID, ownerID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrOnlyPendingEditable
		}

		item, err := tx.OrderedItems().FindByID(ctx, itemID, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if req.Name != nil && normalizeProductName(*req.Name) != item.ProductName {
			return ErrOnlyQuantityEditable
		}
		if req.Price != nil && *req.Price != item.Price {
			return ErrOnlyQuantityEditable
		}
		if req.Quantity <= 0 {
			ve := ValidationErrors{}
			ve.Add(item.ProductName, "Quantity must be a positive integer")
			return ve
		}

		delta := req.Quantity - item.Quantity
		switch {
		case delta > 0:
			problems, err := reserveAdditionalStock(ctx, tx, order.OwnerID, item.ProductName, delta)
			if err != nil {
				return err
			}
			if len(problems) > 0 {
				ve := ValidationErrors{}
				ve.Add(item.ProductName, problems...)
				return ve
			}
		case delta < 0:
			if err := releaseStock(ctx, tx, order.OwnerID, item.ProductName, -delta); err != nil {
				return err
			}
		}

		previous := item.CumulativePrice
		item.Quantity = req.Quantity
		item.CumulativePrice = int64(req.Quantity) * item.Price
		if err := tx.OrderedItems().Save(ctx, item); err != nil {
			return err
		}

		order.TotalPrice += item.CumulativePrice - previous
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("ordered item quantity updated",
		zap.String("order_id", orderID.String()),
		zap.String("product", updated.ProductName),
		zap.Int("quantity", updated.Quantity))
	return updated, nil
}

// Delete removes a line from a pending order, returning its stock to
// inventory and shrinking the order total. The order's last remaining line
// cannot be deleted; the order itself must be deleted instead.
func (s *LineItemService) Delete(ctx context.Context, ownerID, orderID, itemID uuid.UUID) error {
	err := s.store.Atomically(ctx, func(tx repository.Store) error {
		order, err := findOrder(ctx, tx, orderID, ownerID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrOnlyPendingEditable
		}

		item, err := tx.OrderedItems().FindByID(ctx, itemID, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		count, err := tx.OrderedItems().CountByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastOrderedItem
		}

		// The inventory row may be gone; the total shrinks regardless.
		if err := releaseStock(ctx, tx, order.OwnerID, item.ProductName, item.Quantity); err != nil {
			return err
		}

		order.TotalPrice -= item.CumulativePrice
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}
		return tx.OrderedItems().Delete(ctx, item)
	})
	if err != nil {
		return err
	}

	s.log.Info("ordered item deleted",
		zap.String("order_id", orderID.String()),
		zap.String("item_id", itemID.String()))
	return nil
}

// findOrder loads an order with its items, mapping a missing row to the
// service-level not-found error.
func findOrder(ctx context.Context, s repository.Store, orderID, ownerID uuid.UUID) (*models.Order, error) {
	order, err := s.Orders().FindByID(ctx, orderID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}
