package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// OrderService is the aggregate root for customer orders: it creates, edits
// and deletes an order together with its lines as one atomic unit and owns
// the Pending -> Delivered state machine.
type OrderService struct {
	store repository.Store
	log   *zap.Logger
}

func NewOrderService(store repository.Store, log *zap.Logger) *OrderService {
	return &OrderService{store: store, log: log}
}

// Create validates and persists a new order with all its candidate lines.
// Shape problems and duplicate product names are rejected before storage is
// touched; reconciliation problems found while reserving stock accumulate
// per product name and roll back the whole transaction, including the
// already-persisted order row. Nothing is committed unless every line lands.
func (s *OrderService) Create(ctx context.Context, ownerID uuid.UUID, req NewOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		parsed, err := parseOrderStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		ve := ValidationErrors{}
		ve.Add("order_date", err.Error())
		return nil, ve
	}

	ve := ValidationErrors{}
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		name := normalizeProductName(it.Name)
		if seen[name] {
			ve.Add(name, msgDuplicateProduct(name))
			continue
		}
		seen[name] = true
		if problems := validateOrderedItemShape(it); len(problems) > 0 {
			ve.Add(name, problems...)
		}
	}
	if len(ve) > 0 {
		return nil, ve
	}

	order := &models.Order{
		OwnerID:     ownerID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Status:      status,
		OrderDate:   orderDate,
	}
	if status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveryDate = &now
	}

	err = s.store.Atomically(ctx, func(tx repository.Store) error {
		// The order row goes in first so the lines have an id to reference;
		// a failure below takes it back out with everything else.
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		ve := ValidationErrors{}
		for _, it := range req.Items {
			_, problems, err := createOrderedItem(ctx, tx, order, it)
			if err != nil {
				return err
			}
			if len(problems) > 0 {
				ve.Add(normalizeProductName(it.Name), problems...)
			}
		}
		if len(ve) > 0 {
			return ve
		}

		return tx.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("client", order.ClientName),
		zap.Int64("total_price", order.TotalPrice),
		zap.Int("items", len(order.Items)))
	return order, nil
}

// Get returns one order with its lines.
func (s *OrderService) Get(ctx context.Context, ownerID, orderID uuid.UUID) (*models.Order, error) {
	return findOrder(ctx, s.store, orderID, ownerID)
}

// List returns one page of the owner's orders.
func (s *OrderService) List(ctx context.Context, ownerID uuid.UUID, filter repository.OrderFilter) (*OrderPage, error) {
	orders, total, err := s.store.Orders().List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	pageCount, next, prev := pageLinks(filter.Page, filter.PerPage, total)
	return &OrderPage{
		PageCount: pageCount,
		NextPage:  next,
		PrevPage:  prev,
		Length:    len(orders),
		Orders:    orders,
	}, nil
}

// Update applies a partial edit to a pending order's client fields, order
// date and status. The status may only move Pending -> Delivered; the
// delivery date is stamped exactly once, on that transition.
func (s *OrderService) Update(ctx context.Context, ownerID, orderID uuid.UUID, req UpdateOrderRequest) (*models.Order, error) {
	order, err := findOrder(ctx, s.store, orderID, ownerID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOnlyPendingEditable
	}

	if req.ClientName != nil {
		order.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		order.ClientEmail = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		order.ClientPhone = *req.ClientPhone
	}
	if req.OrderDate != nil {
		date, err := parseOrderDate(*req.OrderDate)
		if err != nil {
			ve := ValidationErrors{}
			ve.Add("order_date", err.Error())
			return nil, ve
		}
		order.OrderDate = date
	}
	if req.Status != nil {
		status, err := parseOrderStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if status == models.OrderStatusDelivered && order.DeliveryDate == nil {
			now := time.Now()
			order.DeliveryDate = &now
		}
		order.Status = status
	}

	if err := s.store.Orders().Save(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)))
	return order, nil
}

// Delete removes a pending order and all its lines, returning every line's
// stock to inventory in the same transaction.
func (s *OrderService) Delete(ctx context.Context, ownerID, orderID uuid.UUID) error {
	err := s.store.Atomically(ctx, func(tx repository.Store) error {
		order, err := findOrder(ctx, tx, orderID, ownerID)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrOnlyPendingDeletable
		}

		for _, item := range order.Items {
			if err := releaseStock(ctx, tx, order.OwnerID, item.ProductName, item.Quantity); err != nil {
				return err
			}
		}
		return tx.Orders().Delete(ctx, order)
	})
	if err != nil {
		return err
	}

	s.log.Info("order deleted", zap.String("order_id", orderID.String()))
	return nil
}

// Stats returns the owner's order rollup for the stats endpoint.
func (s *OrderService) Stats(ctx context.Context, ownerID uuid.UUID) (*repository.OrderStats, error) {
	return s.store.Orders().Stats(ctx, ownerID)
}
