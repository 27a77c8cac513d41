package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

// OrderedItemRequest is one candidate line in an order submission.
type OrderedItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// NewOrderRequest is the whole order submission, handed to OrderService.Create
// in one call. Candidate lines never live on a long-lived entity.
type NewOrderRequest struct {
	ClientName  string               `json:"client_name" binding:"required,max=150"`
	ClientEmail string               `json:"client_email" binding:"omitempty,max=150"`
	ClientPhone string               `json:"client_phone" binding:"omitempty,max=150"`
	Status      string               `json:"status"`
	OrderDate   string               `json:"order_date"`
	Items       []OrderedItemRequest `json:"ordered_items"`
}

// UpdateOrderRequest carries a partial edit of an order's client fields,
// order date and status. Nil means "leave unchanged".
type UpdateOrderRequest struct {
	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	ClientPhone *string `json:"client_phone"`
	OrderDate   *string `json:"order_date"`
	Status      *string `json:"status"`
}

// UpdateOrderedItemRequest updates one order line. Quantity is the only
// mutable field; Name and Price, when present, must match the persisted row
// or the update is rejected outright.
type UpdateOrderedItemRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewInventoryItemRequest creates one inventory row.
type NewInventoryItemRequest struct {
	ProductName       string `json:"product_name" binding:"required,max=100"`
	Description       string `json:"description" binding:"omitempty,max=300"`
	Category          string `json:"category" binding:"omitempty,max=100"`
	StockLevel        int    `json:"stock_level" binding:"gte=0"`
	LowStockThreshold *int   `json:"low_stock_threshold" binding:"omitempty,gte=0"`
	Price             int64  `json:"price" binding:"required,gt=0"`
}

// UpdateInventoryItemRequest carries a partial inventory edit.
type UpdateInventoryItemRequest struct {
	ProductName       *string `json:"product_name" binding:"omitempty,max=100"`
	Description       *string `json:"description" binding:"omitempty,max=300"`
	Category          *string `json:"category" binding:"omitempty,max=100"`
	StockLevel        *int    `json:"stock_level" binding:"omitempty,gte=0"`
	LowStockThreshold *int    `json:"low_stock_threshold" binding:"omitempty,gte=0"`
	Price             *int64  `json:"price" binding:"omitempty,gt=0"`
}

// InventoryPage is one page of an inventory listing.
type InventoryPage struct {
	PageCount int                    `json:"page_count"`
	NextPage  *int                   `json:"next_page"`
	PrevPage  *int                   `json:"prev_page"`
	Length    int                    `json:"length"`
	Products  []models.InventoryItem `json:"products"`
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	PageCount int            `json:"page_count"`
	NextPage  *int           `json:"next_page"`
	PrevPage  *int           `json:"prev_page"`
	Length    int            `json:"length"`
	Orders    []models.Order `json:"orders"`
}

// pageLinks computes 1-based next/prev page numbers for a listing of total
// rows at perPage rows a page. page == 0 means "no pagination requested".
func pageLinks(page, perPage int, total int64) (pageCount int, next, prev *int) {
	if page <= 0 || perPage <= 0 {
		return 1, nil, nil
	}
	pageCount = int((total + int64(perPage) - 1) / int64(perPage))
	if pageCount == 0 {
		pageCount = 1
	}
	if page+1 <= pageCount {
		n := page + 1
		next = &n
	}
	if page-1 >= 1 {
		p := page - 1
		prev = &p
	}
	return pageCount, next, prev
}

// parseOrderStatus maps a submitted status value onto the lifecycle enum,
// tolerating case but nothing else.
func parseOrderStatus(v string) (models.OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending":
		return models.OrderStatusPending, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	default:
		return "", &InvalidStatusError{Value: v}
	}
}

// parseOrderDate accepts an ISO date, defaulting to now when absent.
func parseOrderDate(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid order_date %q, expected YYYY-MM-DD", v)
	}
	return t, nil
}

// validateOrderedItemShape checks field shapes that must hold before any
// storage access. Quantity and price arrive as integers by construction (the
// JSON layer rejects fractional values for int fields); here we reject zero
// and negatives.
func validateOrderedItemShape(req OrderedItemRequest) []string {
	var problems []string
	if req.Quantity <= 0 {
		problems = append(problems, "Quantity must be a positive integer")
	}
	if req.Price <= 0 {
		problems = append(problems, "Price must be a positive integer")
	}
	return problems
}
