package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

const defaultPageSize = 20

// OrderController exposes the order engine and line-item manager over HTTP.
type OrderController struct {
	orders    *services.OrderService
	lineItems *services.LineItemService
	log       *zap.Logger
}

func NewOrderController(orders *services.OrderService, lineItems *services.LineItemService, log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, lineItems: lineItems, log: log}
}

// Create handles POST /orders.
func (oc *OrderController) Create(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	var req services.NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	order, err := oc.orders.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Order created successfully", "data": order})
}

// List handles GET /orders with query/status/order/page parameters.
func (oc *OrderController) List(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	filter := repository.OrderFilter{
		Query:   c.Query("query"),
		OrderBy: c.Query("order"),
		PerPage: defaultPageSize,
	}
	if status := c.Query("status"); status != "" {
		// An unrecognized status filter matches nothing rather than erroring,
		// mirroring how unknown ordering values fall back to the default.
		filter.Status = models.OrderStatus(status)
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}

	result, err := oc.orders.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	if filter.Page > result.PageCount {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Page Not found", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Stats handles GET /orders/stats.
func (oc *OrderController) Stats(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	stats, err := oc.orders.Stats(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// Get handles GET /orders/:id.
func (oc *OrderController) Get(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), ownerID, orderID)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// Update handles PUT /orders/:id.
func (oc *OrderController) Update(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	order, err := oc.orders.Update(c.Request.Context(), ownerID, orderID, req)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Order Updated successfully", "data": order})
}

// Delete handles DELETE /orders/:id.
func (oc *OrderController) Delete(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := oc.orders.Delete(c.Request.Context(), ownerID, orderID); err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Order deleted successfully"})
}

// AddItem handles POST /orders/:id/items.
func (oc *OrderController) AddItem(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.OrderedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item, err := oc.lineItems.Add(c.Request.Context(), ownerID, orderID, req)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Ordered item added successfully", "data": item})
}

// UpdateItem handles PUT /orders/:id/items/:item_id.
func (oc *OrderController) UpdateItem(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	var req services.UpdateOrderedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item, err := oc.lineItems.UpdateQuantity(c.Request.Context(), ownerID, orderID, itemID, req)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Ordered item updated successfully", "data": item})
}

// DeleteItem handles DELETE /orders/:id/items/:item_id.
func (oc *OrderController) DeleteItem(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := oc.lineItems.Delete(c.Request.Context(), ownerID, orderID, itemID); err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Ordered item deleted successfully"})
}
