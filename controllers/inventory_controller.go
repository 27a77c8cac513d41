package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// InventoryController exposes inventory CRUD and the inventory rollup.
type InventoryController struct {
	inventory *services.InventoryService
	log       *zap.Logger
}

func NewInventoryController(inventory *services.InventoryService, log *zap.Logger) *InventoryController {
	return &InventoryController{inventory: inventory, log: log}
}

// Create handles POST /inventory.
func (ic *InventoryController) Create(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	var req services.NewInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item, err := ic.inventory.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "New Item added to inventory", "data": item})
}

// List handles GET /inventory with query/category/low_stock/order/page params.
func (ic *InventoryController) List(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	_, lowStock := c.GetQuery("low_stock")
	filter := repository.InventoryFilter{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		LowStock: lowStock,
		OrderBy:  c.Query("order"),
		PerPage:  defaultPageSize,
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}

	result, err := ic.inventory.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	if filter.Page > result.PageCount {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Page Not found", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// Stats handles GET /inventory/stats.
func (ic *InventoryController) Stats(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	stats, err := ic.inventory.Stats(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// Get handles GET /inventory/:id.
func (ic *InventoryController) Get(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := ic.inventory.Get(c.Request.Context(), ownerID, itemID)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// Update handles PUT /inventory/:id.
func (ic *InventoryController) Update(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item, err := ic.inventory.Update(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Product data updated successful", "data": item})
}

// Delete handles DELETE /inventory/:id.
func (ic *InventoryController) Delete(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ic.inventory.Delete(c.Request.Context(), ownerID, itemID); err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Inventory Item deleted successfully"})
}
