package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// DashboardController serves the landing-page rollup.
type DashboardController struct {
	dashboard *services.DashboardService
	log       *zap.Logger
}

func NewDashboardController(dashboard *services.DashboardService, log *zap.Logger) *DashboardController {
	return &DashboardController{dashboard: dashboard, log: log}
}

// Get handles GET /dashboard.
func (dc *DashboardController) Get(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	data, err := dc.dashboard.Build(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, dc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
