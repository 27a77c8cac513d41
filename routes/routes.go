package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/controllers"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/middleware"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// Controllers bundles everything Register wires into the engine.
type Controllers struct {
	Accounts  *controllers.AccountController
	Inventory *controllers.InventoryController
	Orders    *controllers.OrderController
	Dashboard *controllers.DashboardController
}

// Register mounts all routes. The account endpoints are the only
// unauthenticated surface and sit behind a per-IP rate limit.
func Register(r *gin.Engine, c Controllers, tokens *services.TokenService) {
	accounts := r.Group("/accounts")
	accounts.Use(middleware.RateLimit(rate.Limit(2), 10))
	accounts.POST("/register", c.Accounts.Register)
	accounts.POST("/login", c.Accounts.Login)
	accounts.POST("/verify-email", c.Accounts.VerifyEmail)

	auth := r.Group("/")
	auth.Use(middleware.Auth(tokens))

	auth.GET("/accounts/profile", c.Accounts.Profile)
	auth.PUT("/accounts/profile", c.Accounts.UpdateProfile)

	auth.GET("/dashboard", c.Dashboard.Get)

	auth.GET("/inventory", c.Inventory.List)
	auth.POST("/inventory", c.Inventory.Create)
	auth.GET("/inventory/stats", c.Inventory.Stats)
	auth.GET("/inventory/:id", c.Inventory.Get)
	auth.PUT("/inventory/:id", c.Inventory.Update)
	auth.DELETE("/inventory/:id", c.Inventory.Delete)

	auth.GET("/orders", c.Orders.List)
	auth.POST("/orders", c.Orders.Create)
	auth.GET("/orders/stats", c.Orders.Stats)
	auth.GET("/orders/:id", c.Orders.Get)
	auth.PUT("/orders/:id", c.Orders.Update)
	auth.DELETE("/orders/:id", c.Orders.Delete)
	auth.POST("/orders/:id/items", c.Orders.AddItem)
	auth.PUT("/orders/:id/items/:item_id", c.Orders.UpdateItem)
	auth.DELETE("/orders/:id/items/:item_id", c.Orders.DeleteItem)
}
