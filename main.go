package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/controllers"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/database"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/logger"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/mailer"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/routes"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	db, err := database.Connect(cfg.Postgres, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	services.RegisterValidators()

	store := repository.NewStore(db)
	tokens := services.NewTokenService(cfg.JWTSecret)

	var accountMailer services.Mailer
	if cfg.SMTPHost != "" {
		m, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		if err != nil {
			zlog.Warn("mailer disabled", zap.Error(err))
		} else {
			accountMailer = m
		}
	}

	accountService := services.NewAccountService(store, tokens, accountMailer, zlog)
	inventoryService := services.NewInventoryService(store, zlog)
	orderService := services.NewOrderService(store, zlog)
	lineItemService := services.NewLineItemService(store, zlog)
	dashboardService := services.NewDashboardService(store, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(zlog))

	routes.Register(r, routes.Controllers{
		Accounts:  controllers.NewAccountController(accountService, zlog),
		Inventory: controllers.NewInventoryController(inventoryService, zlog),
		Orders:    controllers.NewOrderController(orderService, lineItemService, zlog),
		Dashboard: controllers.NewDashboardController(dashboardService, zlog),
	}, tokens)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
