package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// AccountController exposes registration, login and profile management.
type AccountController struct {
	accounts *services.AccountService
	log      *zap.Logger
}

func NewAccountController(accounts *services.AccountService, log *zap.Logger) *AccountController {
	return &AccountController{accounts: accounts, log: log}
}

// Register handles POST /accounts/register.
func (ac *AccountController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	account, err := ac.accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "Account created successfully", "data": account})
}

// Login handles POST /accounts/login.
func (ac *AccountController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	tokens, err := ac.accounts.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tokens})
}

// VerifyEmail handles POST /accounts/verify-email.
func (ac *AccountController) VerifyEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := ac.accounts.VerifyEmail(c.Request.Context(), req.Email, req.Code); err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Email verified successfully"})
}

// Profile handles GET /accounts/profile.
func (ac *AccountController) Profile(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	account, err := ac.accounts.Profile(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

// UpdateProfile handles PUT /accounts/profile.
func (ac *AccountController) UpdateProfile(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	account, err := ac.accounts.UpdateProfile(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Profile updated successfully", "data": account})
}
