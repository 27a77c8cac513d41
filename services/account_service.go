package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/repository"
)

// Mailer delivers account emails. Actual delivery is an external collaborator;
// the service only hands messages across this boundary.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, code string) error
}

// RegisterRequest creates a business account.
type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required,max=200"`
	FullName     string `json:"full_name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,email,max=150"`
	Password     string `json:"password" binding:"required,min=8,max=50"`
	BusinessType string `json:"business_type" binding:"omitempty,max=150"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	Currency     string `json:"currency" binding:"omitempty,currency"`
	State        string `json:"state" binding:"omitempty,max=100"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial edit of the account's business
// profile and notification preferences.
type UpdateProfileRequest struct {
	BusinessName        *string `json:"business_name" binding:"omitempty,max=200"`
	FullName            *string `json:"full_name" binding:"omitempty,max=200"`
	Phone               *string `json:"phone" binding:"omitempty,max=24"`
	BusinessPhone       *string `json:"business_phone" binding:"omitempty,max=24"`
	BusinessAddress     *string `json:"business_address" binding:"omitempty,max=150"`
	BusinessType        *string `json:"business_type" binding:"omitempty,max=150"`
	Currency            *string `json:"currency" binding:"omitempty,currency"`
	Country             *string `json:"country" binding:"omitempty,max=100"`
	State               *string `json:"state" binding:"omitempty,max=100"`
	Language            *string `json:"language" binding:"omitempty,max=50"`
	DefaultOrderStatus  *string `json:"default_order_status"`
	LowStockThreshold   *int    `json:"low_stock_threshold" binding:"omitempty,gte=0"`
	RcvMailForNewOrders *bool   `json:"rcv_mail_for_new_orders"`
	RcvMailForLowStocks *bool   `json:"rcv_mail_for_low_stocks"`
	RcvMailNotification *bool   `json:"rcv_mail_notification"`
	RcvMsgNotification  *bool   `json:"rcv_msg_notification"`
}

// AccountService handles registration, login and profile management.
type AccountService struct {
	store  repository.Store
	tokens *TokenService
	mailer Mailer
	log    *zap.Logger
}

func NewAccountService(store repository.Store, tokens *TokenService, mailer Mailer, log *zap.Logger) *AccountService {
	return &AccountService{store: store, tokens: tokens, mailer: mailer, log: log}
}

// Register creates the account and hands a verification code to the mailer.
// Delivery failure is logged, not fatal: the code can be re-sent.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*models.Account, error) {
	if _, err := s.store.Accounts().FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		BusinessName:        req.BusinessName,
		FullName:            req.FullName,
		Email:               req.Email,
		Password:            string(hashed),
		BusinessType:        req.BusinessType,
		Currency:            "NGN",
		Country:             "Nigeria",
		State:               req.State,
		Language:            "English",
		DefaultOrderStatus:  models.OrderStatusPending,
		LowStockThreshold:   5,
		RcvMailForNewOrders: true,
		RcvMailForLowStocks: true,
		RcvMailNotification: true,
		RcvMsgNotification:  true,
		VerificationCode:    generateVerificationCode(),
	}
	if req.Currency != "" {
		account.Currency = req.Currency
	}
	if req.Country != "" {
		account.Country = req.Country
	}

	if err := s.store.Accounts().Create(ctx, account); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendVerificationEmail(ctx, account.Email, account.VerificationCode); err != nil {
			s.log.Warn("verification email not sent",
				zap.String("account_id", account.ID.String()),
				zap.Error(err))
		}
	}

	s.log.Info("account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("business", account.BusinessName))
	return account, nil
}

// Login checks credentials and issues a token pair.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	account, err := s.store.Accounts().FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokens.GenerateTokenPair(account.ID.String(), account.Email)
}

// VerifyEmail marks the account verified when the submitted code matches.
func (s *AccountService) VerifyEmail(ctx context.Context, email, code string) error {
	account, err := s.store.Accounts().FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if code == "" || account.VerificationCode != code {
		return ErrInvalidCredentials
	}

	account.EmailVerified = true
	account.VerificationCode = ""
	return s.store.Accounts().Save(ctx, account)
}

// Profile returns the account for the authenticated owner.
func (s *AccountService) Profile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.store.Accounts().FindByID(ctx, accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return account, err
}

// UpdateProfile applies a partial profile edit.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req UpdateProfileRequest) (*models.Account, error) {
	account, err := s.Profile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		account.BusinessName = *req.BusinessName
	}
	if req.FullName != nil {
		account.FullName = *req.FullName
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.BusinessPhone != nil {
		account.BusinessPhone = *req.BusinessPhone
	}
	if req.BusinessAddress != nil {
		account.BusinessAddress = *req.BusinessAddress
	}
	if req.BusinessType != nil {
		account.BusinessType = *req.BusinessType
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.Country != nil {
		account.Country = *req.Country
	}
	if req.State != nil {
		account.State = *req.State
	}
	if req.Language != nil {
		account.Language = *req.Language
	}
	if req.DefaultOrderStatus != nil {
		status, err := parseOrderStatus(*req.DefaultOrderStatus)
		if err != nil {
			return nil, err
		}
		account.DefaultOrderStatus = status
	}
	if req.LowStockThreshold != nil {
		account.LowStockThreshold = *req.LowStockThreshold
	}
	if req.RcvMailForNewOrders != nil {
		account.RcvMailForNewOrders = *req.RcvMailForNewOrders
	}
	if req.RcvMailForLowStocks != nil {
		account.RcvMailForLowStocks = *req.RcvMailForLowStocks
	}
	if req.RcvMailNotification != nil {
		account.RcvMailNotification = *req.RcvMailNotification
	}
	if req.RcvMsgNotification != nil {
		account.RcvMsgNotification = *req.RcvMsgNotification
	}

	if err := s.store.Accounts().Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func generateVerificationCode() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
