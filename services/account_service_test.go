package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

// accountFixture is a verified account with the registration defaults, shared
// with the dashboard tests.
func accountFixture(id uuid.UUID) models.Account {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	return models.Account{
		ID:            id,
		BusinessName:  "Ada Ventures",
		FullName:      "Ada Obi",
		Email:         "ada@example.com",
		Password:      string(hashed),
		Currency:      "NGN",
		Country:       "Nigeria",
		Language:      "English",
		EmailVerified: true,
	}
}

func newAccountFixture(t *testing.T) (*AccountService, *fakeStore, *mockMailer) {
	t.Helper()
	store := newFakeStore()
	mailer := new(mockMailer)
	svc := NewAccountService(store, NewTokenService("test-secret"), mailer, zap.NewNop())
	return svc, store, mailer
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, mailer := newAccountFixture(t)
		mailer.On("SendVerificationEmail", mock.Anything, "ada@example.com", mock.AnythingOfType("string")).
			Return(nil)

		account, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Ada Ventures",
			FullName:     "Ada Obi",
			Email:        "ada@example.com",
			Password:     "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, "NGN", account.Currency)
		assert.Equal(t, "Nigeria", account.Country)
		assert.Equal(t, "English", account.Language)
		assert.Equal(t, models.OrderStatusPending, account.DefaultOrderStatus)
		assert.Equal(t, 5, account.LowStockThreshold)
		assert.False(t, account.EmailVerified)
		assert.NotEmpty(t, account.VerificationCode)
		assert.NotEqual(t, "s3cret-pass", account.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("s3cret-pass")))

		assert.Len(t, store.accounts, 1)
		mailer.AssertExpectations(t)
	})

	t.Run("Mailer Failure Is Not Fatal", func(t *testing.T) {
		svc, store, mailer := newAccountFixture(t)
		mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		_, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Ada Ventures",
			FullName:     "Ada Obi",
			Email:        "ada@example.com",
			Password:     "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Len(t, store.accounts, 1)
	})

	t.Run("Email Taken", func(t *testing.T) {
		svc, store, _ := newAccountFixture(t)
		id := uuid.New()
		store.accounts[id] = accountFixture(id)

		_, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Other Ventures",
			FullName:     "Ngozi Eze",
			Email:        "ada@example.com",
			Password:     "s3cret-pass",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("Locale Overrides", func(t *testing.T) {
		svc, _, mailer := newAccountFixture(t)
		mailer.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(nil)

		account, err := svc.Register(ctx, RegisterRequest{
			BusinessName: "Ada Ventures",
			FullName:     "Ada Obi",
			Email:        "ada@example.com",
			Password:     "s3cret-pass",
			Currency:     "GHS",
			Country:      "Ghana",
		})
		require.NoError(t, err)
		assert.Equal(t, "GHS", account.Currency)
		assert.Equal(t, "Ghana", account.Country)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, _ := newAccountFixture(t)
		id := uuid.New()
		store.accounts[id] = accountFixture(id)

		pair, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, store, _ := newAccountFixture(t)
		id := uuid.New()
		store.accounts[id] = accountFixture(id)

		_, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, _, _ := newAccountFixture(t)
		_, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	seedUnverified := func(t *testing.T) (*AccountService, *fakeStore, uuid.UUID) {
		t.Helper()
		svc, store, _ := newAccountFixture(t)
		id := uuid.New()
		account := accountFixture(id)
		account.EmailVerified = false
		account.VerificationCode = "abc123"
		store.accounts[id] = account
		return svc, store, id
	}

	t.Run("Success", func(t *testing.T) {
		svc, store, id := seedUnverified(t)

		require.NoError(t, svc.VerifyEmail(ctx, "ada@example.com", "abc123"))
		account := store.accounts[id]
		assert.True(t, account.EmailVerified)
		assert.Empty(t, account.VerificationCode)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		svc, store, id := seedUnverified(t)
		assert.ErrorIs(t, svc.VerifyEmail(ctx, "ada@example.com", "nope"), ErrInvalidCredentials)
		assert.False(t, store.accounts[id].EmailVerified)
	})

	t.Run("Empty Code Never Matches", func(t *testing.T) {
		svc, store, id := seedUnverified(t)
		account := store.accounts[id]
		account.VerificationCode = ""
		store.accounts[id] = account

		assert.ErrorIs(t, svc.VerifyEmail(ctx, "ada@example.com", ""), ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, _, _ := newAccountFixture(t)
		assert.ErrorIs(t, svc.VerifyEmail(ctx, "nobody@example.com", "abc123"), ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newAccountFixture(t)
	id := uuid.New()
	store.accounts[id] = accountFixture(id)

	t.Run("Partial Edit", func(t *testing.T) {
		name := "Ada & Sons"
		threshold := 10
		status := "delivered"

		account, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{
			BusinessName:       &name,
			LowStockThreshold:  &threshold,
			DefaultOrderStatus: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada & Sons", account.BusinessName)
		assert.Equal(t, 10, account.LowStockThreshold)
		assert.Equal(t, models.OrderStatusDelivered, account.DefaultOrderStatus)
		assert.Equal(t, "ada@example.com", account.Email)
	})

	t.Run("Invalid Default Status", func(t *testing.T) {
		bad := "Archived"
		_, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{DefaultOrderStatus: &bad})
		var statusErr *InvalidStatusError
		assert.ErrorAs(t, err, &statusErr)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := svc.Profile(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret")

	pair, err := svc.GenerateTokenPair(uuid.NewString(), "ada@example.com")
	require.NoError(t, err)

	t.Run("Access Token Round Trip", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.AccessToken, "access")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", claims["email"])
	})

	t.Run("Type Claim Enforced", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.RefreshToken, "access")
		assert.Error(t, err)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		_, err := NewTokenService("other-secret").ValidateToken(pair.AccessToken, "access")
		assert.Error(t, err)
	})
}
