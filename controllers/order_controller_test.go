package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/middleware"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// orderRouter mounts the order creation route behind a stubbed auth middleware
// so requests reach the JSON binding layer without a real token.
func orderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	oc := NewOrderController(nil, nil, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.OwnerContextKey, uuid.New())
	})
	r.POST("/orders", oc.Create)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderBinding(t *testing.T) {
	r := orderRouter()

	t.Run("Missing Client Name", func(t *testing.T) {
		w := postJSON(r, "/orders", `{"ordered_items": [{"name": "Helmet", "quantity": 1, "price": 6000}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fractional Quantity Rejected By JSON Layer", func(t *testing.T) {
		w := postJSON(r, "/orders", `{"client_name": "Ada Obi", "ordered_items": [{"name": "Helmet", "quantity": 5.5, "price": 6000}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := postJSON(r, "/orders", `{"client_name": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"Validation Errors", services.ValidationErrors{"Helmet": {"'Helmet' doesn't exist in the Inventory."}}, http.StatusBadRequest, "Helmet"},
		{"Invalid Status", &services.InvalidStatusError{Value: "Shipped"}, http.StatusBadRequest, "'Shipped' is not a valid order status"},
		{"Not Found", services.ErrNotFound, http.StatusNotFound, "Item not found"},
		{"Empty Order", services.ErrEmptyOrder, http.StatusBadRequest, "at least one Ordered product"},
		{"Only Pending Editable", services.ErrOnlyPendingEditable, http.StatusBadRequest, "Only pending orders can be edited"},
		{"Last Ordered Item", services.ErrLastOrderedItem, http.StatusBadRequest, "delete the order instead"},
		{"Invalid Credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"Fatal Is Opaque", fmt.Errorf("pq: deadlock detected"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, zap.NewNop(), tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
			if tc.status == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "deadlock")
			}
		})
	}
}
