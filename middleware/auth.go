package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// OwnerContextKey is where the resolved account id lives in the gin context.
const OwnerContextKey = "ownerID"

// Auth resolves the owner identity from a bearer access token. Session
// issuance itself happens in the account endpoints; everything behind this
// middleware only ever sees a resolved uuid.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "), "access")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}

		sub, _ := claims["sub"].(string)
		ownerID, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}

		c.Set(OwnerContextKey, ownerID)
		c.Next()
	}
}

// OwnerID returns the account id the auth middleware resolved.
func OwnerID(c *gin.Context) (uuid.UUID, error) {
	if val, ok := c.Get(OwnerContextKey); ok {
		if id, ok := val.(uuid.UUID); ok {
			return id, nil
		}
	}
	return uuid.Nil, errors.New("owner ID not found in context")
}
