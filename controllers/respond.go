package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/middleware"
	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/services"
)

// respondError translates a service error into the HTTP envelope. Validation
// and structural errors keep their messages; anything unrecognized is a fatal
// storage-layer error and is never leaked to the client.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var ve services.ValidationErrors
	var statusErr *services.InvalidStatusError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"detail": ve})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": statusErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrOnlyPendingEditable),
		errors.Is(err, services.ErrOnlyPendingDeletable),
		errors.Is(err, services.ErrOnlyQuantityEditable),
		errors.Is(err, services.ErrLastOrderedItem),
		errors.Is(err, services.ErrDuplicateInventory),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	default:
		log.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Something went wrong"})
	}
}

// owner pulls the resolved owner id from the request context, writing the
// unauthorized envelope itself when the auth middleware did not run.
func owner(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.OwnerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter, writing the 404 envelope on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return uuid.Nil, false
	}
	return id, true
}
