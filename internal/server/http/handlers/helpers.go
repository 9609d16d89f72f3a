package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/garvbarthwal/kisaan/internal/domain/errors"
	"github.com/garvbarthwal/kisaan/internal/domain/model"
	"github.com/garvbarthwal/kisaan/internal/server/http/dto"
	"github.com/garvbarthwal/kisaan/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentUserRole extracts the authenticated user's role from context.
func CurrentUserRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// respondError translates domain errors into HTTP responses. Lifecycle rule
// violations are client errors; only storage failures surface as 500.
func respondError(c *gin.Context, err error) {
	var notCancellable *domainErrors.NotCancellableError

	switch {
	case errors.As(err, &notCancellable):
		respondMessage(c, http.StatusBadRequest, fmt.Sprintf("Order cannot be cancelled as it is %s.", notCancellable.Status))
	case errors.Is(err, domainErrors.ErrCancellationWindowExpired):
		respondMessage(c, http.StatusBadRequest, "Accepted orders can only be cancelled within 2 hours of placement")
	case errors.Is(err, domainErrors.ErrInsufficientStock),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrInvalidOrderItems),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidRole),
		errors.Is(err, domainErrors.ErrDeliveryFinalizeNotAllowed):
		respondMessage(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrStatusConflict):
		respondMessage(c, http.StatusConflict, "Order was modified concurrently, please retry")
	case errors.Is(err, domainErrors.ErrUnauthorized):
		respondMessage(c, http.StatusForbidden, "You are not allowed to perform this action")
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Not found")
	default:
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Message: message})
}
