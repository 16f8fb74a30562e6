package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// respondError translates a domain error to its HTTP status. Unexpected
// errors get a generic message so internals never leak to the client.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.HTTPStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Unexpected error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = errs.ErrInternalServer.Error()
	}

	c.JSON(status, dto.ErrorResponse{Error: message})
}

// authenticatedUser pulls the user ID set by the auth middleware.
// A missing ID means the route was wired without RequireAuth.
func authenticatedUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: errs.ErrMissingToken.Error(),
		})
	}
	return userID, ok
}
