package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	authport "github.com/fintrack-app/fintrack/internal/domain/port/auth"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
)

const (
	bearerPrefix  = "Bearer "
	userIDKey     = "userID"
	authorization = "Authorization"
)

// RequireAuth rejects requests that do not carry a valid bearer token and
// stores the authenticated user ID on the request context.
func RequireAuth(tokens authport.TokenService, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorization)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: errs.ErrMissingToken.Error(),
			})
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: errs.ErrInvalidToken.Error(),
			})
			return
		}

		userID, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			logger.Debug("Rejected token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: errs.ErrInvalidToken.Error(),
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user ID stored by RequireAuth.
// It returns false if the middleware did not run on this request.
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
