package server

import (
	"errors"
	"net/http"
	"time"

	"gigflow/internal/models"
	"gigflow/services/gigwork/helpers"
	"gigflow/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware adopts the identity established by the external auth
// layer from the X-User-ID / X-User-Name headers. This service does not
// authenticate; it only carries whatever identity the front door verified.
func IdentityMiddleware(c *gin.Context) {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		c.Set(helpers.ContextUserKey, models.User{
			UserID:   userID,
			Username: c.GetHeader("X-User-Name"),
		})
	}
	c.Next()
}

// RequireIdentity aborts with 401 when the request carries no identity
func RequireIdentity(c *gin.Context) {
	if _, ok := c.Get(helpers.ContextUserKey); !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing X-User-ID header"), "authentication required")
		c.Abort()
		return
	}
	c.Next()
}
