package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/services"
)

// apiContext carries the session's commerce API token into the gateway so its
// transport can attach the bearer header.
func apiContext(c *gin.Context) context.Context {
	if token := c.GetString("api_token"); token != "" {
		return services.WithToken(c.Request.Context(), token)
	}
	return c.Request.Context()
}

// apiFailure maps a gateway error onto the storefront's own response: API
// replies keep their status and message, transport failures become 502. The
// page degrades; it never crashes.
func apiFailure(c *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"success": false, "message": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Commerce API unavailable"})
}
