package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/models"
	"storefront/utils"
)

const SessionCookie = "storefront_session"

// SessionMiddleware guarantees every request carries a session: the cookie is
// a signed JWT holding the session id and, after login, the commerce API
// bearer token. A missing, expired, or tampered cookie silently gets a fresh
// anonymous session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.AppConfig

		var claims *utils.SessionClaims
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if parsed, err := utils.ParseSession(cfg.SessionSecret, cookie); err == nil {
				claims = parsed
			}
		}

		if claims == nil {
			claims = &utils.SessionClaims{SessionID: uuid.NewString()}
			issueCookie(c, claims)
		}

		c.Set("session_id", claims.SessionID)
		if claims.APIToken != "" {
			c.Set("api_token", claims.APIToken)
		}
		c.Next()
	}
}

// SetSessionToken re-issues the session cookie with the commerce API token
// after a successful login, keeping the same session id so the cart survives.
func SetSessionToken(c *gin.Context, token string) {
	claims := &utils.SessionClaims{
		SessionID: c.GetString("session_id"),
		APIToken:  token,
	}
	issueCookie(c, claims)
	c.Set("api_token", token)
}

// ClearSessionToken drops the API token but keeps the session (and its cart).
func ClearSessionToken(c *gin.Context) {
	claims := &utils.SessionClaims{SessionID: c.GetString("session_id")}
	issueCookie(c, claims)
}

func issueCookie(c *gin.Context, claims *utils.SessionClaims) {
	cfg := config.AppConfig

	signed, err := utils.SignSession(cfg.SessionSecret, *claims, cfg.SessionTTL)
	if err != nil {
		log.Println("session: failed to sign cookie:", err)
		return
	}

	secure := cfg.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, signed, int(cfg.SessionTTL.Seconds()), "/", "", secure, true)
}

// RequireAuth gates routes that need a logged-in commerce API session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("api_token") == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Login required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
