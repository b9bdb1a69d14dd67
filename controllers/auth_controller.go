package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	API   *services.APIClient
	OAuth *oauth2.Config
}

func NewAuthController(api *services.APIClient) *AuthController {
	cfg := config.AppConfig
	return &AuthController{
		API: api,
		OAuth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
	}
}

// @Summary Register new user
// @Description Register a customer account with the commerce API
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	resp, err := ctrl.API.Register(c.Request.Context(), req)
	if err != nil {
		apiFailure(c, err)
		return
	}

	middleware.SetSessionToken(c, resp.Token)

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": resp.User})
}

// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	resp, err := ctrl.API.Login(c.Request.Context(), req)
	if err != nil {
		apiFailure(c, err)
		return
	}

	middleware.SetSessionToken(c, resp.Token)

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": resp.User})
}

// @Summary Logout
// @Description Drop the commerce API token; the session and its cart survive
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionToken(c)

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// @Summary OAuth login
// @Description Redirect to the OAuth provider's consent page
// @Tags Authentication
// @Success 307
// @Router /auth/oauth/login [get]
func (ctrl *AuthController) OAuthLogin(c *gin.Context) {
	state := uuid.NewString()

	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", secure, true)

	c.Redirect(http.StatusTemporaryRedirect, ctrl.OAuth.AuthCodeURL(state))
}

// @Summary OAuth callback
// @Description Exchange the authorization code for a token and bind it to the session
// @Tags Authentication
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/oauth/callback [get]
func (ctrl *AuthController) OAuthCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(401, gin.H{"success": false, "message": "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(400, gin.H{"success": false, "message": "Missing authorization code"})
		return
	}

	token, err := ctrl.OAuth.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "OAuth exchange failed"})
		return
	}

	middleware.SetSessionToken(c, token.AccessToken)

	c.JSON(200, gin.H{"success": true, "message": "Login successful"})
}
