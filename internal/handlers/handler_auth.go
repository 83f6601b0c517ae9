package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
	"github.com/tulu-g559/talkheal-backend/internal/middleware"
	"github.com/tulu-g559/talkheal-backend/internal/utils"
)

const oauthStateCookie = "oauth_state"

// authHandler handles registration, login, token refresh and the Google
// sign-in flow.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(user portssvc.UserSvcFacade, token portssvc.TokenSvcFacade, oauth portssvc.GoogleOAuthSvcFacade) *authHandler {
	return &authHandler{
		userService:  user,
		tokenService: token,
		oauthService: oauth,
	}
}

// issueTokenPair mints the access and refresh tokens for user and writes the
// success response.
func (h *authHandler) issueTokenPair(c *gin.Context, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, _, err := h.tokenService.GenerateAndStoreRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt.Format(time.RFC3339),
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}

// register godoc
// @Summary Register a new account
// @Description Creates a local account with email and password.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to register"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in
// @Description Authenticates with email and password, returning an access/refresh token pair.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Failed to generate token"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same response for unknown email and wrong password, so the endpoint
		// does not reveal which accounts exist.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.issueTokenPair(c, user)
}

// refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new access/refresh token pair. The old refresh token is rotated out.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshRequest true "User ID and refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired, please log in again"})
			return
		}
		logger.Warn("Refresh token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	h.issueTokenPair(c, user)
}

// googleLogin godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen. A CSRF state value is stored in a short-lived cookie.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} map[string]string "Failed to start sign-in"
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(24)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}

	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthCodeURL(state))
}

// googleCallback godoc
// @Summary Complete Google sign-in
// @Description Verifies the CSRF state and the returned code, resolves the local account and returns a token pair.
// @Tags auth
// @Produce  json
// @Param   state query string true "CSRF state from the consent redirect"
// @Param   code query string true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Missing or mismatched state/code"
// @Failure 401 {object} map[string]string "Google identity could not be verified"
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	// One-shot state: clear the cookie whatever happens next.
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	user, err := h.oauthService.ExchangeAndVerify(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google sign-in failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in could not be verified"})
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", user.UserID))
	h.issueTokenPair(c, user)
}

// registerAuthRoutes sets up the public authentication routes. Login and
// register carry a tighter per-IP rate limit than the global budget.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token, services.GoogleOAuth)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", h.refresh)
		auth.GET("/google/login", h.googleLogin)
		auth.GET("/google/callback", h.googleCallback)
	}
}
