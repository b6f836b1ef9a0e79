package api

import (
	"errors"
	"net/http"

	reqdto "fitroom-backend/internal/handler/dto/request"
	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/handler/httperr"
	"fitroom-backend/internal/handler/middleware"
	"fitroom-backend/internal/pkg/config"
	"fitroom-backend/internal/pkg/cookie"
	"fitroom-backend/internal/pkg/jwt"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cookieCfg,
	}
}

// @Summary User login
// @Description Login with email and password; tokens are set as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		return
	}

	pair, user, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.OK("Logged in", resdto.LoginResponse{
		User: resdto.FromAuthorizedUserView(user),
	}))
}

// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new token pair
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrInvalidRefreshToken, "Refresh token required")
		return
	}

	pair, err := h.authCommands.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRefreshToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token")
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.OK("Tokens refreshed", nil))
}

// @Summary User logout
// @Description Clear the token cookies
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.OK("Logged out", nil))
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated")
		return
	}

	user, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Current user", resdto.FromAuthorizedUserView(user)))
}
