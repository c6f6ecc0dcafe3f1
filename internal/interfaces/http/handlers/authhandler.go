package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/codearena/arena-admin/internal/application/auth/usecases"
	"github.com/codearena/arena-admin/internal/shared/config"
	"github.com/codearena/arena-admin/internal/shared/constants"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      loginUseCase
	refreshUC    refreshTokenUseCase
	logoutUC     logoutUseCase
	currentUC    getCurrentStaffUseCase
	cookieConfig config.CookieConfig
	refreshTTL   time.Duration
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	refreshUC refreshTokenUseCase,
	logoutUC logoutUseCase,
	currentUC getCurrentStaffUseCase,
	cookieConfig config.CookieConfig,
	refreshTTL time.Duration,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		logoutUC:     logoutUC,
		currentUC:    currentUC,
		cookieConfig: cookieConfig,
		refreshTTL:   refreshTTL,
		logger:       logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse carries the tokens for non-browser clients; browsers use the cookies.
type LoginResponse struct {
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
	ExpiresIn    int64                  `json:"expires_in"`
	Staff        *authUsecases.StaffDTO `json:"staff"`
}

// Login handles POST /auth/login
// @Summary Staff login
// @Description Authenticate a staff account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Request body"
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	res, err := h.loginUC.Execute(c.Request.Context(), authUsecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setCookies(c, res.Tokens.AccessToken, res.Tokens.RefreshToken, res.Tokens.ExpiresIn)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		ExpiresIn:    res.Tokens.ExpiresIn,
		Staff:        res.Staff,
	})
}

// RefreshToken handles POST /auth/refresh
// @Summary Refresh access token
// @Description Exchange a refresh token from the body or cookie for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Request body"
// @Success 200 {object} utils.APIResponse{data=auth.TokenPair}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := utils.TokenFromRequest(c, utils.RefreshTokenCookie)
	if token == "" {
		var req RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.refreshUC.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ClearAuthCookies(c, h.cookieConfig)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setCookies(c, pair.AccessToken, pair.RefreshToken, pair.ExpiresIn)
	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", pair)
}

// Logout handles POST /auth/logout
// @Summary Staff logout
// @Description Revoke the current session and clear auth cookies
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)
	if err := h.logoutUC.Execute(c.Request.Context(), sessionID); err != nil {
		h.logger.Warnw("logout failed", "session_id", sessionID, "error", err)
	}

	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// GetCurrentStaff handles GET /auth/me
// @Summary Current staff
// @Description Get the staff account of the current session
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=authUsecases.StaffDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentStaff(c *gin.Context) {
	me, err := h.currentUC.Execute(c.Request.Context(), c.GetString(constants.ContextKeySessionID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", me)
}

func (h *AuthHandler) setCookies(c *gin.Context, access, refresh string, expiresIn int64) {
	utils.SetAuthCookies(c, h.cookieConfig, access, refresh, int(expiresIn), int(h.refreshTTL.Seconds()))
}
