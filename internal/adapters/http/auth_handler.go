package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// AuthRecorder counts sign-in outcomes by method
type AuthRecorder interface {
	RecordAuth(method, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAuth(string, string) {}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService ports.AuthService
	oauth       ports.OAuthProvider
	frontendURL string
	metrics     AuthRecorder
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler. oauth may be nil when Google
// login is not configured; metrics may be nil.
func NewAuthHandler(authService ports.AuthService, oauth ports.OAuthProvider, frontendURL string, metrics AuthRecorder, logger *logger.Logger) *AuthHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &AuthHandler{
		authService: authService,
		oauth:       oauth,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		metrics:     metrics,
		logger:      logger,
	}
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ports.SignupRequest true "Credentials"
// @Success 201 {object} ports.AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req ports.SignupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Signup(c.Request().Context(), req)
	if err != nil {
		h.metrics.RecordAuth("signup", "failure")
		return httpError(err)
	}

	h.metrics.RecordAuth("signup", "success")
	c.SetCookie(h.authService.SessionCookie(result.Token))
	return c.JSON(http.StatusCreated, result)
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ports.LoginRequest true "Credentials"
// @Success 200 {object} ports.AuthResult
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.metrics.RecordAuth("password", "failure")
		h.logger.LogSecurityEvent("login_failed", "", c.RealIP(), map[string]interface{}{"email": req.Email})
		return httpError(err)
	}

	h.metrics.RecordAuth("password", "success")
	c.SetCookie(h.authService.SessionCookie(result.Token))
	return c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.authService.ClearSessionCookie())
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} entities.User
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authService.Me(c.Request().Context(), UserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags auth
// @Success 307
// @Failure 503 {object} ErrorResponse
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if h.oauth == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Google login is not configured")
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return httpError(err)
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if h.oauth == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Google login is not configured")
	}

	stateCookie, err := c.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		h.logger.LogSecurityEvent("oauth_state_mismatch", "", c.RealIP(), nil)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid OAuth state")
	}
	c.SetCookie(&http.Cookie{Name: oauthStateCookie, Path: "/auth/google", MaxAge: -1, HttpOnly: true})

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing authorization code")
	}

	ctx := c.Request().Context()
	profile, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.logger.Warnw("Google code exchange failed", "error", err)
		h.metrics.RecordAuth("google", "failure")
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=google")
	}

	result, err := h.authService.GoogleLogin(ctx, *profile)
	if err != nil {
		h.logger.Errorw("Google login failed", "error", err)
		h.metrics.RecordAuth("google", "failure")
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=google")
	}

	h.metrics.RecordAuth("google", "success")
	c.SetCookie(h.authService.SessionCookie(result.Token))
	return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/")
}
