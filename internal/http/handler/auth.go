package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	stateCookieName = "emcee_oauth_state"
	sessionIDHeader = "X-Session-ID"

	// sessionMaxAge is 7 days in seconds, matching the session TTL.
	sessionMaxAge = 7 * 24 * 60 * 60
	// stateMaxAge is 10 minutes in seconds, enough for the OAuth round trip.
	stateMaxAge = 600
)

// AuthHandler handles the WorkOS login flow and session endpoints.
type AuthHandler struct {
	authService  service.AuthService
	studioURL    string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, studioURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		studioURL:    studioURL,
		isProduction: isProduction,
	}
}

// Login starts the OAuth flow by redirecting to the provider's hosted page.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := generateState()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build authorization url", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	c.SetCookie(stateCookieName, state, stateMaxAge, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// Callback completes the OAuth flow: it verifies the state cookie, exchanges
// the code for a user, creates a session, and redirects back to the studio.
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		slog.WarnContext(ctx, "auth provider returned error", "error", errParam, "description", c.Query("error_description"))
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?auth_error="+errParam)
		return
	}

	state := c.Query("state")
	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "oauth state mismatch")
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?auth_error=invalid_state")
		return
	}
	h.clearStateCookie(c)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?auth_error=missing_code")
		return
	}

	user, session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "oauth callback failed", "error", err)
		if errors.Is(err, service.ErrInvalidCode) {
			c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?auth_error=invalid_code")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?auth_error=callback_failed")
		return
	}

	h.setSessionCookie(c, session.ID)

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	c.Redirect(http.StatusTemporaryRedirect, h.studioURL)
}

// Logout deletes the current session and clears the cookie. It succeeds even
// when no session is present so the client can always reset its state.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, err := h.sessionID(c); err == nil {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the user for the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.sessionID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
			h.clearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		slog.ErrorContext(ctx, "failed to validate session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// sessionID reads the session ID from the X-Session-ID header or, failing
// that, the session cookie.
func (h *AuthHandler) sessionID(c *gin.Context) (int64, error) {
	if raw := c.GetHeader(sessionIDHeader); raw != "" {
		return strconv.ParseInt(raw, 10, 64)
	}
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(middleware.SessionCookieName, strconv.FormatInt(sessionID, 10), sessionMaxAge, "/", "", h.isProduction, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.isProduction, true)
}

func (h *AuthHandler) clearStateCookie(c *gin.Context) {
	c.SetCookie(stateCookieName, "", -1, "/", "", h.isProduction, true)
}

// generateState produces a random URL-safe state value for OAuth flows.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
