package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

const storageStateCookieName = "emcee_storage_state"

// IntegrationHandler handles the workspace storage integration. Connecting
// runs an OAuth flow against the configured provider; the state value
// carries the workspace and user so the callback can land without a
// session-scoped route.
type IntegrationHandler struct {
	integrationService service.IntegrationService
	studioURL          string
	isProduction       bool
}

func NewIntegrationHandler(integrationService service.IntegrationService, studioURL string, isProduction bool) *IntegrationHandler {
	return &IntegrationHandler{
		integrationService: integrationService,
		studioURL:          studioURL,
		isProduction:       isProduction,
	}
}

// Connect starts the provider OAuth flow and returns the authorization URL
// for the studio to redirect to.
func (h *IntegrationHandler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	nonce, err := generateState()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect storage"})
		return
	}

	// The nonce is base64url so it never contains a dot.
	state := fmt.Sprintf("%s.%d.%d", nonce, workspaceID, user.ID)

	authURL, err := h.integrationService.BuildAuthURL(state)
	if err != nil {
		if errors.Is(err, service.ErrStorageNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage provider not configured"})
			return
		}
		slog.ErrorContext(ctx, "failed to build storage auth url", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect storage"})
		return
	}

	c.SetCookie(storageStateCookieName, state, stateMaxAge, "/", "", h.isProduction, true)
	c.JSON(http.StatusOK, dto.ConnectStorageResponse{AuthURL: authURL, State: state})
}

// Callback completes the provider OAuth flow and redirects back to the
// studio.
func (h *IntegrationHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		slog.WarnContext(ctx, "storage provider returned error", "error", errParam)
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error="+errParam)
		return
	}

	state := c.Query("state")
	storedState, err := c.Cookie(storageStateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "storage oauth state mismatch")
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error=invalid_state")
		return
	}
	c.SetCookie(storageStateCookieName, "", -1, "/", "", h.isProduction, true)

	workspaceID, connectedBy, err := parseStorageState(state)
	if err != nil {
		slog.WarnContext(ctx, "malformed storage state", "error", err)
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error=invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error=missing_code")
		return
	}

	integration, err := h.integrationService.HandleCallback(ctx, workspaceID, code, connectedBy)
	if err != nil {
		slog.ErrorContext(ctx, "storage callback failed", "error", err, "workspace_id", workspaceID)
		if errors.Is(err, service.ErrInvalidCode) {
			c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error=invalid_code")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage_error=callback_failed")
		return
	}

	slog.InfoContext(ctx, "storage connected",
		"workspace_id", workspaceID,
		"provider", integration.Provider,
		"account", integration.AccountEmail,
	)

	c.Redirect(http.StatusTemporaryRedirect, h.studioURL+"?storage=connected")
}

// Status returns the workspace's storage integration without its tokens.
func (h *IntegrationHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	integration, err := h.integrationService.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, service.ErrIntegrationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no storage integration"})
			return
		}
		slog.ErrorContext(ctx, "failed to get storage integration", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get storage integration"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIntegrationResponse(integration))
}

func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	if err := h.integrationService.Disconnect(ctx, workspaceID); err != nil {
		if errors.Is(err, service.ErrIntegrationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no storage integration"})
			return
		}
		slog.ErrorContext(ctx, "failed to disconnect storage", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect storage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "storage disconnected"})
}

// parseStorageState splits "nonce.workspaceID.userID" back into its parts.
func parseStorageState(state string) (workspaceID, userID int64, err error) {
	parts := strings.Split(state, ".")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("expected 3 state segments, got %d", len(parts))
	}
	workspaceID, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing workspace id: %w", err)
	}
	userID, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing user id: %w", err)
	}
	return workspaceID, userID, nil
}
