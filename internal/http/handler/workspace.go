package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// WorkspaceHandler handles workspace CRUD endpoints.
type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// Create creates a workspace and makes the caller its owner.
func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Create(ctx, req.Name, req.Slug, req.Description, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create workspace", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workspace"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// List returns the workspaces the caller is a member of.
func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListForUser(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list workspaces", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workspaces"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": dto.ToWorkspaceResponses(workspaces)})
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get workspace", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get workspace"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaceService.Update(ctx, workspaceID, req.Name, req.Slug, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update workspace", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workspace"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// Delete archives the workspace. Owner only.
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete workspace", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workspace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workspace deleted"})
}
