package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project endpoints within a workspace.
type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.Create(ctx, workspaceID, req.Name, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create project", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	projects, err := h.projectService.List(ctx, workspaceID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list projects", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectResponses(projects)})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	project, err := h.projectService.Get(ctx, workspaceID, projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Rename(ctx, workspaceID, projectID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to rename project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rename project"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// UpdateDraft merges a patch into the project's draft config.
func (h *ProjectHandler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.UpdateDraft(ctx, workspaceID, projectID, req.Patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		case errors.Is(err, service.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch must not be empty"})
		case errors.Is(err, service.ErrPatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch too large"})
		default:
			slog.ErrorContext(ctx, "failed to update project draft", "error", err, "project_id", projectID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project draft"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// Publish promotes the project's draft config to the published config.
func (h *ProjectHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	project, err := h.projectService.Publish(ctx, workspaceID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		case errors.Is(err, service.ErrNoDraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing to publish"})
		default:
			slog.ErrorContext(ctx, "failed to publish project", "error", err, "project_id", projectID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// Duplicate copies the project's draft config into a new draft project.
func (h *ProjectHandler) Duplicate(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.Duplicate(ctx, workspaceID, projectID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to duplicate project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to duplicate project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	if err := h.projectService.Delete(ctx, workspaceID, projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete project", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
