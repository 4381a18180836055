package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// ExperienceHandler handles experience endpoints within a project.
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	experience, err := h.experienceService.Create(ctx, workspaceID, projectID, req.Name, model.ExperienceKind(req.Kind), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidExperienceKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience kind"})
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		default:
			slog.ErrorContext(ctx, "failed to create experience", "error", err, "project_id", projectID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create experience"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceResponse(experience))
}

func (h *ExperienceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	experiences, err := h.experienceService.List(ctx, workspaceID, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list experiences", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list experiences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"experiences": dto.ToExperienceResponses(experiences)})
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	experience, err := h.experienceService.Get(ctx, workspaceID, experienceID)
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get experience", "error", err, "experience_id", experienceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get experience"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(experience))
}

func (h *ExperienceHandler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	experience, err := h.experienceService.Rename(ctx, workspaceID, experienceID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to rename experience", "error", err, "experience_id", experienceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rename experience"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(experience))
}

func (h *ExperienceHandler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	experience, err := h.experienceService.UpdateDraft(ctx, workspaceID, experienceID, req.Patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
		case errors.Is(err, service.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch must not be empty"})
		case errors.Is(err, service.ErrPatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch too large"})
		default:
			slog.ErrorContext(ctx, "failed to update experience draft", "error", err, "experience_id", experienceID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update experience draft"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(experience))
}

// Publish promotes the experience draft after validating any preset
// reference against published presets.
func (h *ExperienceHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	experience, err := h.experienceService.Publish(ctx, workspaceID, experienceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
		case errors.Is(err, service.ErrNoDraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing to publish"})
		case errors.Is(err, service.ErrPresetRefNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "draft references an unknown preset"})
		case errors.Is(err, service.ErrPresetRefUnpublished):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "draft references an unpublished preset"})
		default:
			slog.ErrorContext(ctx, "failed to publish experience", "error", err, "experience_id", experienceID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish experience"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(experience))
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	if err := h.experienceService.Delete(ctx, workspaceID, experienceID); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete experience", "error", err, "experience_id", experienceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete experience"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}
