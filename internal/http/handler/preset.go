package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// PresetHandler handles AI preset endpoints within a workspace.
type PresetHandler struct {
	presetService service.PresetService
}

func NewPresetHandler(presetService service.PresetService) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

func (h *PresetHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	preset, err := h.presetService.Create(ctx, workspaceID, req.Name, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create preset", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create preset"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresetResponse(preset))
}

func (h *PresetHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	presets, err := h.presetService.List(ctx, workspaceID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list presets", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list presets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"presets": dto.ToPresetResponses(presets)})
}

func (h *PresetHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	presetID, ok := parseIDParam(c, "presetID")
	if !ok {
		return
	}

	preset, err := h.presetService.Get(ctx, workspaceID, presetID)
	if err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get preset", "error", err, "preset_id", presetID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get preset"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *PresetHandler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	presetID, ok := parseIDParam(c, "presetID")
	if !ok {
		return
	}

	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetService.Rename(ctx, workspaceID, presetID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to rename preset", "error", err, "preset_id", presetID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rename preset"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *PresetHandler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	presetID, ok := parseIDParam(c, "presetID")
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetService.UpdateDraft(ctx, workspaceID, presetID, req.Patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		case errors.Is(err, service.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch must not be empty"})
		case errors.Is(err, service.ErrPatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch too large"})
		default:
			slog.ErrorContext(ctx, "failed to update preset draft", "error", err, "preset_id", presetID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preset draft"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *PresetHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	presetID, ok := parseIDParam(c, "presetID")
	if !ok {
		return
	}

	preset, err := h.presetService.Publish(ctx, workspaceID, presetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		case errors.Is(err, service.ErrNoDraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing to publish"})
		default:
			slog.ErrorContext(ctx, "failed to publish preset", "error", err, "preset_id", presetID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish preset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *PresetHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	presetID, ok := parseIDParam(c, "presetID")
	if !ok {
		return
	}

	if err := h.presetService.Delete(ctx, workspaceID, presetID); err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete preset", "error", err, "preset_id", presetID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete preset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "preset deleted"})
}
