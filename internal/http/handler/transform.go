package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// TransformHandler handles transform job endpoints.
type TransformHandler struct {
	transformService service.TransformService
}

func NewTransformHandler(transformService service.TransformService) *TransformHandler {
	return &TransformHandler{transformService: transformService}
}

// Enqueue creates a transform job for a capture and queues it for the
// worker. Returns 202 since the transform runs asynchronously.
func (h *TransformHandler) Enqueue(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	var req dto.EnqueueTransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.transformService.Enqueue(ctx, service.TransformParams{
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		CaptureID:   req.CaptureID,
		PresetID:    req.PresetID,
		TraceID:     traceIDFrom(ctx),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptureNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "capture not found"})
		case errors.Is(err, service.ErrPresetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		case errors.Is(err, service.ErrCaptureMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "capture belongs to a different project"})
		case errors.Is(err, service.ErrPresetUnpublished):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "preset is not published"})
		default:
			slog.ErrorContext(ctx, "failed to enqueue transform", "error", err, "capture_id", req.CaptureID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue transform"})
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.ToTransformJobResponse(job))
}

func (h *TransformHandler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "jobID")
	if !ok {
		return
	}

	job, err := h.transformService.GetJob(ctx, workspaceID, jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transform job not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get transform job", "error", err, "job_id", jobID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transform job"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransformJobResponse(job))
}

// ListJobs returns recent transform jobs for the workspace, newest first.
func (h *TransformHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	jobs, err := h.transformService.ListJobs(ctx, workspaceID, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list transform jobs", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transform jobs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": dto.ToTransformJobResponses(jobs)})
}
