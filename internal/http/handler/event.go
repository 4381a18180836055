package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event endpoints within a project.
type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(ctx, workspaceID, projectID, req.Name, req.StartsAt, req.EndsAt, req.Venue, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to create event", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectID")
	if !ok {
		return
	}

	events, err := h.eventService.List(ctx, workspaceID, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list events", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventResponses(events)})
}

func (h *EventHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	event, err := h.eventService.Get(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get event", "error", err, "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// UpdateMeta replaces the event's name, schedule, and venue. Config changes
// go through the draft patch endpoint instead.
func (h *EventHandler) UpdateMeta(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateMeta(ctx, workspaceID, eventID, req.Name, req.StartsAt, req.EndsAt, req.Venue)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update event", "error", err, "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateDraft(ctx, workspaceID, eventID, req.Patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, service.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch must not be empty"})
		case errors.Is(err, service.ErrPatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch too large"})
		default:
			slog.ErrorContext(ctx, "failed to update event draft", "error", err, "event_id", eventID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event draft"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Publish promotes the event draft after validating its rotation against
// published experiences.
func (h *EventHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	event, err := h.eventService.Publish(ctx, workspaceID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, service.ErrNoDraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing to publish"})
		case errors.Is(err, service.ErrRotationUnknownExperience):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "rotation references an unknown experience"})
		case errors.Is(err, service.ErrRotationUnpublished):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "rotation references an unpublished experience"})
		default:
			slog.ErrorContext(ctx, "failed to publish event", "error", err, "event_id", eventID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	if err := h.eventService.Delete(ctx, workspaceID, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete event", "error", err, "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// Guests lists the guests who joined the event.
func (h *EventHandler) Guests(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	guests, err := h.eventService.Guests(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list guests", "error", err, "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"guests": dto.ToGuestResponses(guests)})
}

// Captures lists the captures produced at the event.
func (h *EventHandler) Captures(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventID")
	if !ok {
		return
	}

	captures, err := h.eventService.Captures(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list captures", "error", err, "event_id", eventID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list captures"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"captures": dto.ToCaptureResponses(captures)})
}
