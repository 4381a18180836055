package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// GuestHandler handles the guest-facing flow endpoints. Everything except
// StartSession and GetShared runs behind RequireGuest.
type GuestHandler struct {
	flowService service.GuestFlowService
}

func NewGuestHandler(flowService service.GuestFlowService) *GuestHandler {
	return &GuestHandler{flowService: flowService}
}

// StartSession joins a live event by short code and returns a guest token
// plus the composed flow.
func (h *GuestHandler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.flowService.StartSession(ctx, c.Param("shortCode"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, service.ErrEventNotLive):
			c.JSON(http.StatusGone, gin.H{"error": "event is not accepting guests"})
		default:
			slog.ErrorContext(ctx, "failed to start guest session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.GuestSessionResponse{
		Token:       session.Token,
		Guest:       dto.ToGuestResponse(session.Guest),
		Composition: dto.ToFlowCompositionResponse(session.Composition),
	})
}

// GetFlow returns the guest's current state and the event's composed flow.
func (h *GuestHandler) GetFlow(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	guest, composition, err := h.flowService.GetFlow(ctx, *identity)
	if err != nil {
		h.writeFlowError(c, err, "failed to load flow")
		return
	}

	c.JSON(http.StatusOK, dto.GuestFlowResponse{
		Guest:       dto.ToGuestResponse(guest),
		Composition: dto.ToFlowCompositionResponse(composition),
	})
}

// Advance moves the guest to a new flow state.
func (h *GuestHandler) Advance(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	var req dto.AdvanceFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := model.FlowState(req.Target)
	if !target.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flow state"})
		return
	}

	guest, err := h.flowService.Advance(ctx, *identity, target, service.AdvancePayload{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Answers:     req.Answers,
		Consent:     req.Consent,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "invalid flow transition"})
		case errors.Is(err, service.ErrNoCompletedExperience):
			c.JSON(http.StatusConflict, gin.H{"error": "complete an experience first"})
		default:
			h.writeFlowError(c, err, "failed to advance flow")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"guest": dto.ToGuestResponse(guest)})
}

// CompleteExperience records an experience completion, optionally with a
// capture. A capture on an AI experience also enqueues a transform job.
func (h *GuestHandler) CompleteExperience(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	experienceID, ok := parseIDParam(c, "experienceID")
	if !ok {
		return
	}

	// The body is optional: completing without a capture sends nothing.
	var req dto.CompleteExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var capture *service.CaptureInput
	if req.Capture != nil {
		capture = &service.CaptureInput{
			MediaURL:  req.Capture.MediaURL,
			MediaType: req.Capture.MediaType,
			TraceID:   traceIDFrom(ctx),
		}
	}

	result, err := h.flowService.CompleteExperience(ctx, *identity, experienceID, capture)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExperienceNotInRotation):
			c.JSON(http.StatusNotFound, gin.H{"error": "experience is not part of this event"})
		case errors.Is(err, service.ErrInvalidMediaType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media type"})
		default:
			h.writeFlowError(c, err, "failed to complete experience")
		}
		return
	}

	resp := dto.CompletionResponse{
		Guest:          dto.ToGuestResponse(result.Guest),
		TransformJobID: result.TransformJobID,
	}
	if result.Capture != nil {
		resp.Capture = dto.ToCaptureResponse(result.Capture)
	}

	c.JSON(http.StatusOK, resp)
}

// ListCaptures returns the guest's own captures.
func (h *GuestHandler) ListCaptures(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	captures, err := h.flowService.ListCaptures(ctx, *identity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list guest captures", "error", err, "guest_id", identity.GuestID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list captures"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"captures": dto.ToCaptureResponses(captures)})
}

// ShareCapture marks a capture shared and returns its public URL.
func (h *GuestHandler) ShareCapture(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := guestIdentity(c)
	if !ok {
		return
	}

	captureID, ok := parseIDParam(c, "captureID")
	if !ok {
		return
	}

	capture, shareURL, err := h.flowService.ShareCapture(ctx, *identity, captureID)
	if err != nil {
		if errors.Is(err, service.ErrCaptureNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "capture not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to share capture", "error", err, "capture_id", captureID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to share capture"})
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Capture:  dto.ToCaptureResponse(capture),
		ShareURL: shareURL,
	})
}

// GetShared returns the public view of a shared capture. No auth required.
func (h *GuestHandler) GetShared(c *gin.Context) {
	ctx := c.Request.Context()

	capture, err := h.flowService.GetSharedCapture(ctx, c.Param("shareCode"))
	if err != nil {
		if errors.Is(err, service.ErrCaptureNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "capture not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load shared capture", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shared capture"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSharedCaptureResponse(capture))
}

// writeFlowError maps the sentinels every flow operation can return.
func (h *GuestHandler) writeFlowError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
	case errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, service.ErrEventNotLive):
		c.JSON(http.StatusGone, gin.H{"error": "event is not accepting guests"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// guestIdentity returns the identity attached by RequireGuest, responding
// 401 when it is absent.
func guestIdentity(c *gin.Context) (*service.GuestIdentity, bool) {
	identity := middleware.GetGuestIdentity(c.Request.Context())
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "guest token required"})
		return nil, false
	}
	return identity, true
}
