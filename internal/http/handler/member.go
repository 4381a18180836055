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

// MemberHandler handles workspace membership endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	members, err := h.memberService.List(ctx, workspaceID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list members", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.ToMemberResponses(members)})
}

// Add adds an existing user to the workspace by email.
func (h *MemberHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	member, err := h.memberService.Add(ctx, workspaceID, req.Email, model.Role(req.Role), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no user with this email"})
		case errors.Is(err, service.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": "user is already a member"})
		default:
			slog.ErrorContext(ctx, "failed to add member", "error", err, "workspace_id", workspaceID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *MemberHandler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateRole(ctx, workspaceID, userID, model.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		case errors.Is(err, service.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, service.ErrLastOwner):
			c.JSON(http.StatusConflict, gin.H{"error": "workspace must keep at least one owner"})
		default:
			slog.ErrorContext(ctx, "failed to update member role", "error", err, "workspace_id", workspaceID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member role"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *MemberHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	if err := h.memberService.Remove(ctx, workspaceID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, service.ErrLastOwner):
			c.JSON(http.StatusConflict, gin.H{"error": "workspace must keep at least one owner"})
		default:
			slog.ErrorContext(ctx, "failed to remove member", "error", err, "workspace_id", workspaceID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove member"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}
