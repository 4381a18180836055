package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	// SessionCookieName carries the admin session ID. The auth handler sets
	// it on login and clears it on logout.
	SessionCookieName = "emcee_session"

	sessionIDHeader = "X-Session-ID"

	userContextKey       contextKey = "user"
	sessionIDContextKey  contextKey = "session_id"
	membershipContextKey contextKey = "membership"
)

// RequireAuth resolves the session from the emcee_session cookie or the
// X-Session-ID header and attaches the authenticated user to the request
// context.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := sessionIDFrom(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := auth.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				clearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := WithUser(c.Request.Context(), user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// WorkspaceScope parses the :workspaceID route parameter and resolves the
// caller's membership in that workspace. Any member passes; per-route role
// floors are layered on with RequireRole.
func WorkspaceScope(members service.MemberService) gin.HandlerFunc {
	return func(c *gin.Context) {
		workspaceID, err := strconv.ParseInt(c.Param("workspaceID"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
			return
		}

		user := GetUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		member, err := members.GetMembership(c.Request.Context(), workspaceID, user.ID)
		if err != nil {
			if errors.Is(err, service.ErrMemberNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this workspace"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve membership"})
			return
		}

		c.Request = c.Request.WithContext(WithMembership(c.Request.Context(), member))
		c.Next()
	}
}

// RequireRole aborts with 403 unless the membership resolved by
// WorkspaceScope holds at least min.
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := GetMembership(c.Request.Context())
		if member == nil || !member.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func WithMembership(ctx context.Context, member *model.WorkspaceMember) context.Context {
	return context.WithValue(ctx, membershipContextKey, member)
}

func GetMembership(ctx context.Context) *model.WorkspaceMember {
	member, _ := ctx.Value(membershipContextKey).(*model.WorkspaceMember)
	return member
}

func sessionIDFrom(c *gin.Context) (int64, error) {
	if raw := c.GetHeader(sessionIDHeader); raw != "" {
		return strconv.ParseInt(raw, 10, 64)
	}
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}
