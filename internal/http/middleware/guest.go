package middleware

import (
	"context"
	"net/http"
	"strings"

	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

const guestIdentityContextKey contextKey = "guest_identity"

// RequireGuest verifies the bearer guest token issued at session start and
// attaches the decoded identity to the request context.
func RequireGuest(tokens service.GuestTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := guestToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "guest token required"})
			return
		}

		identity, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid guest token"})
			return
		}

		c.Request = c.Request.WithContext(WithGuestIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func WithGuestIdentity(ctx context.Context, identity *service.GuestIdentity) context.Context {
	return context.WithValue(ctx, guestIdentityContextKey, identity)
}

func GetGuestIdentity(ctx context.Context) *service.GuestIdentity {
	identity, _ := ctx.Value(guestIdentityContextKey).(*service.GuestIdentity)
	return identity
}

func guestToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.GetHeader("X-Guest-Token")
}
