package handler

import (
	"context"
	"net/http"
	"strconv"

	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// parseIDParam returns the named path parameter as an int64. On failure it
// writes a 400 response and returns false; the caller should return
// immediately.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user attached by RequireAuth,
// responding 401 when it is absent.
func currentUser(c *gin.Context) (*model.User, bool) {
	user := middleware.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	return user, true
}

// traceIDFrom extracts the current trace ID so queue messages produced by
// this request can carry it.
func traceIDFrom(ctx context.Context) *string {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		traceID := spanCtx.TraceID().String()
		return &traceID
	}
	return nil
}
