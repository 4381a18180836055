package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// TransformRouter sets up transform job routes. Enqueueing hangs off the
// owning project and needs editor; job reads are workspace-scoped.
func TransformRouter(ws *gin.RouterGroup, h *handler.TransformHandler) {
	ws.GET("/transforms", h.ListJobs)
	ws.GET("/transforms/:jobID", h.GetJob)

	ws.POST("/projects/:projectID/transforms", middleware.RequireRole(model.RoleEditor), h.Enqueue)
}
