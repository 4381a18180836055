package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// WorkspaceRouter sets up routes on the workspace-scoped group. Reads are
// open to any member; update needs admin, delete needs owner.
func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.Get)
	rg.PATCH("", middleware.RequireRole(model.RoleAdmin), h.Update)
	rg.DELETE("", middleware.RequireRole(model.RoleOwner), h.Delete)
}
