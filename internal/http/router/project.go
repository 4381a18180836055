package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// ProjectRouter sets up project routes. Mutations need editor.
func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler) {
	rg.GET("", h.List)
	rg.GET("/:projectID", h.Get)

	editor := rg.Group("")
	editor.Use(middleware.RequireRole(model.RoleEditor))
	{
		editor.POST("", h.Create)
		editor.PATCH("/:projectID", h.Rename)
		editor.PATCH("/:projectID/draft", h.UpdateDraft)
		editor.POST("/:projectID/publish", h.Publish)
		editor.POST("/:projectID/duplicate", h.Duplicate)
		editor.DELETE("/:projectID", h.Delete)
	}
}
