package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// PresetRouter sets up AI preset routes. Mutations need editor.
func PresetRouter(rg *gin.RouterGroup, h *handler.PresetHandler) {
	rg.GET("", h.List)
	rg.GET("/:presetID", h.Get)

	editor := rg.Group("")
	editor.Use(middleware.RequireRole(model.RoleEditor))
	{
		editor.POST("", h.Create)
		editor.PATCH("/:presetID", h.Rename)
		editor.PATCH("/:presetID/draft", h.UpdateDraft)
		editor.POST("/:presetID/publish", h.Publish)
		editor.DELETE("/:presetID", h.Delete)
	}
}
