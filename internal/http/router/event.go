package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// EventRouter sets up event routes. Creation and listing hang off the
// owning project; item routes are workspace-scoped since event IDs are
// unique. Mutations need editor.
func EventRouter(ws *gin.RouterGroup, h *handler.EventHandler) {
	ws.GET("/projects/:projectID/events", h.List)
	ws.GET("/events/:eventID", h.Get)
	ws.GET("/events/:eventID/guests", h.Guests)
	ws.GET("/events/:eventID/captures", h.Captures)

	editor := ws.Group("")
	editor.Use(middleware.RequireRole(model.RoleEditor))
	{
		editor.POST("/projects/:projectID/events", h.Create)
		editor.PATCH("/events/:eventID", h.UpdateMeta)
		editor.PATCH("/events/:eventID/draft", h.UpdateDraft)
		editor.POST("/events/:eventID/publish", h.Publish)
		editor.DELETE("/events/:eventID", h.Delete)
	}
}
