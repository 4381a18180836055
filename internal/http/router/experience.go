package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// ExperienceRouter sets up experience routes, mirroring the event layout.
func ExperienceRouter(ws *gin.RouterGroup, h *handler.ExperienceHandler) {
	ws.GET("/projects/:projectID/experiences", h.List)
	ws.GET("/experiences/:experienceID", h.Get)

	editor := ws.Group("")
	editor.Use(middleware.RequireRole(model.RoleEditor))
	{
		editor.POST("/projects/:projectID/experiences", h.Create)
		editor.PATCH("/experiences/:experienceID", h.Rename)
		editor.PATCH("/experiences/:experienceID/draft", h.UpdateDraft)
		editor.POST("/experiences/:experienceID/publish", h.Publish)
		editor.DELETE("/experiences/:experienceID", h.Delete)
	}
}
