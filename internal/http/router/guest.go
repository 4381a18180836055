package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// GuestRouter sets up the public guest API.
// - session start and shared-capture lookup are unauthenticated
// - everything else requires a guest token
func GuestRouter(rg *gin.RouterGroup, h *handler.GuestHandler, tokens service.GuestTokenService) {
	rg.POST("/events/:shortCode/session", h.StartSession)
	rg.GET("/share/:shareCode", h.GetShared)

	authed := rg.Group("")
	authed.Use(middleware.RequireGuest(tokens))
	{
		authed.GET("/flow", h.GetFlow)
		authed.POST("/flow/advance", h.Advance)
		authed.POST("/experiences/:experienceID/complete", h.CompleteExperience)
		authed.GET("/captures", h.ListCaptures)
		authed.POST("/captures/:captureID/share", h.ShareCapture)
	}
}
