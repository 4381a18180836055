package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// IntegrationRouter sets up storage integration routes. Connect and
// disconnect need admin; the OAuth callback is registered under /auth
// instead since the provider redirect carries no session.
func IntegrationRouter(rg *gin.RouterGroup, h *handler.IntegrationHandler) {
	rg.GET("", h.Status)

	admin := rg.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/connect", h.Connect)
		admin.DELETE("", h.Disconnect)
	}
}
