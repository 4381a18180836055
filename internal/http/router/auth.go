package router

import (
	"emcee.events/emcee/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// AuthRouter sets up the login flow and session routes. The storage
// integration callback also lands here since the provider redirects
// without a session.
func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, integrations *handler.IntegrationHandler) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)

	rg.GET("/integrations/storage/callback", integrations.Callback)
}
