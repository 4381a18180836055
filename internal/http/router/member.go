package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// MemberRouter sets up membership routes. Mutations need admin.
func MemberRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.GET("", h.List)

	admin := rg.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("", h.Add)
		admin.PATCH("/:userID", h.UpdateRole)
		admin.DELETE("/:userID", h.Remove)
	}
}
