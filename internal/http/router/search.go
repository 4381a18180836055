package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/model"
	"github.com/gin-gonic/gin"
)

// SearchRouter sets up content search routes. Reindex needs admin.
func SearchRouter(rg *gin.RouterGroup, h *handler.SearchHandler) {
	rg.GET("", h.Search)
	rg.POST("/reindex", middleware.RequireRole(model.RoleAdmin), h.Reindex)
}
