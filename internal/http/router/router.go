package router

import (
	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/http/middleware"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	StudioURL    string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.StudioURL, cfg.IsProduction)
	integrationHandler := handler.NewIntegrationHandler(services.Integrations(), cfg.StudioURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, integrationHandler)

	guestHandler := handler.NewGuestHandler(services.GuestFlow())
	GuestRouter(router.Group("/guest/v1"), guestHandler, services.GuestTokens())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(services.Auth()))
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		v1.POST("/workspaces", workspaceHandler.Create)
		v1.GET("/workspaces", workspaceHandler.List)

		// Everything below is scoped to one workspace; WorkspaceScope
		// rejects non-members and stashes the membership for the
		// per-route role floors.
		ws := v1.Group("/workspaces/:workspaceID")
		ws.Use(middleware.WorkspaceScope(services.Members()))

		WorkspaceRouter(ws, workspaceHandler)
		MemberRouter(ws.Group("/members"), handler.NewMemberHandler(services.Members()))
		ProjectRouter(ws.Group("/projects"), handler.NewProjectHandler(services.Projects()))
		EventRouter(ws, handler.NewEventHandler(services.Events()))
		ExperienceRouter(ws, handler.NewExperienceHandler(services.Experiences()))
		PresetRouter(ws.Group("/presets"), handler.NewPresetHandler(services.Presets()))
		TransformRouter(ws, handler.NewTransformHandler(services.Transforms()))
		IntegrationRouter(ws.Group("/integrations/storage"), integrationHandler)
		SearchRouter(ws.Group("/search"), handler.NewSearchHandler(services.Search()))
	}
}
