package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/interfaces/http/routes"
)

// buildEngine assembles the gin engine: global middleware, static image
// serving and the /api routes.
func (c *Container) buildEngine(apiCfg *routes.APIRouteConfig) *gin.Engine {
	gin.SetMode(c.cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(c.log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	if c.rateLimiter != nil {
		engine.Use(c.rateLimiter.Limit())
	}

	// Ticket images are plain files on disk, served under the same
	// prefix the stored URLs carry.
	engine.Static(c.cfg.Uploads.PublicBase, c.cfg.Uploads.Dir)

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAPIRoutes(engine, apiCfg)

	return engine
}
