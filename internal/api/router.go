package api

import (
	"net/http"

	"github.com/Ayash-Bera/fortaleza/internal/api/handlers"
	"github.com/Ayash-Bera/fortaleza/internal/config"
	"github.com/Ayash-Bera/fortaleza/internal/health"
	"github.com/Ayash-Bera/fortaleza/internal/middleware"
	"github.com/Ayash-Bera/fortaleza/internal/relay"
	"github.com/Ayash-Bera/fortaleza/web"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route of the relay onto a fresh gin engine.
func NewRouter(cfg *config.Config, r *relay.Relay, logger *logrus.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(),
		middleware.BodyLimit(middleware.MaxBodyBytes),
	)

	queryHandler := handlers.NewQueryHandler(r, logger)
	systemHandler := handlers.NewSystemHandler(health.NewChecker(cfg), web.IndexHTML)

	engine.GET("/", systemHandler.HandleIndex)
	engine.StaticFS("/static", http.FS(web.Static()))
	engine.GET("/health", systemHandler.HandleHealth)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/query", queryHandler.HandleQuery)
		apiGroup.GET("/info", systemHandler.HandleInfo)
	}

	engine.NoRoute(systemHandler.HandleNotFound(cfg.Server.RedirectUnknown))

	return engine
}
