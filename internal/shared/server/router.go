package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"knowledge-backend/internal/knowledge"
	"knowledge-backend/internal/qa"
	"knowledge-backend/internal/shared/config"
	"knowledge-backend/internal/shared/metrics"
	"knowledge-backend/internal/shared/server/middleware"
	"knowledge-backend/internal/shared/server/respond"
)

// RouterDeps collects the handlers the router exposes.
type RouterDeps struct {
	Config           config.Config
	KnowledgeHandler *knowledge.Handler
	QAHandler        *qa.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	if deps.KnowledgeHandler != nil {
		deps.KnowledgeHandler.RegisterRoutes(api)
	}
	if deps.QAHandler != nil {
		deps.QAHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
