package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	wheelhttp "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/http"
	"github.com/tactilelab/wheelforge/internal/platform/metrics"
)

// NewRouter builds the gin engine with all routes and middleware attached.
// Middleware goes on before the routes so every handler is instrumented.
// POST / is kept for clients of the first form revision.
func NewRouter(serviceName string, wheelAPI wheelhttp.WheelAPI, collector *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	if collector != nil {
		router.Use(collector.Middleware())
	}
	router.SetHTMLTemplate(wheelhttp.Templates())

	router.GET("/", wheelAPI.Index)
	router.POST("/", wheelAPI.Generate)
	router.POST("/generate", wheelAPI.Generate)
	router.GET("/history", wheelAPI.History)
	router.GET("/healthz", healthz)
	if collector != nil {
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}
	return router
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
