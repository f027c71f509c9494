package routes

import (
	"github.com/gin-gonic/gin"

	"go-lifeline/handlers"
	"go-lifeline/pipeline"
)

func SetupRouter(runner *pipeline.Runner) *gin.Engine {
	r := gin.Default()

	// The single interactive page.
	r.StaticFile("/", "./web/index.html")

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// api routes
	api := r.Group("/api")
	{
		api.POST("/emergency", func(c *gin.Context) {
			handlers.RunEmergency(c, runner)
		})
	}

	return r
}
