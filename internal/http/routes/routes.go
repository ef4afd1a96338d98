package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/http/handlers"
	"github.com/phambaophuc/texture-resizer/internal/http/middleware"
)

type Router struct {
	imageHandler *handlers.ImageHandler
	logger       *zap.Logger
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		imageHandler: imageHandler,
		logger:       logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.imageHandler.HealthCheck)
		v1.GET("/stats", r.imageHandler.GetStats)

		images := v1.Group("/images")
		images.Use(middleware.RequireContentType("multipart/form-data"))
		{
			images.POST("/resize", r.imageHandler.ResizeImage)
			images.POST("/batch/resize", r.imageHandler.BatchResize)
		}

		buffers := v1.Group("/buffers")
		buffers.Use(middleware.RequireContentType("application/octet-stream"))
		{
			buffers.POST("/resize", r.imageHandler.ResizeBuffer)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.POST("", r.imageHandler.CreateJob)
			jobs.GET("/:id", r.imageHandler.GetJob)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Texture resizer is running",
		})
	})

	return router
}
