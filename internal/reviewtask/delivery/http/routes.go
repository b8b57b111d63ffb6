package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/tags", h.AddTag)
		tasks.DELETE("/:id/tags", h.RemoveTag)
	}
	rg.GET("/tags", mw.RateLimit(), h.Tags)
}
