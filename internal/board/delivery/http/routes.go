package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	boards := rg.Group("/boards", mw.RateLimit())
	{
		boards.POST("", h.Create)
		boards.GET("/:id", h.Detail)

		boards.POST("/:id/selection/toggle", h.Toggle)
		boards.DELETE("/:id/selection", h.Clear)
		boards.PUT("/:id/selection", h.Load)

		boards.POST("/:id/bookmarks", h.SaveBookmark)
		boards.GET("/:id/bookmarks", h.ListBookmarks)
		boards.POST("/:id/bookmarks/:bookmark/apply", h.ApplyBookmark)
	}
}
