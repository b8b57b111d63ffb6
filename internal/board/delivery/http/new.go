package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/internal/board"
	"review-task-board/pkg/log"
)

// Handler is the public interface for the board HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Toggle(c *gin.Context)
	Clear(c *gin.Context)
	Load(c *gin.Context)
	SaveBookmark(c *gin.Context)
	ListBookmarks(c *gin.Context)
	ApplyBookmark(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc board.UseCase
}

// New creates a new HTTP handler for the board domain.
func New(l log.Logger, uc board.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
