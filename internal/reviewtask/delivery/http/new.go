package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/internal/reviewtask"
	"review-task-board/pkg/log"
)

// Handler is the public interface for the review task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Tags(c *gin.Context)
	Detail(c *gin.Context)
	AddTag(c *gin.Context)
	RemoveTag(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc reviewtask.UseCase
}

// New creates a new HTTP handler for the review task domain.
func New(l log.Logger, uc reviewtask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
