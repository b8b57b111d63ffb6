package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	boardHTTP "review-task-board/internal/board/delivery/http"
	boardRepo "review-task-board/internal/board/repository/lru"
	boardUC "review-task-board/internal/board/usecase"
	"review-task-board/internal/middleware"
	"review-task-board/internal/reviewtask"
)

// setupBoardDomain initializes board sessions and registers their routes.
func (srv HTTPServer) setupBoardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUC reviewtask.UseCase) {
	// 1. Repository
	repo := boardRepo.New(srv.boardStore, srv.l)

	// 2. UseCase
	uc := boardUC.New(repo, taskUC, srv.l, srv.boardOptions)

	// 3. HTTP Handler
	h := boardHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/boards
	boardHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Board domain registered")
}
