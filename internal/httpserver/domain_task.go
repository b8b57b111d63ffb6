package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"review-task-board/internal/middleware"
	"review-task-board/internal/reviewtask"
	taskHTTP "review-task-board/internal/reviewtask/delivery/http"
	taskRepo "review-task-board/internal/reviewtask/repository/memory"
	taskUC "review-task-board/internal/reviewtask/usecase"
)

// setupTaskDomain initializes the review task domain and registers its
// routes. The use case is returned for the board domain.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (reviewtask.UseCase, error) {
	seed := srv.seed
	if seed == nil {
		seed = taskRepo.DefaultSeed()
	}

	// 1. Repository
	repo, err := taskRepo.New(seed, srv.l)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.setupTaskDomain taskRepo.New: %v", err)
		return nil, err
	}

	// 2. UseCase
	uc := taskUC.New(repo, srv.l, srv.taskOptions)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/tasks, /api/v1/tags
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered with %d tasks", len(seed))
	return uc, nil
}
