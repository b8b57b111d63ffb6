package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	boardRepo "review-task-board/internal/board/repository/lru"
	boardUC "review-task-board/internal/board/usecase"
	"review-task-board/internal/middleware"
	"review-task-board/internal/model"
	taskUC "review-task-board/internal/reviewtask/usecase"
	"review-task-board/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	middleware middleware.Config

	// Task domain
	seed        []model.Task
	taskOptions taskUC.Options

	// Board domain
	boardStore   boardRepo.Config
	boardOptions boardUC.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Config

	// Task domain
	Seed        []model.Task
	TaskOptions taskUC.Options

	// Board domain
	BoardStore   boardRepo.Config
	BoardOptions boardUC.Options
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		seed:         cfg.Seed,
		taskOptions:  cfg.TaskOptions,
		boardStore:   cfg.BoardStore,
		boardOptions: cfg.BoardOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
