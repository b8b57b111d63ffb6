package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"review-task-board/config"
	_ "review-task-board/docs" // Swagger docs
	boardRepo "review-task-board/internal/board/repository/lru"
	boardUC "review-task-board/internal/board/usecase"
	"review-task-board/internal/httpserver"
	"review-task-board/internal/middleware"
	"review-task-board/internal/model"
	taskRepo "review-task-board/internal/reviewtask/repository/memory"
	taskUC "review-task-board/internal/reviewtask/usecase"
	"review-task-board/pkg/log"
)

// @title       Review Task Board API
// @description Peer-review task tracker: tag filtering, tag editing and bookmarked selections synchronized to the URL.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Review Task Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Filter policy: %s, dedup tags: %t", cfg.Board.FilterPolicy, cfg.Board.DedupTags)

	// 3. Task seed
	var seed []model.Task
	if cfg.Board.SeedFile != "" {
		seed, err = taskRepo.LoadSeed(cfg.Board.SeedFile)
		if err != nil {
			logger.Errorf(ctx, "Failed to load seed file %s: %v", cfg.Board.SeedFile, err)
			return
		}
		logger.Infof(ctx, "Loaded %d tasks from %s", len(seed), cfg.Board.SeedFile)
	} else {
		seed = taskRepo.DefaultSeed()
		logger.Info(ctx, "No seed file configured, using built-in tasks")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		Seed: seed,
		TaskOptions: taskUC.Options{
			DefaultPolicy: cfg.Board.FilterPolicy,
			DedupTags:     cfg.Board.DedupTags,
		},
		BoardStore: boardRepo.Config{
			Capacity: cfg.Board.SessionCapacity,
			TTL:      cfg.Board.SessionTTL,
		},
		BoardOptions: boardUC.Options{
			AllowEmptyBookmarks: cfg.Board.AllowEmptyBookmarks,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
