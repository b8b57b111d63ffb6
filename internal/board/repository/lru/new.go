package lru

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"review-task-board/internal/board/repository"
	"review-task-board/internal/model"
	"review-task-board/pkg/log"
)

const (
	DefaultCapacity = 1000
	DefaultTTL      = 24 * time.Hour
)

// Config bounds the board cache.
type Config struct {
	Capacity int
	TTL      time.Duration
}

type implRepository struct {
	mu     sync.Mutex
	boards *expirable.LRU[string, *model.Board]
	l      log.Logger
	now    func() time.Time
	newID  func() string
}

// New creates an in-memory Repository. Boards expire cfg.TTL after their last
// change and are evicted least-recently-used beyond cfg.Capacity.
func New(cfg Config, l log.Logger) repository.Repository {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	r := &implRepository{
		l:     l,
		now:   time.Now,
		newID: newBoardID,
	}
	r.boards = expirable.NewLRU[string, *model.Board](cfg.Capacity, r.onEvict, cfg.TTL)
	return r
}

func (r *implRepository) onEvict(id string, _ *model.Board) {
	r.l.Debugf(context.Background(), "%s: board %s evicted", r.dsn("onEvict"), id)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("board/repository/lru.%s", method)
}
