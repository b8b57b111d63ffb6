package usecase

import (
	"review-task-board/internal/reviewtask/repository"
	"review-task-board/internal/tagfilter"
	"review-task-board/pkg/log"
)

// Options tunes the tag policies of the use case.
type Options struct {
	DefaultPolicy tagfilter.Policy
	// DedupTags makes AddTag a no-op when the tag is already present.
	DedupTags bool
}

// implUseCase is the private implementation of reviewtask.UseCase.
type implUseCase struct {
	repo          repository.Repository
	l             log.Logger
	defaultPolicy tagfilter.Policy
	dedupTags     bool
}

// New creates a new reviewtask UseCase implementation.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	policy := opt.DefaultPolicy
	if policy == "" {
		policy = tagfilter.DefaultPolicy
	}
	return &implUseCase{
		repo:          repo,
		l:             l,
		defaultPolicy: policy,
		dedupTags:     opt.DedupTags,
	}
}
