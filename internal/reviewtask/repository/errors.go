package repository

import "errors"

var (
	ErrDuplicateTaskID = errors.New("duplicate task id in seed")
	ErrFailedToLoad    = errors.New("failed to load task seed")
)

var ErrInvalidTaskID = errors.New("task id must be positive")
