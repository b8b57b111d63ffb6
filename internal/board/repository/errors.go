package repository

import "errors"

var ErrFailedToCreate = errors.New("failed to create board")
