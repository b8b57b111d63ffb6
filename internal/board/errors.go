package board

import "errors"

var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)
