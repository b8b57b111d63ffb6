package reviewtask

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidPolicy = errors.New("invalid filter policy")
)
