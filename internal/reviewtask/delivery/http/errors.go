package http

import (
	"errors"
	"net/http"

	"review-task-board/internal/reviewtask"
	pkgErrors "review-task-board/pkg/errors"
)

var (
	errInvalidID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id must be a positive integer")
	errInvalidTag    = pkgErrors.NewHTTPError(http.StatusBadRequest, "tag is required")
	errInvalidPolicy = pkgErrors.NewHTTPError(http.StatusBadRequest, "policy must be one of: and, or")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reviewtask.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, reviewtask.ErrInvalidPolicy):
		return errInvalidPolicy
	default:
		return pkgErrors.ErrInternalServerError
	}
}
