package http

import (
	"errors"
	"net/http"

	"review-task-board/internal/board"
	"review-task-board/internal/reviewtask"
	pkgErrors "review-task-board/pkg/errors"
)

var (
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "board id is required")
	errInvalidIndex  = pkgErrors.NewHTTPError(http.StatusBadRequest, "bookmark index must not be negative")
	errInvalidPolicy = pkgErrors.NewHTTPError(http.StatusBadRequest, "policy must be one of: and, or")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, board.ErrBoardNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "board not found")
	case errors.Is(err, board.ErrBookmarkNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "bookmark not found")
	case errors.Is(err, reviewtask.ErrInvalidPolicy):
		return errInvalidPolicy
	default:
		return pkgErrors.ErrInternalServerError
	}
}
