package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/internal/board"
	"review-task-board/pkg/response"
)

// Create godoc
// @Summary     Open a board
// @Description Creates a board session whose selection is read from the `tags` query parameter.
// @Tags        Boards
// @Produce     json
// @Param       tags query string false "Initial selection, comma separated"
// @Success     200 {object} boardOnlyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/boards [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Create(ctx, board.CreateInput{Query: c.Request.URL.Query()})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardOnlyResp(output))
}

// Detail godoc
// @Summary     Get a board
// @Description Returns the board with the tasks visible under its selection.
// @Tags        Boards
// @Produce     json
// @Param       id     path  string true  "Board ID"
// @Param       policy query string false "Match policy: and or or"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Toggle godoc
// @Summary     Toggle a tag
// @Description Selects the tag, or deselects it when already selected.
// @Tags        Boards
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Board ID"
// @Param       body body toggleReq true "Tag"
// @Success     200 {object} boardOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/selection/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardOnlyResp(output))
}

// Clear godoc
// @Summary     Clear the selection
// @Tags        Boards
// @Produce     json
// @Param       id path string true "Board ID"
// @Success     200 {object} boardOnlyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/selection [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Clear(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardOnlyResp(output))
}

// Load godoc
// @Summary     Load the selection from a URL
// @Description Replaces the selection with the `tags` query parameter. A missing parameter clears it.
// @Tags        Boards
// @Produce     json
// @Param       id   path  string true  "Board ID"
// @Param       tags query string false "Selection, comma separated"
// @Success     200 {object} boardOnlyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/selection [PUT]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Load(ctx, board.LoadInput{ID: id, Query: c.Request.URL.Query()})
	if err != nil {
		h.l.Warnf(ctx, "uc.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardOnlyResp(output))
}

// SaveBookmark godoc
// @Summary     Bookmark the selection
// @Description Saves the current selection under name. A missing or blank name saves nothing and reports saved=false.
// @Tags        Boards
// @Accept      json
// @Produce     json
// @Param       id   path string          true  "Board ID"
// @Param       body body saveBookmarkReq false "Bookmark name"
// @Success     200 {object} saveBookmarkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/bookmarks [POST]
func (h *handler) SaveBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveBookmarkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SaveBookmark(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SaveBookmark: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSaveBookmarkResp(output))
}

// ListBookmarks godoc
// @Summary     List bookmarks
// @Tags        Boards
// @Produce     json
// @Param       id path string true "Board ID"
// @Success     200 {object} listBookmarksResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/bookmarks [GET]
func (h *handler) ListBookmarks(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListBookmarks(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListBookmarks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListBookmarksResp(output))
}

// ApplyBookmark godoc
// @Summary     Apply a bookmark
// @Description Replaces the selection with the tags of the bookmark, addressed by list index or bookmark id.
// @Tags        Boards
// @Produce     json
// @Param       id       path string true "Board ID"
// @Param       bookmark path string true "Bookmark index or id"
// @Success     200 {object} boardOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/boards/{id}/bookmarks/{bookmark}/apply [POST]
func (h *handler) ApplyBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplyBookmark(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ApplyBookmark: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardOnlyResp(output))
}
