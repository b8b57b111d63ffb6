package http

import (
	"github.com/gin-gonic/gin"

	"review-task-board/pkg/response"
)

// List godoc
// @Summary     List review tasks
// @Description Returns the tasks visible under the tag selection in `tags` (comma separated). An empty selection returns every task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       tags   query string false "Selected tags, comma separated"
// @Param       policy query string false "Match policy: and (default) or or"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Tags godoc
// @Summary     List tags
// @Description Returns every tag in use with the number of tasks carrying it.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} tagsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tags [GET]
func (h *handler) Tags(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTags(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTags: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTagsResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processTaskID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// AddTag godoc
// @Summary     Add a tag to a task
// @Description Appends the trimmed tag. Blank tags and unknown ids are ignored and reported with changed=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body addTagReq true "Tag"
// @Success     200 {object} tagMutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id}/tags [POST]
func (h *handler) AddTag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTagReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddTag(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTag: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTagMutationResp(output))
}

// RemoveTag godoc
// @Summary     Remove a tag from a task
// @Description Removes every occurrence of the tag (exact match). Absent tags and unknown ids are ignored.
// @Tags        Tasks
// @Produce     json
// @Param       id  path  int    true "Task ID"
// @Param       tag query string true "Tag to remove"
// @Success     200 {object} tagMutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id}/tags [DELETE]
func (h *handler) RemoveTag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveTagReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RemoveTag(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveTag: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTagMutationResp(output))
}
