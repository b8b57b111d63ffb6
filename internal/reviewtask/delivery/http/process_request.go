package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"review-task-board/pkg/tagquery"
)

// processListReq binds the policy parameter and decodes the tag selection
// from the raw query.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Tags = tagquery.Decode(c.Request.URL.Query())
	return req, req.validate()
}

// processTaskID parses the :id URI param.
func (h *handler) processTaskID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processAddTagReq binds the add tag request body + URI param.
func (h *handler) processAddTagReq(c *gin.Context) (addTagReq, error) {
	var req addTagReq
	id, err := h.processTaskID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = id
	return req, req.validate()
}

// processRemoveTagReq binds the ?tag= query + URI param.
func (h *handler) processRemoveTagReq(c *gin.Context) (removeTagReq, error) {
	var req removeTagReq
	id, err := h.processTaskID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.TaskID = id
	return req, req.validate()
}
