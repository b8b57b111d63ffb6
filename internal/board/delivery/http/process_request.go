package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"review-task-board/internal/tagfilter"
)

// processID reads the :id URI param.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// processDetailReq binds the :id URI param and the policy query parameter.
func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	var req detailReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// processToggleReq binds the toggle request body + URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// processSaveBookmarkReq binds the bookmark name. A missing body or name is
// treated as a cancelled prompt.
func (h *handler) processSaveBookmarkReq(c *gin.Context) (saveBookmarkReq, error) {
	var req saveBookmarkReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = id
	return req, nil
}

// processApplyReq binds the :id and :bookmark URI params. :bookmark is a
// position in the list or a bookmark id.
func (h *handler) processApplyReq(c *gin.Context) (applyReq, error) {
	var req applyReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	req.ID = id

	ref := c.Param("bookmark")
	if index, err := strconv.Atoi(ref); err == nil {
		if index < 0 {
			return req, errInvalidIndex
		}
		req.Index = index
		return req, nil
	}
	req.BookmarkID = ref
	return req, nil
}

func parsePolicy(s string) (tagfilter.Policy, error) {
	p, err := tagfilter.ParsePolicy(s, "")
	if err != nil {
		return "", errInvalidPolicy
	}
	return p, nil
}
