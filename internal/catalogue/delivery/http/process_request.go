package http

import (
	"github.com/gin-gonic/gin"

	"storefront-catalogue/internal/filter"
)

// processBrowseReq binds the list kind, the paging parameters and every other
// query parameter as a raw filter value.
func (h *handler) processBrowseReq(c *gin.Context) (browseReq, error) {
	var req browseReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	req.Filters = c.Request.URL.Query()
	req.Filters.Del(filter.ParamPage)
	req.Filters.Del(filter.ParamLimit)
	return req, req.validate()
}

func (h *handler) processOpenSessionReq(c *gin.Context) (openSessionReq, error) {
	var req openSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEditFilterReq binds the edit list + URI param.
func (h *handler) processEditFilterReq(c *gin.Context) (editFilterReq, error) {
	var req editFilterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingSessionID
	}
	return req, req.validate()
}

// processSetPageReq binds the target page + URI param.
func (h *handler) processSetPageReq(c *gin.Context) (setPageReq, error) {
	var req setPageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingSessionID
	}
	return req, req.validate()
}
