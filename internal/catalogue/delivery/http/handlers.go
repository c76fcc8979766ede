package http

import (
	"github.com/gin-gonic/gin"

	"storefront-catalogue/pkg/response"
)

// Browse godoc
// @Summary     Browse a list
// @Description Returns one page of a list. Every query parameter other than page and limit is read as a filter field; defaults are omitted from the upstream query.
// @Tags        Catalogue
// @Produce     json
// @Param       kind  path  string true  "List kind (products, admin-products, orders, users)"
// @Param       page  query int    false "Page number (default: 1)"
// @Param       limit query int    false "Page size (default: 12)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request - rejected filter value"
// @Failure     404 {object} response.Resp "Unknown list kind"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalogue/lists/{kind} [GET]
func (h *handler) Browse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBrowseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Browse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Browse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBrowseResp(output))
}

// OpenSession godoc
// @Summary     Open a filter session
// @Description Creates a session holding filter state for one list and loads its first page.
// @Tags        Catalogue
// @Accept      json
// @Produce     json
// @Param       body body openSessionReq true "List kind, page size and initial filters"
// @Success     201 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown list kind"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalogue/sessions [POST]
func (h *handler) OpenSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.OpenSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newSessionResp(output))
}

// GetSession godoc
// @Summary     Get a filter session
// @Description Returns the current page, criteria, pending edits and queued notices of a session.
// @Tags        Catalogue
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalogue/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	output, err := h.uc.GetSession(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// CloseSession godoc
// @Summary     Close a filter session
// @Description Cancels pending edits and any in-flight fetch, then forgets the session.
// @Tags        Catalogue
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalogue/sessions/{id} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	if err := h.uc.CloseSession(ctx, id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// EditFilter godoc
// @Summary     Edit filter fields
// @Description Validates the edits immediately and commits them after the debounce window. Range fields take two values.
// @Tags        Catalogue
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body editFilterReq true "Field edits"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Rejected edit"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalogue/sessions/{id}/filters [PATCH]
func (h *handler) EditFilter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditFilterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EditFilter(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditFilter: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// ResetFilters godoc
// @Summary     Reset filters
// @Description Drops pending edits and restores every filter default in one change.
// @Tags        Catalogue
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalogue/sessions/{id}/reset [POST]
func (h *handler) ResetFilters(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	output, err := h.uc.ResetFilters(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SetPage godoc
// @Summary     Change page
// @Description Fetches another page with the committed filters. Not debounced.
// @Tags        Catalogue
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body setPageReq true "Target page"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalogue/sessions/{id}/page [PUT]
func (h *handler) SetPage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetPageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetPage(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
