package http

import (
	"net/url"
	"strconv"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/notify"
	"storefront-catalogue/pkg/response"
)

// --- Request DTOs ---

type browseReq struct {
	Kind    string     `uri:"kind" binding:"required"`
	Page    int        `form:"page"`
	Limit   int        `form:"limit"`
	Filters url.Values `form:"-" uri:"-"`
}

func (r browseReq) validate() error {
	if r.Kind == "" {
		return errMissingKind
	}
	return nil
}

func (r browseReq) toInput() catalogue.BrowseInput {
	return catalogue.BrowseInput{
		Kind:    catalogue.Kind(r.Kind),
		Page:    r.Page,
		Limit:   r.Limit,
		Filters: r.Filters,
	}
}

// ---

type openSessionReq struct {
	Kind    string            `json:"kind"    binding:"required"`
	Limit   int               `json:"limit"   binding:"omitempty,min=1"`
	Filters map[string]string `json:"filters"`
}

func (r openSessionReq) validate() error { return nil }

func (r openSessionReq) toInput() catalogue.OpenSessionInput {
	filters := make(url.Values, len(r.Filters))
	for k, v := range r.Filters {
		filters.Set(k, v)
	}
	return catalogue.OpenSessionInput{
		Kind:    catalogue.Kind(r.Kind),
		Limit:   r.Limit,
		Filters: filters,
	}
}

// ---

type fieldEditReq struct {
	Field  string   `json:"field"  binding:"required"`
	Values []string `json:"values"`
}

type editFilterReq struct {
	ID    string         `json:"-"`
	Edits []fieldEditReq `json:"edits" binding:"required,min=1,dive"`
}

func (r editFilterReq) validate() error { return nil }

func (r editFilterReq) toInput() catalogue.EditFilterInput {
	edits := make([]catalogue.FieldEdit, len(r.Edits))
	for i, e := range r.Edits {
		edits[i] = catalogue.FieldEdit{Field: e.Field, Values: e.Values}
	}
	return catalogue.EditFilterInput{SessionID: r.ID, Edits: edits}
}

// ---

type setPageReq struct {
	ID   string `json:"-"`
	Page int    `json:"page" binding:"required,min=1"`
}

func (r setPageReq) validate() error { return nil }

func (r setPageReq) toInput() catalogue.SetPageInput {
	return catalogue.SetPageInput{SessionID: r.ID, Page: r.Page}
}

// --- Response DTOs ---

type paginationResp struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
}

type summaryResp struct {
	IsActive bool   `json:"is_active"`
	Label    string `json:"label"`
}

type listResp struct {
	Kind         string                 `json:"kind"`
	Criteria     map[string]interface{} `json:"criteria"`
	ActiveFields []string               `json:"active_fields"`
	Query        map[string]string      `json:"query"`
	Items        []catalogue.Item       `json:"items"`
	Pagination   paginationResp         `json:"pagination"`
	Summary      summaryResp            `json:"summary"`
}

func newListResp(r catalogue.ListResult) listResp {
	criteria := make(map[string]interface{}, len(r.Criteria))
	for name, v := range r.Criteria {
		if t, ok := v.Date(); ok {
			criteria[name] = response.Date(t)
			continue
		}
		criteria[name] = v.Interface()
	}
	query := make(map[string]string, len(r.Query.Params)+2)
	for k, v := range r.Query.Params {
		query[k] = v
	}
	query[filter.ParamPage] = strconv.Itoa(r.Query.Page)
	query[filter.ParamLimit] = strconv.Itoa(r.Query.Limit)

	items := r.Items
	if items == nil {
		items = []catalogue.Item{}
	}
	active := r.ActiveFields
	if active == nil {
		active = []string{}
	}

	return listResp{
		Kind:         string(r.Kind),
		Criteria:     criteria,
		ActiveFields: active,
		Query:        query,
		Items:        items,
		Pagination: paginationResp{
			Page:       r.Pagination.Page,
			TotalPages: r.Pagination.TotalPages,
			Limit:      r.Pagination.Limit,
			Total:      r.Pagination.Total,
		},
		Summary: summaryResp{IsActive: r.Summary.IsActive, Label: r.Summary.Label},
	}
}

type noticeResp struct {
	Level   notify.Level      `json:"level"`
	Field   string            `json:"field,omitempty"`
	Message string            `json:"message"`
	At      response.DateTime `json:"at"`
}

type sessionResp struct {
	ID            string       `json:"id"`
	Version       uint64       `json:"version"`
	Page          int          `json:"page"`
	Limit         int          `json:"limit"`
	Result        listResp     `json:"result"`
	PendingFields []string     `json:"pending_fields"`
	Loading       bool         `json:"loading"`
	LastError     string       `json:"last_error,omitempty"`
	Notices       []noticeResp `json:"notices"`
}

func (h *handler) newSessionResp(v catalogue.SessionView) sessionResp {
	pending := v.PendingFields
	if pending == nil {
		pending = []string{}
	}
	notices := make([]noticeResp, len(v.Notices))
	for i, n := range v.Notices {
		notices[i] = noticeResp{Level: n.Level, Field: n.Field, Message: n.Message, At: response.DateTime(n.At)}
	}
	return sessionResp{
		ID:            v.ID,
		Version:       v.Version,
		Page:          v.Page,
		Limit:         v.Limit,
		Result:        newListResp(v.Result),
		PendingFields: pending,
		Loading:       v.Loading,
		LastError:     v.LastError,
		Notices:       notices,
	}
}

func (h *handler) newBrowseResp(out catalogue.BrowseOutput) listResp {
	return newListResp(out.Result)
}
