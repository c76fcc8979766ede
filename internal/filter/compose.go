package filter

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	ParamPage  = "page"
	ParamLimit = "limit"
)

// Query is the sparse server-bound form of a criteria snapshot: only fields
// that differ from their default, plus page and limit.
type Query struct {
	Page   int
	Limit  int
	Params map[string]string
}

// Compose builds the Query for criteria c. Client-only fields are never sent.
// Range fields contribute their min and max keys independently; text is
// trimmed and blank text is omitted; a value equal to its default is omitted.
func Compose(schema *Schema, c Criteria, page, limit int) Query {
	q := Query{Page: page, Limit: limit, Params: make(map[string]string)}

	for _, f := range schema.fields {
		if !f.Authority.sendsToServer() {
			continue
		}
		v, ok := c[f.Name]
		if !ok || v.Equal(f.Default) {
			continue
		}

		switch f.Kind {
		case KindText, KindSelect:
			s := strings.TrimSpace(v.str)
			if s == "" || s == strings.TrimSpace(f.Default.str) {
				continue
			}
			q.Params[f.queryKey()] = s

		case KindRange:
			if v.rng.Min != f.Default.rng.Min {
				q.Params[f.MinKey] = formatNumber(v.rng.Min)
			}
			if v.rng.Max != f.Default.rng.Max {
				q.Params[f.MaxKey] = formatNumber(v.rng.Max)
			}

		case KindCheckbox:
			q.Params[f.queryKey()] = strconv.FormatBool(v.flag)

		case KindDate:
			if v.date.IsZero() {
				continue
			}
			q.Params[f.queryKey()] = v.date.Format(dateLayout)
		}
	}

	return q
}

// Values returns the query including page and limit.
func (q Query) Values() url.Values {
	vals := make(url.Values, len(q.Params)+2)
	for k, v := range q.Params {
		vals.Set(k, v)
	}
	vals.Set(ParamPage, strconv.Itoa(q.Page))
	vals.Set(ParamLimit, strconv.Itoa(q.Limit))
	return vals
}

// Encode renders the query with keys sorted, so equal queries encode equally.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// IsEmpty reports whether no filter parameter is present.
func (q Query) IsEmpty() bool {
	return len(q.Params) == 0
}

// Key identifies the query for caching and request collapsing.
func (q Query) Key() string {
	return q.Encode()
}
