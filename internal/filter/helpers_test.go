package filter_test

import (
	"strings"
	"time"

	"storefront-catalogue/internal/filter"
	"storefront-catalogue/pkg/datemath"
)

type item struct {
	Name        string
	Description string
	Category    string
	CategoryID  string
	Price       float64
	InStock     bool
	CreatedAt   time.Time
}

func (i item) SearchFields() []string {
	return []string{i.Name, i.Description, i.Category}
}

func (i item) Attribute(name string) (any, bool) {
	switch name {
	case "categoryId":
		return i.CategoryID, true
	case "price":
		return i.Price, true
	case "inStock":
		return i.InStock, true
	case "createdAt":
		return i.CreatedAt, true
	}
	return nil, false
}

func names(items []item) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return strings.Join(out, ",")
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newParser() *filter.Parser {
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}
	return filter.NewParser(dates, func() time.Time { return day("2024-05-01") })
}
