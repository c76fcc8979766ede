package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-catalogue/pkg/datemath"
)

const dateLayout = "2006-01-02"

// Edit is one field assignment parsed from raw input.
type Edit struct {
	Field string
	Value Value
}

// Parser turns raw text input into typed filter values.
type Parser struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewParser creates a Parser. Relative date phrases resolve against now().
func NewParser(dates *datemath.Parser, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{dates: dates, now: now}
}

// ParseValue converts raw input for field f. Range fields take the low and
// high ends as two arguments, or one "lo,hi" argument; a missing, empty or
// non-numeric end becomes the nearest bound of its side. Checkbox input is
// true for "true", "1", "on" and "yes". Date input accepts calendar dates and
// relative phrases; "" and "null" clear the date.
func (p *Parser) ParseValue(f FieldSpec, raw ...string) (Value, error) {
	first := ""
	if len(raw) > 0 {
		first = raw[0]
	}

	switch f.Kind {
	case KindText, KindSelect:
		return Text(first), nil

	case KindRange:
		lo, hi := "", ""
		switch {
		case len(raw) >= 2:
			lo, hi = raw[0], raw[1]
		case len(raw) == 1:
			lo, hi, _ = strings.Cut(raw[0], ",")
		}
		return RangeOf(parseBound(lo, f.Bounds.Min), parseBound(hi, f.Bounds.Max)), nil

	case KindCheckbox:
		switch strings.ToLower(strings.TrimSpace(first)) {
		case "true", "1", "on", "yes":
			return Bool(true), nil
		}
		return Bool(false), nil

	case KindDate:
		trimmed := strings.TrimSpace(first)
		if trimmed == "" || strings.EqualFold(trimmed, "null") {
			return NoDate(), nil
		}
		t, err := p.dates.Parse(trimmed, p.now())
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, f.Name, err)
		}
		return Date(t), nil
	}

	return Value{}, fmt.Errorf("%w: %q", ErrUnknownField, f.Name)
}

// ParseQuery reads every field of schema present in q, using the same keys
// Compose writes, and returns the edits in declaration order.
func (p *Parser) ParseQuery(schema *Schema, q url.Values) ([]Edit, error) {
	var edits []Edit
	for _, f := range schema.fields {
		var raw []string
		if f.Kind == KindRange {
			if !q.Has(f.MinKey) && !q.Has(f.MaxKey) {
				continue
			}
			raw = []string{q.Get(f.MinKey), q.Get(f.MaxKey)}
		} else {
			if !q.Has(f.queryKey()) {
				continue
			}
			raw = []string{q.Get(f.queryKey())}
		}

		v, err := p.ParseValue(f, raw...)
		if err != nil {
			return nil, err
		}
		edits = append(edits, Edit{Field: f.Name, Value: v})
	}
	return edits, nil
}

func parseBound(s string, fallback float64) float64 {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback
	}
	return x
}
