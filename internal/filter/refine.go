package filter

import (
	"strings"
	"time"

	"storefront-catalogue/pkg/datemath"
)

// Searchable items expose the text that client-side search matches against.
type Searchable interface {
	SearchFields() []string
}

// Attributer items expose attributes for client-side select, range, checkbox
// and date refinement. Supported attribute types are string, float64, int,
// bool and time.Time.
type Attributer interface {
	Attribute(name string) (any, bool)
}

// Refine returns the items that match every active client-refined field of c,
// in their original order. It never modifies items and is idempotent.
// Text fields match case-insensitively as a substring of the item's search
// fields joined by spaces. An item that cannot report an attribute a field
// needs does not match that field.
func Refine[T Searchable](items []T, schema *Schema, c Criteria) []T {
	var active []FieldSpec
	for _, f := range schema.fields {
		if !f.Authority.refinesLocally() {
			continue
		}
		if v, ok := c[f.Name]; ok && isRefinable(f, v) {
			active = append(active, f)
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, active, c) {
			out = append(out, item)
		}
	}
	return out
}

func isRefinable(f FieldSpec, v Value) bool {
	if v.Equal(f.Default) {
		return false
	}
	if f.Kind == KindText || f.Kind == KindSelect {
		return strings.TrimSpace(v.str) != ""
	}
	return true
}

func matchesAll[T Searchable](item T, fields []FieldSpec, c Criteria) bool {
	for _, f := range fields {
		if !matches(item, f, c[f.Name]) {
			return false
		}
	}
	return true
}

func matches(item Searchable, f FieldSpec, v Value) bool {
	if f.Kind == KindText {
		needle := strings.ToLower(strings.TrimSpace(v.str))
		haystack := strings.ToLower(strings.Join(item.SearchFields(), " "))
		return strings.Contains(haystack, needle)
	}

	attrs, ok := item.(Attributer)
	if !ok {
		return false
	}
	raw, ok := attrs.Attribute(f.attribute())
	if !ok {
		return false
	}

	switch f.Kind {
	case KindSelect:
		s, ok := raw.(string)
		return ok && strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v.str))

	case KindRange:
		x, ok := toFloat(raw)
		return ok && x >= v.rng.Min && x <= v.rng.Max

	case KindCheckbox:
		b, ok := raw.(bool)
		return ok && b == v.flag

	case KindDate:
		t, ok := raw.(time.Time)
		if !ok {
			return false
		}
		if v.date.IsZero() {
			return true
		}
		if f.Role == DateEnd {
			return !t.After(datemath.EndOfDay(v.date))
		}
		return !t.Before(v.date)
	}
	return false
}

func toFloat(raw any) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}
