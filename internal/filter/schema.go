package filter

import (
	"fmt"
	"strings"
)

// Authority declares where a field is evaluated.
type Authority uint8

const (
	// AuthorityServer fields are sent in the composed query only.
	AuthorityServer Authority = iota + 1
	// AuthorityClient fields are applied by Refine over the loaded page only.
	AuthorityClient
	// AuthorityBoth fields are sent to the server and refined locally for instant feedback.
	AuthorityBoth
)

func (a Authority) sendsToServer() bool { return a == AuthorityServer || a == AuthorityBoth }
func (a Authority) refinesLocally() bool { return a == AuthorityClient || a == AuthorityBoth }

// DateRole marks a date field as the start or end of a date window.
type DateRole uint8

const (
	DateStart DateRole = iota + 1
	DateEnd
)

// FieldSpec describes one filter control.
type FieldSpec struct {
	Name      string
	Kind      FieldKind
	Default   Value
	Authority Authority

	// QueryKey is the query parameter for text, select, checkbox and date
	// fields. Defaults to Name.
	QueryKey string

	// Bounds, MinKey and MaxKey apply to range fields.
	Bounds Range
	MinKey string
	MaxKey string

	// Role and Pair tie two date fields into a window.
	Role DateRole
	Pair string

	// Attribute is the item attribute compared by Refine for non-text kinds.
	// Defaults to Name.
	Attribute string
}

func (f FieldSpec) queryKey() string {
	if f.QueryKey != "" {
		return f.QueryKey
	}
	return f.Name
}

func (f FieldSpec) attribute() string {
	if f.Attribute != "" {
		return f.Attribute
	}
	return f.Name
}

// Schema is the ordered set of filter fields of one list view.
type Schema struct {
	name     string
	itemType string
	fields   []FieldSpec
	index    map[string]int
}

// NewSchema validates the field list and builds a Schema. itemType is the
// plural noun used in status labels.
func NewSchema(name, itemType string, fields ...FieldSpec) (*Schema, error) {
	s := &Schema{
		name:     name,
		itemType: itemType,
		fields:   make([]FieldSpec, 0, len(fields)),
		index:    make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %s: field name is required", name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("schema %s: duplicate field %q", name, f.Name)
		}
		if f.Kind.valueKind() == 0 {
			return nil, fmt.Errorf("schema %s: field %q has unknown kind %q", name, f.Name, f.Kind)
		}
		if f.Default.kind != f.Kind.valueKind() {
			return nil, fmt.Errorf("schema %s: field %q default does not match kind %s", name, f.Name, f.Kind)
		}
		if f.Authority == 0 {
			f.Authority = AuthorityServer
		}
		if f.Kind == KindRange {
			if f.Bounds.Min > f.Bounds.Max {
				return nil, fmt.Errorf("schema %s: field %q has inverted bounds", name, f.Name)
			}
			if f.MinKey == "" || f.MaxKey == "" {
				return nil, fmt.Errorf("schema %s: range field %q needs MinKey and MaxKey", name, f.Name)
			}
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, f := range s.fields {
		if f.Kind != KindDate || f.Pair == "" {
			continue
		}
		pair, ok := s.Field(f.Pair)
		if !ok || pair.Kind != KindDate || pair.Role == f.Role || f.Role == 0 {
			return nil, fmt.Errorf("schema %s: date field %q has an invalid pair %q", name, f.Name, f.Pair)
		}
	}

	return s, nil
}

// MustSchema is NewSchema for package-level declarations.
func MustSchema(name, itemType string, fields ...FieldSpec) *Schema {
	s, err := NewSchema(name, itemType, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string     { return s.name }
func (s *Schema) ItemType() string { return s.itemType }

// Fields returns the field specs in declaration order.
func (s *Schema) Fields() []FieldSpec {
	return append([]FieldSpec(nil), s.fields...)
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Defaults returns the FilterDefaults of the schema: every field at its inactive value.
func (s *Schema) Defaults() Criteria {
	c := make(Criteria, len(s.fields))
	for _, f := range s.fields {
		c[f.Name] = f.Default
	}
	return c
}

// IsActive reports whether any field of c differs from its default.
func (s *Schema) IsActive(c Criteria) bool {
	return len(s.ActiveFields(c)) > 0
}

// ActiveFields lists, in declaration order, the fields of c that differ from their default.
func (s *Schema) ActiveFields(c Criteria) []string {
	var active []string
	for _, f := range s.fields {
		if v, ok := c[f.Name]; ok && !f.atDefault(v) {
			active = append(active, f.Name)
		}
	}
	return active
}

// pristine reports whether every value of c is stored exactly as its default.
func (s *Schema) pristine(c Criteria) bool {
	for _, f := range s.fields {
		if v, ok := c[f.Name]; ok && !v.Equal(f.Default) {
			return false
		}
	}
	return true
}

// atDefault reports whether v leaves f inactive. Text compares trimmed, so
// blank input counts as no filter, matching what Compose sends.
func (f FieldSpec) atDefault(v Value) bool {
	if v.kind == valueString && f.Default.kind == valueString {
		return strings.TrimSpace(v.str) == strings.TrimSpace(f.Default.str)
	}
	return v.Equal(f.Default)
}

// Criteria maps field names to their current value.
type Criteria map[string]Value

// Clone returns an independent copy of c.
func (c Criteria) Clone() Criteria {
	out := make(Criteria, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
