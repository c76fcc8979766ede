package filter

import (
	"fmt"
	"math"
	"slices"
	"sync"
)

// Store holds the committed criteria of one list view. Every successful
// mutation bumps the version and notifies observers exactly once.
type Store struct {
	schema *Schema

	mu        sync.RWMutex
	values    Criteria
	version   uint64
	observers []func(Criteria)
}

// NewStore creates a Store with every field at its default.
func NewStore(schema *Schema) *Store {
	return &Store{
		schema: schema,
		values: schema.Defaults(),
	}
}

// Schema returns the schema the store validates against.
func (s *Store) Schema() *Schema { return s.schema }

// Subscribe registers fn to receive a snapshot after every committed change.
func (s *Store) Subscribe(fn func(Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// SetField normalizes v for the field's kind and stores it. Range values are
// reordered and clamped into bounds. A date that would invert the start/end
// window is rejected with ErrInvertedDates and nothing changes.
func (s *Store) SetField(name string, v Value) error {
	s.mu.Lock()
	f, normalized, err := s.checkLocked(name, v)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.values[f.Name].Equal(normalized) {
		s.mu.Unlock()
		return nil
	}
	s.values[f.Name] = normalized
	snapshot, observers := s.commitLocked()
	s.mu.Unlock()

	notify(observers, snapshot)
	return nil
}

// Check runs SetField's validation against the current values without storing.
func (s *Store) Check(name string, v Value) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, _, err := s.checkLocked(name, v)
	return err
}

// Reset restores every field to its default in a single change.
func (s *Store) Reset() {
	s.mu.Lock()
	if s.schema.pristine(s.values) {
		s.mu.Unlock()
		return
	}
	s.values = s.schema.Defaults()
	snapshot, observers := s.commitLocked()
	s.mu.Unlock()

	notify(observers, snapshot)
}

// Get returns the current value of a field.
func (s *Store) Get(name string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Snapshot returns a consistent copy of all current values.
func (s *Store) Snapshot() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Clone()
}

// IsActive reports whether any field differs from its default.
func (s *Store) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema.IsActive(s.values)
}

// ActiveFields lists the fields that differ from their default.
func (s *Store) ActiveFields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema.ActiveFields(s.values)
}

// Version increases by one with every committed change.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) checkLocked(name string, v Value) (FieldSpec, Value, error) {
	f, ok := s.schema.Field(name)
	if !ok {
		return FieldSpec{}, Value{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if v.kind != f.Kind.valueKind() {
		return FieldSpec{}, Value{}, fmt.Errorf("%w: field %q is %s", ErrKindMismatch, name, f.Kind)
	}

	switch f.Kind {
	case KindRange:
		r := normalizeRange(v.rng, f.Bounds)
		return f, RangeOf(r.Min, r.Max), nil
	case KindDate:
		if err := s.checkDateWindowLocked(f, v); err != nil {
			return FieldSpec{}, Value{}, err
		}
	}
	return f, v, nil
}

func (s *Store) checkDateWindowLocked(f FieldSpec, v Value) error {
	if f.Pair == "" || v.date.IsZero() {
		return nil
	}
	other, ok := s.values[f.Pair]
	if !ok || other.date.IsZero() {
		return nil
	}
	if f.Role == DateStart && v.date.After(other.date) {
		return fmt.Errorf("%w: %s %s is after %s %s", ErrInvertedDates, f.Name, v, f.Pair, other)
	}
	if f.Role == DateEnd && v.date.Before(other.date) {
		return fmt.Errorf("%w: %s %s is before %s %s", ErrInvertedDates, f.Name, v, f.Pair, other)
	}
	return nil
}

func (s *Store) commitLocked() (Criteria, []func(Criteria)) {
	s.version++
	return s.values.Clone(), slices.Clone(s.observers)
}

func notify(observers []func(Criteria), snapshot Criteria) {
	for _, fn := range observers {
		fn(snapshot)
	}
}

// normalizeRange swaps an inverted pair and clamps both ends into bounds.
// NaN ends collapse to the nearest bound of their side.
func normalizeRange(r, bounds Range) Range {
	lo, hi := r.Min, r.Max
	if math.IsNaN(lo) {
		lo = bounds.Min
	}
	if math.IsNaN(hi) {
		hi = bounds.Max
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Min: clamp(lo, bounds), Max: clamp(hi, bounds)}
}

func clamp(x float64, bounds Range) float64 {
	return math.Max(bounds.Min, math.Min(bounds.Max, x))
}
