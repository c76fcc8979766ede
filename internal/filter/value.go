package filter

import (
	"strconv"
	"time"
)

// FieldKind is the discriminator of a filter field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindSelect   FieldKind = "select"
	KindRange    FieldKind = "range"
	KindCheckbox FieldKind = "checkbox"
	KindDate     FieldKind = "date"
)

type valueKind uint8

const (
	valueString valueKind = iota + 1
	valueRange
	valueBool
	valueDate
)

func (k FieldKind) valueKind() valueKind {
	switch k {
	case KindText, KindSelect:
		return valueString
	case KindRange:
		return valueRange
	case KindCheckbox:
		return valueBool
	case KindDate:
		return valueDate
	}
	return 0
}

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Value is a single filter value. The zero Value is invalid for every field kind.
type Value struct {
	kind valueKind
	str  string
	rng  Range
	flag bool
	date time.Time
}

// Text is the value of a text or select field. "" means no filter.
func Text(s string) Value { return Value{kind: valueString, str: s} }

// RangeOf is the value of a range field.
func RangeOf(lo, hi float64) Value { return Value{kind: valueRange, rng: Range{Min: lo, Max: hi}} }

// Bool is the value of a checkbox field.
func Bool(b bool) Value { return Value{kind: valueBool, flag: b} }

// Date is the value of a date field.
func Date(t time.Time) Value { return Value{kind: valueDate, date: t} }

// NoDate is the unset value of a date field.
func NoDate() Value { return Value{kind: valueDate} }

func (v Value) String() string {
	switch v.kind {
	case valueString:
		return v.str
	case valueRange:
		return "[" + formatNumber(v.rng.Min) + ", " + formatNumber(v.rng.Max) + "]"
	case valueBool:
		return strconv.FormatBool(v.flag)
	case valueDate:
		if v.date.IsZero() {
			return "null"
		}
		return v.date.Format(dateLayout)
	}
	return "<invalid>"
}

// Text returns the string payload.
func (v Value) Text() string { return v.str }

// Range returns the range payload.
func (v Value) Range() Range { return v.rng }

// Bool returns the checkbox payload.
func (v Value) Bool() bool { return v.flag }

// Date returns the date payload and whether it is set.
func (v Value) Date() (time.Time, bool) { return v.date, !v.date.IsZero() }

// Interface returns the payload as a plain Go value for presentation:
// string, [2]float64, bool, or *string (nil for an unset date).
func (v Value) Interface() any {
	switch v.kind {
	case valueString:
		return v.str
	case valueRange:
		return [2]float64{v.rng.Min, v.rng.Max}
	case valueBool:
		return v.flag
	case valueDate:
		if v.date.IsZero() {
			return (*string)(nil)
		}
		s := v.date.Format(dateLayout)
		return &s
	}
	return nil
}

// Equal compares two values of the same kind; ranges compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case valueString:
		return v.str == o.str
	case valueRange:
		return v.rng == o.rng
	case valueBool:
		return v.flag == o.flag
	case valueDate:
		return v.date.Equal(o.date)
	}
	return true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
