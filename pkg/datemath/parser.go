package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownPhrase is returned for input that is neither a calendar date nor a known relative phrase.
var ErrUnknownPhrase = errors.New("unknown date phrase")

var (
	offsetPattern = regexp.MustCompile(`^(?:in (\d+) (day|days|week|weeks|month|months)|(\d+) (day|days|week|weeks|month|months) ago)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	layouts = []string{"2006-01-02", time.RFC3339}
)

// Parser resolves date filter input to the start of a calendar day.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse accepts "2006-01-02", RFC3339, or a relative phrase ("today",
// "yesterday", "3 days ago", "in 2 weeks", "last monday", "next friday")
// evaluated against base. The result is always midnight in the parser's zone.
func (p *Parser) Parse(input string, base time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnknownPhrase)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return p.startOfDay(t), nil
		}
	}

	phrase := strings.ToLower(trimmed)

	switch phrase {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if m := offsetPattern.FindStringSubmatch(phrase); m != nil {
		if m[1] != "" {
			return p.offset(m[1], m[2], 1, base)
		}
		return p.offset(m[3], m[4], -1, base)
	}

	if day, ok := strings.CutPrefix(phrase, "next "); ok {
		return p.weekday(day, 1, base)
	}
	if day, ok := strings.CutPrefix(phrase, "last "); ok {
		return p.weekday(day, -1, base)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, input)
}

func (p *Parser) offset(amountStr, unit string, sign int, base time.Time) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad amount %q", ErrUnknownPhrase, amountStr)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// weekday resolves the next (direction 1) or previous (direction -1)
// occurrence of a weekday, never the base day itself.
func (p *Parser) weekday(name string, direction int, base time.Time) (time.Time, error) {
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownPhrase, name)
	}

	current := base.In(p.location).Weekday()
	var days int
	if direction > 0 {
		days = int(target - current)
		if days <= 0 {
			days += 7
		}
	} else {
		days = int(target - current)
		if days >= 0 {
			days -= 7
		}
	}

	return p.startOfDay(base.AddDate(0, 0, days)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}
