package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies how a Range is derived from the current time
type Kind string

const (
	KindLast7Days Kind = "last7days"
	KindThisMonth Kind = "thisMonth"
	KindAll       Kind = "all"
	KindCustom    Kind = "custom"
)

var kindAliases = map[string]Kind{
	"last7days": KindLast7Days,
	"7days":     KindLast7Days,
	"thismonth": KindThisMonth,
	"month":     KindThisMonth,
	"all":       KindAll,
	"custom":    KindCustom,
}

// dateLayouts are tried in order when parsing custom bounds
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

var (
	ErrUnknownKind    = errors.New("unknown date range")
	ErrMissingBounds  = errors.New("custom date range requires start and end")
	ErrInvertedBounds = errors.New("custom date range start is after end")
)

// Selector is an unresolved date range request
type Selector struct {
	Kind  Kind
	Start time.Time
	End   time.Time
}

// Range is a resolved window. Both bounds are inclusive; a nil bound is open.
type Range struct {
	Kind  Kind       `json:"kind"`
	From  *time.Time `json:"from,omitempty"`
	Until *time.Time `json:"until,omitempty"`
}

// Parse builds a Selector from query parameters. An empty kind means all.
func Parse(kind, start, end string, loc *time.Location) (Selector, error) {
	if loc == nil {
		loc = time.UTC
	}
	key := strings.ToLower(strings.TrimSpace(kind))
	if key == "" {
		key = string(KindAll)
	}
	k, ok := kindAliases[key]
	if !ok {
		return Selector{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if k != KindCustom {
		return Selector{Kind: k}, nil
	}

	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Selector{}, ErrMissingBounds
	}
	s, err := ParseDate(start, loc)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid start date: %w", err)
	}
	e, err := ParseDate(end, loc)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid end date: %w", err)
	}
	return Custom(s, e)
}

// Custom returns a custom selector, rejecting a start day after the end day
func Custom(start, end time.Time) (Selector, error) {
	if startOfDay(start).After(startOfDay(end.In(start.Location()))) {
		return Selector{}, ErrInvertedBounds
	}
	return Selector{Kind: KindCustom, Start: start, End: end}, nil
}

// ParseDate accepts a plain date (interpreted in loc) or an RFC3339 timestamp
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Resolve turns the selector into concrete bounds relative to now, in loc
func (s Selector) Resolve(now time.Time, loc *time.Location) Range {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	switch s.Kind {
	case KindLast7Days:
		from := startOfDay(now.AddDate(0, 0, -7))
		return Range{Kind: s.Kind, From: &from, Until: &now}
	case KindThisMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Range{Kind: s.Kind, From: &from, Until: &now}
	case KindCustom:
		from := startOfDay(s.Start.In(loc))
		until := endOfDay(s.End.In(loc))
		return Range{Kind: s.Kind, From: &from, Until: &until}
	default:
		return Range{Kind: KindAll}
	}
}

// Contains reports whether t falls inside the range. A nil t never matches,
// not even for an unbounded range.
func (r Range) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.Until != nil && t.After(*r.Until) {
		return false
	}
	return true
}

// IsAll reports whether the range has no bounds
func (r Range) IsAll() bool {
	return r.From == nil && r.Until == nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
