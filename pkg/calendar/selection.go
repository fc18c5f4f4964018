package calendar

import (
	"errors"
	"fmt"
)

// ErrDisabledDay is matched by every DisabledDayError.
var ErrDisabledDay = errors.New("day is disabled")

// DisabledDayError reports the disallowed day a selection ran into.
type DisabledDayError struct {
	Date Date
}

func (e *DisabledDayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Date, ErrDisabledDay)
}

func (e *DisabledDayError) Is(target error) bool {
	return target == ErrDisabledDay
}

// DayMatcher decides whether a rule applies to a day.
type DayMatcher interface {
	Match(d Date) bool
}

// DayMatcherFunc adapts a plain function to DayMatcher.
type DayMatcherFunc func(Date) bool

func (f DayMatcherFunc) Match(d Date) bool { return f(d) }

// Bounds restrict the selectable days. Nil ends are open.
type Bounds struct {
	Minimum *Date
	Maximum *Date
}

// Contains reports whether d is inside the bounds, ends included.
func (b Bounds) Contains(d Date) bool {
	if b.Minimum != nil && IsBefore(d, *b.Minimum) {
		return false
	}
	if b.Maximum != nil && IsBefore(*b.Maximum, d) {
		return false
	}
	return true
}

// MonthAllowed reports whether any day of the month of d lies in bounds.
func (b Bounds) MonthAllowed(d Date) bool {
	if b.Minimum != nil && MonthCompare(d, *b.Minimum) < 0 {
		return false
	}
	if b.Maximum != nil && MonthCompare(d, *b.Maximum) > 0 {
		return false
	}
	return true
}

// YearAllowed reports whether any day of the year lies in bounds.
func (b Bounds) YearAllowed(year int) bool {
	if b.Minimum != nil && year < b.Minimum.Year {
		return false
	}
	if b.Maximum != nil && year > b.Maximum.Year {
		return false
	}
	return true
}

// Selector applies a picked day to a value.
type Selector struct {
	System   System
	Bounds   Bounds
	Disabled DayMatcher
}

// IsDisabled reports whether d may not be picked.
func (s Selector) IsDisabled(d Date) bool {
	if !s.Bounds.Contains(d) {
		return true
	}
	return s.Disabled != nil && s.Disabled.Match(d)
}

// Select returns the value that results from picking day. A single value is
// replaced, a multi value toggles the day, and a range either starts over or
// gets its missing end. A range spanning a disabled day is refused.
func (s Selector) Select(value Value, kind Kind, day Date) (Value, error) {
	if s.IsDisabled(day) {
		return value, &DisabledDayError{Date: day}
	}
	if value == nil {
		value = EmptyValue(kind)
	}

	switch v := value.(type) {
	case Multi:
		return toggleDay(v, day), nil
	case Range:
		return s.selectRange(v, day)
	default:
		return Single{Date: day.Ptr()}, nil
	}
}

func toggleDay(v Multi, day Date) Multi {
	dates := make([]Date, 0, len(v.Dates)+1)
	found := false
	for _, d := range v.Dates {
		if d == day {
			found = true
			continue
		}
		dates = append(dates, d)
	}
	if !found {
		dates = append(dates, day)
	}
	return Multi{Dates: dates}
}

func (s Selector) selectRange(v Range, day Date) (Value, error) {
	next := v
	if next.From != nil && next.To != nil {
		next = Range{}
	}
	if next.From == nil {
		next.From = day.Ptr()
	} else {
		next.To = day.Ptr()
	}

	if next.From != nil && next.To != nil {
		if IsBefore(*next.To, *next.From) {
			next.From, next.To = next.To, next.From
		}
		if blocked, ok := s.firstDisabledBetween(*next.From, *next.To); ok {
			return v, &DisabledDayError{Date: blocked}
		}
	}
	return next, nil
}

func (s Selector) firstDisabledBetween(from, to Date) (Date, bool) {
	if s.Disabled == nil || s.System == nil {
		return Date{}, false
	}
	for d := NextDay(from, s.System); IsBefore(d, to); d = NextDay(d, s.System) {
		if s.Disabled.Match(d) {
			return d, true
		}
	}
	return Date{}, false
}
