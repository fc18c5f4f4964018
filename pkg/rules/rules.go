// Package rules builds disabled-day matchers from text: explicit dates,
// spans, weekdays and RFC 5545 recurrence rules.
package rules

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/locale"
)

// Dates matches an explicit list of days.
type Dates []calendar.Date

func (ds Dates) Match(d calendar.Date) bool {
	for _, day := range ds {
		if day == d {
			return true
		}
	}
	return false
}

// Span matches every day from From to To, both included.
type Span struct {
	From calendar.Date
	To   calendar.Date
}

func (s Span) Match(d calendar.Date) bool {
	return calendar.Compare(d, s.From) >= 0 && calendar.Compare(d, s.To) <= 0
}

// Weekdays matches days falling on one of Days.
type Weekdays struct {
	System calendar.System
	Days   []time.Weekday
}

func (w Weekdays) Match(d calendar.Date) bool {
	wd := w.System.Weekday(d)
	for _, day := range w.Days {
		if day == wd {
			return true
		}
	}
	return false
}

// Set matches when any of its members does.
type Set []calendar.DayMatcher

func (s Set) Match(d calendar.Date) bool {
	for _, m := range s {
		if m != nil && m.Match(d) {
			return true
		}
	}
	return false
}

// defaultDTStart anchors rules that do not carry a DTSTART.
var defaultDTStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Recurrence matches the days produced by a recurrence rule. Occurrences
// are expanded one month at a time and cached.
type Recurrence struct {
	Expr string

	rule   *rrule.RRule
	system calendar.System

	mu    sync.Mutex
	cache map[[2]int]map[calendar.Date]bool
}

// NewRecurrence parses an RRULE such as "FREQ=WEEKLY;BYDAY=FR". The
// "RRULE:" prefix is optional. Without DTSTART the rule starts in 1970.
func NewRecurrence(expr string, system calendar.System) (*Recurrence, error) {
	body := strings.TrimPrefix(strings.TrimSpace(expr), "RRULE:")
	opt, err := rrule.StrToROption(body)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence %q: %w", expr, err)
	}
	if opt.Dtstart.IsZero() {
		opt.Dtstart = defaultDTStart
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence %q: %w", expr, err)
	}
	return newRecurrence(expr, r, system), nil
}

func newRecurrence(expr string, r *rrule.RRule, system calendar.System) *Recurrence {
	return &Recurrence{
		Expr:   expr,
		rule:   r,
		system: system,
		cache:  make(map[[2]int]map[calendar.Date]bool),
	}
}

func (r *Recurrence) Match(d calendar.Date) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]int{d.Year, d.Month}
	days, ok := r.cache[key]
	if !ok {
		days = r.expandMonth(d)
		r.cache[key] = days
	}
	return days[d]
}

func (r *Recurrence) expandMonth(d calendar.Date) map[calendar.Date]bool {
	first := calendar.Date{Year: d.Year, Month: d.Month, Day: 1}
	next := calendar.DateAccordingToMonth(first, calendar.DirectionNext)
	start := r.system.ToTime(first)
	end := r.system.ToTime(next).Add(-time.Nanosecond)

	days := make(map[calendar.Date]bool)
	for _, occ := range r.rule.Between(start, end, true) {
		days[r.system.FromTime(occ)] = true
	}
	return days
}

// Parse turns one rule expression into a matcher. Accepted forms:
//
//	2024-03-05                 a single day
//	2024-03-05..2024-03-09     a span of days
//	weekend                    the locale's weekend days
//	weekday:fri,sat            the listed weekdays
//	FREQ=YEARLY;BYMONTHDAY=1   a recurrence rule, optionally "RRULE:" prefixed
//
// Dates are read in the locale's calendar system.
func Parse(expr string, loc *locale.Locale) (calendar.DayMatcher, error) {
	expr = strings.TrimSpace(expr)
	lower := strings.ToLower(expr)

	switch {
	case expr == "":
		return nil, fmt.Errorf("empty rule")
	case strings.HasPrefix(strings.ToUpper(expr), "RRULE:") || strings.Contains(strings.ToUpper(expr), "FREQ="):
		return NewRecurrence(expr, loc.System)
	case lower == "weekend":
		return Weekdays{System: loc.System, Days: loc.Weekend}, nil
	case strings.HasPrefix(lower, "weekday:"):
		var days []time.Weekday
		for _, name := range strings.Split(lower[len("weekday:"):], ",") {
			wd, err := locale.ParseWeekday(name)
			if err != nil {
				return nil, err
			}
			days = append(days, wd)
		}
		return Weekdays{System: loc.System, Days: days}, nil
	case strings.Contains(expr, ".."):
		parts := strings.SplitN(expr, "..", 2)
		from, err := format.ParseDate(parts[0])
		if err != nil {
			return nil, err
		}
		to, err := format.ParseDate(parts[1])
		if err != nil {
			return nil, err
		}
		if calendar.IsBefore(to, from) {
			from, to = to, from
		}
		return Span{From: from, To: to}, nil
	}

	d, err := format.ParseDate(expr)
	if err != nil {
		return nil, fmt.Errorf("unrecognised rule %q: %w", expr, err)
	}
	return Dates{d}, nil
}

// ParseAll parses every expression and combines them into a Set.
func ParseAll(exprs []string, loc *locale.Locale) (Set, error) {
	set := make(Set, 0, len(exprs))
	for _, expr := range exprs {
		m, err := Parse(expr, loc)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}
	return set, nil
}
