package rules

import (
	"fmt"
	"io"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

// Holiday is a single named day imported from a calendar feed.
type Holiday struct {
	Date    calendar.Date
	Summary string
}

// RecurringHoliday is a named recurrence imported from a calendar feed.
type RecurringHoliday struct {
	Summary string
	Rule    *Recurrence
}

// Holidays is the set of days found in an iCalendar file. It can be used
// directly as a disabled-day matcher.
type Holidays struct {
	Days      []Holiday
	Recurring []RecurringHoliday
}

func (h *Holidays) Match(d calendar.Date) bool {
	_, ok := h.Summary(d)
	return ok
}

// Summary returns the name of the holiday on d, if any.
func (h *Holidays) Summary(d calendar.Date) (string, bool) {
	for _, day := range h.Days {
		if day.Date == d {
			return day.Summary, true
		}
	}
	for _, r := range h.Recurring {
		if r.Rule.Match(d) {
			return r.Summary, true
		}
	}
	return "", false
}

// LoadHolidays reads an .ics file.
func LoadHolidays(path string, system calendar.System) (*Holidays, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer f.Close()
	return ParseHolidays(f, system)
}

// ParseHolidays collects every VEVENT of an iCalendar stream. Multi-day
// events contribute each of their days; events with an RRULE become
// recurring holidays anchored at their start.
func ParseHolidays(r io.Reader, system calendar.System) (*Holidays, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	h := &Holidays{}
	for _, ev := range cal.Events() {
		summary := ""
		if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
			summary = p.Value
		}

		start, err := eventStart(ev)
		if err != nil {
			continue
		}

		if p := ev.GetProperty(ical.ComponentPropertyRrule); p != nil && p.Value != "" {
			rule, err := rrule.StrToRRule(p.Value)
			if err != nil {
				continue
			}
			rule.DTStart(start)
			h.Recurring = append(h.Recurring, RecurringHoliday{
				Summary: summary,
				Rule:    newRecurrence(p.Value, rule, system),
			})
			continue
		}

		first := system.FromTime(start)
		last := first
		if end, err := eventEnd(ev); err == nil && end.After(start) {
			// DTEND is exclusive.
			last = system.FromTime(end.Add(-time.Nanosecond))
		}
		for d := first; calendar.Compare(d, last) <= 0; d = calendar.NextDay(d, system) {
			h.Days = append(h.Days, Holiday{Date: d, Summary: summary})
		}
	}
	return h, nil
}

func eventStart(ev *ical.VEvent) (time.Time, error) {
	if t, err := ev.GetAllDayStartAt(); err == nil {
		return t, nil
	}
	return ev.GetStartAt()
}

func eventEnd(ev *ical.VEvent) (time.Time, error) {
	if t, err := ev.GetAllDayEndAt(); err == nil {
		return t, nil
	}
	return ev.GetEndAt()
}
