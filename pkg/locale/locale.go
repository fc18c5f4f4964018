// Package locale resolves month and weekday names, digits, text direction
// and the calendar system for a language.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

// ErrUnknownLocale is returned by Lookup for unregistered names.
var ErrUnknownLocale = errors.New("unknown locale")

// WeekDay is a weekday label pair.
type WeekDay struct {
	Name    string
	Short   string
	Weekday time.Weekday
}

// Labels are the accessible names of the picker controls.
type Labels struct {
	NextMonth          string
	PreviousMonth      string
	OpenMonthSelector  string
	OpenYearSelector   string
	CloseMonthSelector string
	CloseYearSelector  string
	DefaultPlaceholder string
	From               string
	To                 string
}

// Locale describes how a calendar is named and laid out for a language.
type Locale struct {
	Name string

	// Months holds the twelve month names, Months[0] being month 1.
	Months [12]string

	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays [7]WeekDay

	WeekStart time.Weekday
	Weekend   []time.Weekday

	// Digits holds the native glyphs for 0-9.
	Digits [10]rune

	RTL    bool
	System calendar.System
	Labels Labels
}

// Today returns now as a date of the locale's calendar system.
func (l *Locale) Today(now time.Time) calendar.Date {
	return l.System.FromTime(now)
}

// MonthName returns the name of month 1-12, or "" when out of range.
func (l *Locale) MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return l.Months[month-1]
}

// MonthNumber returns the 1-based number of a month name, or 0.
func (l *Locale) MonthNumber(name string) int {
	for i, m := range l.Months {
		if strings.EqualFold(m, name) {
			return i + 1
		}
	}
	return 0
}

// WeekDays returns the weekdays in display order, starting with WeekStart.
func (l *Locale) WeekDays() []WeekDay {
	days := make([]WeekDay, 7)
	for i := range days {
		days[i] = l.Weekdays[(int(l.WeekStart)+i)%7]
	}
	return days
}

// Column returns the 0-based weekday column of d in a week row.
func (l *Locale) Column(d calendar.Date) int {
	return (int(l.System.Weekday(d)) - int(l.WeekStart) + 7) % 7
}

// IsWeekend reports whether wd is a weekend day for the locale.
func (l *Locale) IsWeekend(wd time.Weekday) bool {
	for _, w := range l.Weekend {
		if w == wd {
			return true
		}
	}
	return false
}

// ToNativeDigits rewrites ASCII digits in s with the locale's digits.
func (l *Locale) ToNativeDigits(s string) string {
	if l.Digits[0] == '0' {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(l.Digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Number formats n with native digits.
func (l *Locale) Number(n int) string {
	return l.ToNativeDigits(fmt.Sprint(n))
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Locale{}
)

func init() {
	for _, l := range []*Locale{English(), Persian(), Russian()} {
		Register(l)
	}
}

// Register adds or replaces a locale under its lowercase name.
func Register(l *Locale) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(l.Name)] = l
}

// Lookup returns the registered locale for name.
func Lookup(name string) (*Locale, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	return l, nil
}

// Names lists the registered locales alphabetically.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
