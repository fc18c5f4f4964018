package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/locale"
)

const (
	multiSeparator = ","
	rangeSeparator = ".."
)

// ParseDate reads a YYYY-MM-DD date. The fields are taken as-is, so a
// Persian date parses the same way as a Gregorian one.
func ParseDate(s string) (calendar.Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return calendar.Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	fields := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return calendar.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		fields[i] = n
	}
	d := calendar.NewDate(fields[0], fields[1], fields[2])
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return calendar.Date{}, fmt.Errorf("invalid date %q: month or day out of range", s)
	}
	return d, nil
}

// ParseDateIn is ParseDate plus a check that the day exists in the
// locale's calendar.
func ParseDateIn(s string, loc *locale.Locale) (calendar.Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return d, err
	}
	if !d.Valid(loc.System) {
		return calendar.Date{}, fmt.Errorf("invalid date %q: no such day in the %s calendar", s, loc.Name)
	}
	return d, nil
}

// Value renders a selection in its canonical text form:
// "2024-03-05", "2024-03-05,2024-03-07" or "2024-03-05..2024-03-09".
// Open range ends are left blank.
func Value(v calendar.Value) string {
	switch val := v.(type) {
	case calendar.Single:
		if val.Date == nil {
			return ""
		}
		return val.Date.String()
	case calendar.Multi:
		parts := make([]string, len(val.Dates))
		for i, d := range val.Dates {
			parts[i] = d.String()
		}
		return strings.Join(parts, multiSeparator)
	case calendar.Range:
		return optional(val.From) + rangeSeparator + optional(val.To)
	}
	return ""
}

func optional(d *calendar.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// ParseValue reads the canonical text form back for the given kind.
func ParseValue(kind calendar.Kind, s string) (calendar.Value, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case calendar.KindMulti:
		v := calendar.Multi{}
		if s == "" {
			return v, nil
		}
		for _, part := range strings.Split(s, multiSeparator) {
			d, err := ParseDate(part)
			if err != nil {
				return nil, err
			}
			v.Dates = append(v.Dates, d)
		}
		return v, nil
	case calendar.KindRange:
		v := calendar.Range{}
		if s == "" || s == rangeSeparator {
			return v, nil
		}
		parts := strings.SplitN(s, rangeSeparator, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid range %q: use FROM..TO", s)
		}
		var err error
		if v.From, err = optionalDate(parts[0]); err != nil {
			return nil, err
		}
		if v.To, err = optionalDate(parts[1]); err != nil {
			return nil, err
		}
		return v, nil
	case calendar.KindSingle, "":
		if s == "" {
			return calendar.Single{}, nil
		}
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		return calendar.Single{Date: &d}, nil
	}
	return nil, fmt.Errorf("unknown selection kind %q", kind)
}

func optionalDate(s string) (*calendar.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseKind accepts single, multi or range.
func ParseKind(s string) (calendar.Kind, error) {
	switch k := calendar.Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case calendar.KindSingle, calendar.KindMulti, calendar.KindRange:
		return k, nil
	case "":
		return calendar.KindSingle, nil
	}
	return "", fmt.Errorf("unknown mode %q: use single, multi or range", s)
}

// DateRange reads --min/--max and --month flags into picker bounds.
// --month YYYY-MM bounds the picker to that single month.
func DateRange(args []string, loc *locale.Locale) (minDate, maxDate *calendar.Date, err error) {
	for i, arg := range args {
		if i+1 >= len(args) {
			break
		}
		switch arg {
		case "--min":
			d, err := ParseDateIn(args[i+1], loc)
			if err != nil {
				return nil, nil, err
			}
			minDate = &d
		case "--max":
			d, err := ParseDateIn(args[i+1], loc)
			if err != nil {
				return nil, nil, err
			}
			maxDate = &d
		case "--month", "-m":
			first, err := ParseDateIn(args[i+1]+"-01", loc)
			if err != nil {
				return nil, nil, err
			}
			last := first
			last.Day = loc.System.MonthLength(first.Year, first.Month)
			minDate, maxDate = &first, &last
		}
	}

	if minDate != nil && maxDate != nil && calendar.IsBefore(*maxDate, *minDate) {
		return nil, nil, fmt.Errorf("--max %s is before --min %s", maxDate, minDate)
	}
	return minDate, maxDate, nil
}

// DateForDisplay renders a date as "March 5, 2024", or "5 فروردین 1403"
// with native digits for right-to-left locales.
func DateForDisplay(d calendar.Date, loc *locale.Locale) string {
	if d.IsZero() {
		return ""
	}
	month := loc.MonthName(d.Month)
	if month == "" {
		return d.String()
	}
	if loc.RTL {
		return loc.ToNativeDigits(fmt.Sprintf("%d %s %d", d.Day, month, d.Year))
	}
	return loc.ToNativeDigits(fmt.Sprintf("%s %d, %d", month, d.Day, d.Year))
}

// ValueForDisplay renders a selection for people, using the locale's
// from/to labels for ranges.
func ValueForDisplay(v calendar.Value, loc *locale.Locale) string {
	if v == nil || calendar.IsEmpty(v) {
		return loc.Labels.DefaultPlaceholder
	}
	switch val := v.(type) {
	case calendar.Single:
		return DateForDisplay(*val.Date, loc)
	case calendar.Multi:
		parts := make([]string, len(val.Dates))
		for i, d := range val.Dates {
			parts[i] = DateForDisplay(d, loc)
		}
		return strings.Join(parts, "; ")
	case calendar.Range:
		var b strings.Builder
		if val.From != nil {
			b.WriteString(loc.Labels.From + " " + DateForDisplay(*val.From, loc))
		}
		if val.To != nil {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(loc.Labels.To + " " + DateForDisplay(*val.To, loc))
		}
		return b.String()
	}
	return ""
}
