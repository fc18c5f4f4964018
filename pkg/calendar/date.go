package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day expressed in the fields of a calendar System.
// Month runs from 1 to 12.
type Date struct {
	Year  int
	Month int
	Day   int
}

// System describes the arithmetic of a calendar (Gregorian, Persian...).
// Dates handed to a System are expressed in that system's own fields.
type System interface {
	// MonthLength returns the number of days in the given month.
	MonthLength(year, month int) int
	// Weekday returns the day of the week the date falls on.
	Weekday(d Date) time.Weekday
	// FromTime converts an instant into a Date of this system.
	FromTime(t time.Time) Date
	// ToTime returns midnight UTC of the given date.
	ToTime(d Date) time.Time
}

// NewDate is a small helper for building literal dates.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Ptr returns a pointer to a copy of d.
func (d Date) Ptr() *Date {
	return &d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names an existing day of sys.
func (d Date) Valid(sys System) bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= sys.MonthLength(d.Year, d.Month)
}

// Compare returns -1, 0 or 1 depending on whether a is before, equal to or
// after b. Both dates must belong to the same calendar system.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	default:
		return sign(a.Day - b.Day)
	}
}

// IsBefore reports whether a falls strictly before b.
func IsBefore(a, b Date) bool {
	return Compare(a, b) < 0
}

// IsSameDay reports whether a and b name the same day. Nil never matches.
func IsSameDay(a, b *Date) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// IsWithinRange reports whether d lies strictly between from and to.
func IsWithinRange(d, from, to Date) bool {
	return Compare(d, from) > 0 && Compare(d, to) < 0
}

// MonthCompare compares only the year and month of a and b.
func MonthCompare(a, b Date) int {
	if a.Year != b.Year {
		return sign(a.Year - b.Year)
	}
	return sign(a.Month - b.Month)
}

// DateAccordingToMonth returns the first day of the month after (NEXT) or
// before (any other direction) date.
func DateAccordingToMonth(date Date, direction Direction) Date {
	step := -1
	if direction == DirectionNext {
		step = 1
	}
	month := date.Month + step
	year := date.Year
	if month < 1 {
		month = 12
		year--
	}
	if month > 12 {
		month = 1
		year++
	}
	return Date{Year: year, Month: month, Day: 1}
}

// NextDay returns the day following d in sys.
func NextDay(d Date, sys System) Date {
	if d.Day < sys.MonthLength(d.Year, d.Month) {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	return DateAccordingToMonth(d, DirectionNext)
}

// PreviousDay returns the day preceding d in sys.
func PreviousDay(d Date, sys System) Date {
	if d.Day > 1 {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day - 1}
	}
	prev := DateAccordingToMonth(d, DirectionPrevious)
	prev.Day = sys.MonthLength(prev.Year, prev.Month)
	return prev
}

// AddDays moves d by n days, backwards when n is negative.
func AddDays(d Date, n int, sys System) Date {
	for ; n > 0; n-- {
		d = NextDay(d, sys)
	}
	for ; n < 0; n++ {
		d = PreviousDay(d, sys)
	}
	return d
}

// ClampDay pulls d.Day back into the month so that d stays a valid date.
func ClampDay(d Date, sys System) Date {
	if d.Day < 1 {
		d.Day = 1
	}
	if n := sys.MonthLength(d.Year, d.Month); d.Day > n {
		d.Day = n
	}
	return d
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
