package locale

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

const (
	SystemGregorian = "gregorian"
	SystemPersian   = "persian"
)

// GregorianSystem is the proleptic Gregorian calendar of the time package.
type GregorianSystem struct{}

func (GregorianSystem) MonthLength(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g GregorianSystem) Weekday(d calendar.Date) time.Weekday {
	return g.ToTime(d).Weekday()
}

func (GregorianSystem) FromTime(t time.Time) calendar.Date {
	year, month, day := t.Date()
	return calendar.Date{Year: year, Month: int(month), Day: day}
}

func (GregorianSystem) ToTime(d calendar.Date) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// PersianSystem is the Solar Hijri calendar used by the fa locale.
type PersianSystem struct{}

// MonthLength measures the distance between two month starts so that
// Esfand picks up the leap day without a table.
func (p PersianSystem) MonthLength(year, month int) int {
	first := calendar.Date{Year: year, Month: month, Day: 1}
	next := calendar.DateAccordingToMonth(first, calendar.DirectionNext)
	return int(p.ToTime(next).Sub(p.ToTime(first)).Hours() / 24)
}

func (p PersianSystem) Weekday(d calendar.Date) time.Weekday {
	return p.ToTime(d).Weekday()
}

func (PersianSystem) FromTime(t time.Time) calendar.Date {
	pt := ptime.New(t)
	return calendar.Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

func (PersianSystem) ToTime(d calendar.Date) time.Time {
	return ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Time()
}

// SystemByName maps a configuration name to a calendar system.
func SystemByName(name string) (calendar.System, bool) {
	switch name {
	case "", SystemGregorian:
		return GregorianSystem{}, true
	case SystemPersian:
		return PersianSystem{}, true
	}
	return nil, false
}
