package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// gregorian is a minimal System for tests; the real ones live in the
// locale package.
type gregorian struct{}

func (gregorian) MonthLength(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (gregorian) Weekday(d Date) time.Weekday {
	return gregorian{}.ToTime(d).Weekday()
}

func (gregorian) FromTime(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func (gregorian) ToTime(d Date) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func TestCompare(t *testing.T) {
	a := NewDate(2024, 3, 5)

	assert.Equal(t, 0, Compare(a, a))
	assert.Equal(t, -1, Compare(a, NewDate(2024, 3, 6)))
	assert.Equal(t, 1, Compare(a, NewDate(2024, 2, 29)))
	assert.Equal(t, -1, Compare(a, NewDate(2025, 1, 1)))
	assert.True(t, IsBefore(NewDate(2023, 12, 31), a))
	assert.False(t, IsBefore(a, a))
}

func TestIsSameDay(t *testing.T) {
	a := NewDate(2024, 3, 5)

	assert.True(t, IsSameDay(a.Ptr(), a.Ptr()))
	assert.False(t, IsSameDay(a.Ptr(), NewDate(2024, 3, 6).Ptr()))
	assert.False(t, IsSameDay(nil, a.Ptr()))
	assert.False(t, IsSameDay(nil, nil))
}

func TestIsWithinRangeIsStrict(t *testing.T) {
	from := NewDate(2024, 3, 5)
	to := NewDate(2024, 3, 9)

	assert.True(t, IsWithinRange(NewDate(2024, 3, 7), from, to))
	assert.False(t, IsWithinRange(from, from, to))
	assert.False(t, IsWithinRange(to, from, to))
	assert.False(t, IsWithinRange(NewDate(2024, 3, 10), from, to))
}

func TestDateAccordingToMonth(t *testing.T) {
	tests := []struct {
		name      string
		date      Date
		direction Direction
		want      Date
	}{
		{"next", NewDate(2024, 3, 17), DirectionNext, NewDate(2024, 4, 1)},
		{"previous", NewDate(2024, 3, 17), DirectionPrevious, NewDate(2024, 2, 1)},
		{"next year", NewDate(2024, 12, 31), DirectionNext, NewDate(2025, 1, 1)},
		{"previous year", NewDate(2024, 1, 1), DirectionPrevious, NewDate(2023, 12, 1)},
		{"none goes back", NewDate(2024, 3, 17), DirectionNone, NewDate(2024, 2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateAccordingToMonth(tt.date, tt.direction))
		})
	}
}

func TestDayArithmetic(t *testing.T) {
	sys := gregorian{}

	assert.Equal(t, NewDate(2024, 3, 1), NextDay(NewDate(2024, 2, 29), sys))
	assert.Equal(t, NewDate(2023, 3, 1), NextDay(NewDate(2023, 2, 28), sys))
	assert.Equal(t, NewDate(2024, 2, 29), PreviousDay(NewDate(2024, 3, 1), sys))
	assert.Equal(t, NewDate(2023, 12, 31), PreviousDay(NewDate(2024, 1, 1), sys))

	assert.Equal(t, NewDate(2024, 3, 12), AddDays(NewDate(2024, 3, 5), 7, sys))
	assert.Equal(t, NewDate(2024, 2, 27), AddDays(NewDate(2024, 3, 5), -7, sys))
	assert.Equal(t, NewDate(2024, 3, 5), AddDays(NewDate(2024, 3, 5), 0, sys))
}

func TestClampDay(t *testing.T) {
	sys := gregorian{}

	assert.Equal(t, NewDate(2023, 2, 28), ClampDay(NewDate(2023, 2, 31), sys))
	assert.Equal(t, NewDate(2024, 2, 29), ClampDay(NewDate(2024, 2, 31), sys))
	assert.Equal(t, NewDate(2024, 4, 1), ClampDay(NewDate(2024, 4, 0), sys))
	assert.Equal(t, NewDate(2024, 4, 15), ClampDay(NewDate(2024, 4, 15), sys))
}

func TestValid(t *testing.T) {
	sys := gregorian{}

	assert.True(t, NewDate(2024, 2, 29).Valid(sys))
	assert.False(t, NewDate(2023, 2, 29).Valid(sys))
	assert.False(t, NewDate(2024, 13, 1).Valid(sys))
	assert.False(t, NewDate(2024, 1, 0).Valid(sys))
	assert.True(t, Date{}.IsZero())
	assert.Equal(t, "0987-06-05", NewDate(987, 6, 5).String())
}
