package locale

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"en", "fa", "ru", " FA "} {
		l, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(name)), l.Name)
	}

	_, err := Lookup("xx")
	assert.True(t, errors.Is(err, ErrUnknownLocale))
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()
	assert.Subset(t, names, []string{"en", "fa", "ru"})
	assert.IsIncreasing(t, names)
}

func TestWeekDaysOrder(t *testing.T) {
	tests := []struct {
		loc   *Locale
		first time.Weekday
		last  time.Weekday
	}{
		{English(), time.Sunday, time.Saturday},
		{Persian(), time.Saturday, time.Friday},
		{Russian(), time.Monday, time.Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.loc.Name, func(t *testing.T) {
			days := tt.loc.WeekDays()
			require.Len(t, days, 7)
			assert.Equal(t, tt.first, days[0].Weekday)
			assert.Equal(t, tt.last, days[6].Weekday)
		})
	}
}

func TestColumn(t *testing.T) {
	// 2024-03-01 is a Friday
	friday := calendar.NewDate(2024, 3, 1)

	assert.Equal(t, 5, English().Column(friday))
	assert.Equal(t, 4, Russian().Column(friday))

	// 1403-01-01 is Wednesday 2024-03-20
	assert.Equal(t, 4, Persian().Column(calendar.NewDate(1403, 1, 1)))
}

func TestWeekend(t *testing.T) {
	assert.True(t, English().IsWeekend(time.Sunday))
	assert.False(t, English().IsWeekend(time.Friday))
	assert.True(t, Persian().IsWeekend(time.Friday))
	assert.False(t, Persian().IsWeekend(time.Saturday))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "1403", English().Number(1403))
	assert.Equal(t, "۱۴۰۳", Persian().Number(1403))
	assert.Equal(t, "۲۰۲۴-۰۳", Persian().ToNativeDigits("2024-03"))
}

func TestMonthNames(t *testing.T) {
	en := English()

	assert.Equal(t, "March", en.MonthName(3))
	assert.Equal(t, "", en.MonthName(13))
	assert.Equal(t, 12, en.MonthNumber("december"))
	assert.Equal(t, 0, en.MonthNumber("Smarch"))
	assert.Equal(t, "مهر", Persian().MonthName(7))
}

func TestPersianSystem(t *testing.T) {
	sys := PersianSystem{}

	assert.Equal(t, calendar.NewDate(1403, 1, 1), sys.FromTime(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), sys.ToTime(calendar.NewDate(1403, 1, 1)))
	assert.Equal(t, time.Wednesday, sys.Weekday(calendar.NewDate(1403, 1, 1)))

	assert.Equal(t, 31, sys.MonthLength(1403, 1))
	assert.Equal(t, 31, sys.MonthLength(1403, 6))
	assert.Equal(t, 30, sys.MonthLength(1403, 7))
	assert.Equal(t, 29, sys.MonthLength(1402, 12))
	assert.Equal(t, 30, sys.MonthLength(1403, 12))
}

func TestGregorianSystem(t *testing.T) {
	sys := GregorianSystem{}

	assert.Equal(t, 29, sys.MonthLength(2024, 2))
	assert.Equal(t, 28, sys.MonthLength(2100, 2))
	assert.Equal(t, calendar.NewDate(2024, 3, 5), sys.FromTime(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)))
}

func TestSystemByName(t *testing.T) {
	sys, ok := SystemByName("")
	assert.True(t, ok)
	assert.IsType(t, GregorianSystem{}, sys)

	sys, ok = SystemByName(SystemPersian)
	assert.True(t, ok)
	assert.IsType(t, PersianSystem{}, sys)

	_, ok = SystemByName("julian")
	assert.False(t, ok)
}

func TestParseWeekday(t *testing.T) {
	for input, want := range map[string]time.Weekday{
		"friday": time.Friday,
		"Sat":    time.Saturday,
		" sun ":  time.Sunday,
	} {
		got, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}
