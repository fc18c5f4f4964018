package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/locale"
)

const holidaysICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//datepick//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:new-year@test\r\n" +
	"DTSTART;VALUE=DATE:20240101\r\n" +
	"DTEND;VALUE=DATE:20240102\r\n" +
	"SUMMARY:New Year\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:break@test\r\n" +
	"DTSTART;VALUE=DATE:20240325\r\n" +
	"DTEND;VALUE=DATE:20240328\r\n" +
	"SUMMARY:Spring Break\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:christmas@test\r\n" +
	"DTSTART;VALUE=DATE:20201225\r\n" +
	"RRULE:FREQ=YEARLY\r\n" +
	"SUMMARY:Christmas\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseHolidays(t *testing.T) {
	h, err := ParseHolidays(strings.NewReader(holidaysICS), locale.GregorianSystem{})
	require.NoError(t, err)

	summary, ok := h.Summary(calendar.NewDate(2024, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, "New Year", summary)
	assert.False(t, h.Match(calendar.NewDate(2024, 1, 2)), "DTEND is exclusive")

	for day := 25; day <= 27; day++ {
		assert.True(t, h.Match(calendar.NewDate(2024, 3, day)), "spring break day %d", day)
	}
	assert.False(t, h.Match(calendar.NewDate(2024, 3, 28)))

	summary, ok = h.Summary(calendar.NewDate(2031, 12, 25))
	assert.True(t, ok)
	assert.Equal(t, "Christmas", summary)
	assert.False(t, h.Match(calendar.NewDate(2019, 12, 25)), "recurrence starts at DTSTART")

	assert.Len(t, h.Days, 4)
	assert.Len(t, h.Recurring, 1)
}

func TestParseHolidaysInvalid(t *testing.T) {
	_, err := ParseHolidays(strings.NewReader("not a calendar"), locale.GregorianSystem{})
	assert.Error(t, err)
}

func TestLoadHolidaysMissingFile(t *testing.T) {
	_, err := LoadHolidays("/nonexistent/holidays.ics", locale.GregorianSystem{})
	assert.Error(t, err)
}
