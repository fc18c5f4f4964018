package cli

import (
	"fmt"
	"strings"

	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"

	"github.com/arjungandhi/datepick/pkg/locale"
	"github.com/arjungandhi/datepick/pkg/table"
)

var Locales = &Z.Cmd{
	Name:     "locales",
	Aliases:  []string{"locale"},
	Summary:  "list the available calendar locales",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		config := table.DefaultConfig()
		config.BoldHeaders = true
		config.UseTabwriter = false

		t := table.NewWithConfig(config, "Name", "Calendar", "Week Starts", "Weekend", "Direction", "Months")
		for _, name := range locale.Names() {
			l, err := locale.Lookup(name)
			if err != nil {
				continue
			}
			t.AddRow(localeRow(l)...)
		}
		return t.Render()
	},
}

func localeRow(l *locale.Locale) []string {
	calendarName := locale.SystemGregorian
	if _, ok := l.System.(locale.PersianSystem); ok {
		calendarName = locale.SystemPersian
	}

	weekend := make([]string, len(l.Weekend))
	for i, wd := range l.Weekend {
		weekend[i] = wd.String()[:3]
	}

	direction := "ltr"
	if l.RTL {
		direction = "rtl"
	}

	return []string{
		l.Name,
		calendarName,
		l.WeekStart.String(),
		strings.Join(weekend, ","),
		direction,
		fmt.Sprintf("%s … %s", l.MonthName(1), l.MonthName(12)),
	}
}
