package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/config"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/locale"
	"github.com/arjungandhi/datepick/pkg/rules"
	"github.com/arjungandhi/datepick/pkg/tui"
)

// holidayWindowYears is how far around today holidays are marked with the
// holiday class. Disabled holidays are matched on demand and have no window.
const holidayWindowYears = 2

// pickFlags are the command line options of the pick command
type pickFlags struct {
	mode     string
	value    string
	locale   string
	disable  []string
	holidays string
	noSave   bool
	display  bool
	// bounds holds the raw --min/--max/--month arguments, read once the
	// locale is known
	bounds []string
}

func parsePickArgs(args []string) (pickFlags, error) {
	var f pickFlags
	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value", args[i])
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--no-save":
			f.noSave = true
			continue
		case "--display":
			f.display = true
			continue
		}

		v, err := next(i)
		if err != nil {
			return f, err
		}
		switch arg {
		case "--mode", "-k":
			f.mode = v
		case "--value":
			f.value = v
		case "--locale", "-l":
			f.locale = v
		case "--disable", "-d":
			f.disable = append(f.disable, v)
		case "--holidays":
			f.holidays = v
		case "--min", "--max", "--month", "-m":
			f.bounds = append(f.bounds, arg, v)
		default:
			return f, fmt.Errorf("unknown argument %q", arg)
		}
		i++
	}
	return f, nil
}

// resolvePickLocale registers the settings' locale files and picks the
// locale: the flag wins over the settings, unknown names fall back to
// English.
func resolvePickLocale(s *config.Settings, f pickFlags, log *logrus.Entry) *locale.Locale {
	for _, path := range s.LocaleFiles {
		l, err := locale.LoadFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("skipping locale file")
			continue
		}
		locale.Register(l)
	}

	name := s.Locale
	if f.locale != "" {
		name = f.locale
	}
	loc, err := locale.Lookup(name)
	if err != nil {
		log.WithError(err).Warn("falling back to the default locale")
		return locale.English()
	}
	return loc
}

// buildOptions turns the settings and flags into calendar options
func buildOptions(s *config.Settings, f pickFlags, loc *locale.Locale, now func() time.Time, log *logrus.Entry) (tui.Options, error) {
	mode := s.Mode
	if f.mode != "" {
		mode = f.mode
	}
	kind, err := format.ParseKind(mode)
	if err != nil {
		return tui.Options{}, err
	}

	opts := tui.Options{
		Kind:                    kind,
		ColorPrimary:            s.ColorPrimary,
		ColorPrimaryLight:       s.ColorPrimaryLight,
		SlideAnimationDuration:  s.SlideAnimationDuration,
		SelectorStartingYear:    s.SelectorStartingYear,
		SelectorEndingYear:      s.SelectorEndingYear,
		LocaleDef:               loc,
		ShouldHighlightWeekends: s.HighlightWeekends,
		StyleSheet:              styleSheet(s.Styles),
		Now:                     now,
		Logger:                  log,
		ClassNames: tui.ClassNames{
			Calendar:     s.ClassNames.Calendar,
			Today:        s.ClassNames.Today,
			SelectedDay:  s.ClassNames.SelectedDay,
			RangeStart:   s.ClassNames.RangeStart,
			RangeBetween: s.ClassNames.RangeBetween,
			RangeEnd:     s.ClassNames.RangeEnd,
		},
	}

	if f.value != "" {
		v, err := format.ParseValue(kind, f.value)
		if err != nil {
			return tui.Options{}, fmt.Errorf("invalid --value: %w", err)
		}
		opts.Value = v
	}

	if opts.MinimumDate, opts.MaximumDate, err = format.DateRange(f.bounds, loc); err != nil {
		return tui.Options{}, err
	}

	disabled, err := rules.ParseAll(append(append([]string{}, s.Disabled...), f.disable...), loc)
	if err != nil {
		return tui.Options{}, err
	}

	holidaysPath := s.Holidays
	if f.holidays != "" {
		holidaysPath = f.holidays
	}
	if holidaysPath != "" {
		h, err := rules.LoadHolidays(holidaysPath, loc.System)
		if err != nil {
			return tui.Options{}, err
		}
		if s.HolidayMode == "disable" {
			disabled = append(disabled, h)
		} else {
			today := loc.Today(now())
			opts.CustomDaysClassName = holidayClasses(h, loc.System, today)
		}
		log.WithFields(logrus.Fields{
			"path":      holidaysPath,
			"days":      len(h.Days),
			"recurring": len(h.Recurring),
			"mode":      s.HolidayMode,
		}).Debug("holidays loaded")
	}
	if len(disabled) > 0 {
		opts.DisabledDays = disabled
	}

	return opts, nil
}

// holidayClasses tags every holiday within holidayWindowYears of today
func holidayClasses(h *rules.Holidays, sys calendar.System, today calendar.Date) []tui.CustomDayClass {
	from := calendar.Date{Year: today.Year - holidayWindowYears, Month: 1, Day: 1}
	to := calendar.Date{Year: today.Year + holidayWindowYears, Month: 12, Day: sys.MonthLength(today.Year+holidayWindowYears, 12)}

	var out []tui.CustomDayClass
	for d := from; calendar.Compare(d, to) <= 0; d = calendar.NextDay(d, sys) {
		if h.Match(d) {
			out = append(out, tui.CustomDayClass{Date: d, ClassName: tui.ClassHoliday})
		}
	}
	return out
}

// styleSheet converts the configured class styles into lipgloss styles
func styleSheet(styles map[string]config.ClassStyle) tui.StyleSheet {
	sheet := tui.StyleSheet{}
	for class, cs := range styles {
		style := lipgloss.NewStyle()
		if cs.Foreground != "" {
			style = style.Foreground(lipgloss.Color(cs.Foreground))
		}
		if cs.Background != "" {
			style = style.Background(lipgloss.Color(cs.Background))
		}
		if cs.Bold {
			style = style.Bold(true)
		}
		if cs.Underline {
			style = style.Underline(true)
		}
		if cs.Faint {
			style = style.Faint(true)
		}
		sheet[class] = style
	}
	return sheet
}

// parseLimit reads a --limit/-n value; 0 means no limit
func parseLimit(args []string, fallback int) (int, error) {
	for i, arg := range args {
		if (arg == "--limit" || arg == "-n") && i+1 < len(args) {
			n, err := strconv.Atoi(strings.TrimSpace(args[i+1]))
			if err != nil || n < 0 {
				return 0, fmt.Errorf("invalid limit %q", args[i+1])
			}
			return n, nil
		}
	}
	return fallback, nil
}
