package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/locale"
)

const (
	DefaultSlideAnimationDuration = "0.4s"
	DefaultLocale                 = "en"

	// yearsBack and yearsAhead bound the year selector when no explicit
	// range is configured.
	yearsBack  = 100
	yearsAhead = 50
)

// ClassNames are extra classes applied on top of the built-in ones.
type ClassNames struct {
	Calendar     string
	Today        string
	SelectedDay  string
	RangeStart   string
	RangeBetween string
	RangeEnd     string
}

// CustomDayClass tags one day with an extra class.
type CustomDayClass struct {
	Date      calendar.Date
	ClassName string
}

// Options configure a calendar Model. The zero value is a usable single-day
// picker in English.
type Options struct {
	// Value is the initial selection. Its kind wins over Kind.
	Value calendar.Value
	// Kind is used when Value is nil.
	Kind calendar.Kind

	calendar.Callbacks

	ClassNames   ClassNames
	DisabledDays calendar.DayMatcher

	ColorPrimary      string
	ColorPrimaryLight string

	// SlideAnimationDuration is a Go duration ("400ms") or a bare number
	// of seconds ("0.4s" and "0.4" are equivalent). Zero disables the slide.
	SlideAnimationDuration string

	MinimumDate *calendar.Date
	MaximumDate *calendar.Date

	SelectorStartingYear int
	SelectorEndingYear   int

	// Locale is a registered locale name. LocaleDef, when set, is used as is.
	Locale    string
	LocaleDef *locale.Locale

	ShouldHighlightWeekends bool
	RenderFooter            func() string
	CustomDaysClassName     []CustomDayClass

	// StyleSheet adds or overrides classes of the default style sheet.
	StyleSheet StyleSheet

	// Controlled leaves committing selections to the host, which answers
	// OnChange with SetValue. Otherwise the model keeps its own value.
	Controlled bool

	// Now defaults to time.Now.
	Now func() time.Time

	Logger *logrus.Entry
}

// ParseSlideDuration reads the slide animation duration.
func ParseSlideDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var seconds float64
	if _, err := fmt.Sscanf(s, "%g", &seconds); err != nil {
		return 0, fmt.Errorf("invalid slide duration %q", s)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func (o Options) withDefaults() Options {
	if o.ColorPrimary == "" {
		o.ColorPrimary = DefaultColorPrimary
	}
	if o.ColorPrimaryLight == "" {
		o.ColorPrimaryLight = DefaultColorPrimaryLight
	}
	if o.SlideAnimationDuration == "" {
		o.SlideAnimationDuration = DefaultSlideAnimationDuration
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = logrus.NewEntry(l)
	}
	if o.Kind == "" {
		o.Kind = calendar.KindSingle
	}
	if o.Value != nil {
		o.Kind = o.Value.Kind()
	}
	return o
}

// resolveLocale returns the configured locale, falling back to English.
func (o Options) resolveLocale() *locale.Locale {
	if o.LocaleDef != nil {
		return o.LocaleDef
	}
	loc, err := locale.Lookup(o.Locale)
	if err != nil {
		o.Logger.WithError(err).Warn("falling back to the default locale")
		return locale.English()
	}
	return loc
}
