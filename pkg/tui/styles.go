package tui

import "github.com/charmbracelet/lipgloss"

// Class names understood by the default style sheet.
const (
	ClassCalendar       = "Calendar"
	ClassHeader         = "Calendar__header"
	ClassMonthArrow     = "Calendar__monthArrow"
	ClassMonthText      = "Calendar__monthText"
	ClassYearText       = "Calendar__yearText"
	ClassWeekDay        = "Calendar__weekDay"
	ClassFooter         = "Calendar__footer"
	ClassStatus         = "Calendar__status"
	ClassToday          = "-today"
	ClassSelected       = "-selected"
	ClassSelectedStart  = "-selectedStart"
	ClassSelectedEnd    = "-selectedEnd"
	ClassSelectedBetween = "-selectedBetween"
	ClassDisabled       = "-disabled"
	ClassWeekend        = "-weekend"
	ClassFocused        = "-focused"
	ClassActive         = "-activeSelector"
	ClassHoliday        = "holiday"

	classNoFocusOutline = "-noFocusOutline"
	classLTR            = "-ltr"
	classRTL            = "-rtl"
)

const (
	DefaultColorPrimary      = "#0eca2d"
	DefaultColorPrimaryLight = "#cff4d5"
)

// StyleSheet maps class names to styles. Classes combine in order, later
// classes overriding earlier ones.
type StyleSheet map[string]lipgloss.Style

// DefaultStyleSheet builds the built-in classes from the two theme colors.
func DefaultStyleSheet(primary, primaryLight string) StyleSheet {
	p := lipgloss.Color(primary)
	pl := lipgloss.Color(primaryLight)

	return StyleSheet{
		ClassCalendar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p).
			Padding(0, 1),
		ClassHeader:     lipgloss.NewStyle().Bold(true),
		ClassMonthArrow: lipgloss.NewStyle().Foreground(p).Bold(true),
		ClassMonthText:  lipgloss.NewStyle().Bold(true),
		ClassYearText:   lipgloss.NewStyle().Bold(true),
		ClassWeekDay:    lipgloss.NewStyle().Foreground(lipgloss.Color("#999")),
		ClassFooter:     lipgloss.NewStyle().Foreground(lipgloss.Color("#888")),
		ClassStatus:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f64")),
		ClassToday:      lipgloss.NewStyle().Foreground(p).Bold(true),
		ClassSelected: lipgloss.NewStyle().
			Background(p).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		ClassSelectedStart: lipgloss.NewStyle().
			Background(p).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		ClassSelectedEnd: lipgloss.NewStyle().
			Background(p).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		ClassSelectedBetween: lipgloss.NewStyle().
			Background(pl).
			Foreground(p),
		ClassDisabled: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		ClassWeekend:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d01c1c")),
		ClassFocused:  lipgloss.NewStyle().Underline(true).Bold(true),
		ClassActive:   lipgloss.NewStyle().Foreground(p).Underline(true),
		ClassHoliday:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22")),
	}
}

// Merge returns a copy of s with the classes of other added or replaced.
func (s StyleSheet) Merge(other StyleSheet) StyleSheet {
	out := make(StyleSheet, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Compose combines the styles of the given classes. Unknown and empty
// class names are skipped.
func (s StyleSheet) Compose(classes ...string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, class := range classes {
		if class == "" {
			continue
		}
		cs, ok := s[class]
		if !ok {
			continue
		}
		style = cs.Copy().Inherit(style)
	}
	return style
}
