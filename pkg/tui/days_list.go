package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

const (
	cellWidth = 4
	gridWidth = cellWidth * 7
	gridRows  = 6

	// slideFrames is the number of steps a month slide takes. Each frame
	// shifts the grid by one column.
	slideFrames = 7
)

func (m Model) cell(text string, classes ...string) string {
	return m.styles.Compose(classes...).Copy().
		Width(cellWidth).
		Align(lipgloss.Center).
		Render(text)
}

func (m Model) weekDaysView() string {
	days := m.loc.WeekDays()
	cells := make([]string, len(days))
	for i, wd := range days {
		classes := []string{ClassWeekDay}
		if m.opts.ShouldHighlightWeekends && m.loc.IsWeekend(wd.Weekday) {
			classes = append(classes, ClassWeekend)
		}
		cells[i] = m.cell(wd.Short, classes...)
	}
	if m.loc.RTL {
		reverse(cells)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// dayClasses lists the classes of one day cell. Order matters: later
// classes win when styles are composed.
func (m Model) dayClasses(d calendar.Date, interactive bool) []string {
	var classes []string
	if m.opts.ShouldHighlightWeekends && m.loc.IsWeekend(m.loc.System.Weekday(d)) {
		classes = append(classes, ClassWeekend)
	}
	classes = append(classes, m.customClasses[d]...)

	selected := false
	switch v := m.nav.Value().(type) {
	case calendar.Single:
		if calendar.IsSameDay(v.Date, &d) {
			selected = true
			classes = append(classes, ClassSelected, m.opts.ClassNames.SelectedDay)
		}
	case calendar.Multi:
		if calendar.Contains(v, d) {
			selected = true
			classes = append(classes, ClassSelected, m.opts.ClassNames.SelectedDay)
		}
	case calendar.Range:
		if calendar.IsSameDay(v.From, &d) {
			selected = true
			classes = append(classes, ClassSelectedStart, m.opts.ClassNames.RangeStart)
		}
		if calendar.IsSameDay(v.To, &d) {
			selected = true
			classes = append(classes, ClassSelectedEnd, m.opts.ClassNames.RangeEnd)
		}
		if v.From != nil && v.To != nil && calendar.IsWithinRange(d, *v.From, *v.To) {
			selected = true
			classes = append(classes, ClassSelectedBetween, m.opts.ClassNames.RangeBetween)
		}
	}

	if !selected && d == m.nav.Today() {
		classes = append(classes, ClassToday, m.opts.ClassNames.Today)
	}
	if m.selector.IsDisabled(d) {
		classes = append(classes, ClassDisabled)
	}
	if interactive && m.region == regionDays && m.focus.Visible() && d == m.cursorDate() {
		classes = append(classes, ClassFocused)
	}
	return classes
}

// monthRows lays out the month of month as six rows of seven cells, in
// visual order.
func (m Model) monthRows(month calendar.Date, interactive bool) [][]string {
	first := calendar.Date{Year: month.Year, Month: month.Month, Day: 1}
	length := m.loc.System.MonthLength(first.Year, first.Month)
	blank := m.cell("")

	cells := make([]string, 0, gridRows*7)
	for i := m.loc.Column(first); i > 0; i-- {
		cells = append(cells, blank)
	}
	for day := 1; day <= length; day++ {
		d := calendar.Date{Year: first.Year, Month: first.Month, Day: day}
		cells = append(cells, m.cell(m.loc.Number(day), m.dayClasses(d, interactive)...))
	}
	for len(cells) < gridRows*7 {
		cells = append(cells, blank)
	}

	rows := make([][]string, gridRows)
	for r := range rows {
		row := append([]string(nil), cells[r*7:(r+1)*7]...)
		if m.loc.RTL {
			reverse(row)
		}
		rows[r] = row
	}
	return rows
}

// slideOffset is how many columns the grid has moved so far.
func (m Model) slideOffset() int {
	if !m.slide.active {
		return 0
	}
	return m.slide.frame * 7 / slideFrames
}

// daysView renders the day grid. While a month change is in flight the
// outgoing and incoming months are laid side by side and a seven column
// window moves across them.
func (m Model) daysView() string {
	active := m.nav.ActiveDate()
	current := m.monthRows(active, true)

	offset := m.slideOffset()
	if offset == 0 {
		return joinRows(current)
	}

	incoming := m.monthRows(calendar.DateAccordingToMonth(active, m.slide.direction), false)
	// Moving forward in a left-to-right layout pushes the grid left.
	leading := (m.slide.direction == calendar.DirectionNext) != m.loc.RTL

	rows := make([][]string, gridRows)
	for r := range rows {
		var strip []string
		if leading {
			strip = append(append(strip, current[r]...), incoming[r]...)
			rows[r] = strip[offset : offset+7]
		} else {
			strip = append(append(strip, incoming[r]...), current[r]...)
			rows[r] = strip[7-offset : 14-offset]
		}
	}
	return joinRows(rows)
}

func joinRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, row...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
