package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

const (
	monthColumns   = 3
	monthCellWidth = gridWidth / monthColumns
)

func (m Model) monthAllowedIn(year, month int) bool {
	return m.selector.Bounds.MonthAllowed(calendar.Date{Year: year, Month: month, Day: 1})
}

func (m Model) monthSelectorView() string {
	active := m.nav.ActiveDate()
	lines := make([]string, 0, 12/monthColumns)
	for r := 0; r < 12/monthColumns; r++ {
		row := make([]string, monthColumns)
		for c := range row {
			month := r*monthColumns + c + 1
			classes := []string{}
			if month == active.Month {
				classes = append(classes, ClassSelected)
			}
			if !m.monthAllowedIn(active.Year, month) {
				classes = append(classes, ClassDisabled)
			}
			if month == m.monthCursor {
				classes = append(classes, ClassFocused)
			}
			row[c] = m.styles.Compose(classes...).Copy().
				Width(monthCellWidth).
				Align(lipgloss.Center).
				Render(m.loc.MonthName(month))
		}
		if m.loc.RTL {
			reverse(row)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// moveMonthCursor moves the month selector cursor by delta, staying on
// the grid.
func (m *Model) moveMonthCursor(delta int) {
	next := m.monthCursor + delta
	if next < 1 || next > 12 {
		return
	}
	m.monthCursor = next
}
