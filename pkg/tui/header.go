package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arjungandhi/datepick/pkg/calendar"
)

// Header controls in visual order.
const (
	buttonLeft = iota
	buttonMonth
	buttonYear
	buttonRight
)

// arrowDirection maps a header arrow to a month direction. Right-to-left
// layouts put the previous month on the right.
func (m Model) arrowDirection(button int) calendar.Direction {
	next := button == buttonRight
	if m.loc.RTL {
		next = !next
	}
	if next {
		return calendar.DirectionNext
	}
	return calendar.DirectionPrevious
}

func (m Model) headerFocused(button int) bool {
	return m.region == regionHeader && m.button == button && m.focus.Visible()
}

func (m Model) arrowView(glyph string, button int, state calendar.ViewState) string {
	// Arrows are hidden while a selector covers the days.
	if state.QuickSelectorOpen() {
		return m.cell("")
	}
	classes := []string{ClassMonthArrow}
	if !m.monthAllowed(m.arrowDirection(button)) {
		classes = append(classes, ClassDisabled)
	}
	if m.headerFocused(button) {
		classes = append(classes, ClassFocused)
	}
	return m.cell(glyph, classes...)
}

func (m Model) headerTextView(text string, button int, class string, open bool) string {
	classes := []string{class}
	if open {
		classes = append(classes, ClassActive)
	}
	if m.headerFocused(button) {
		classes = append(classes, ClassFocused)
	}
	return m.styles.Compose(classes...).Render(text)
}

func (m Model) headerView() string {
	state := m.nav.State()
	active := m.nav.ActiveDate()

	month := m.headerTextView(m.loc.MonthName(active.Month), buttonMonth, ClassMonthText, state.MonthSelectorOpen)
	year := m.headerTextView(m.loc.Number(active.Year), buttonYear, ClassYearText, state.YearSelectorOpen)
	title := lipgloss.NewStyle().
		Width(gridWidth - 2*cellWidth).
		Align(lipgloss.Center).
		Render(month + " " + year)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.arrowView("‹", buttonLeft, state),
		title,
		m.arrowView("›", buttonRight, state),
	)
	return m.styles.Compose(ClassHeader).Render(row)
}

// headerLabel is the accessible name of a header control in its current
// state.
func (m Model) headerLabel(button int) string {
	state := m.nav.State()
	labels := m.loc.Labels
	switch button {
	case buttonMonth:
		if state.MonthSelectorOpen {
			return labels.CloseMonthSelector
		}
		return labels.OpenMonthSelector
	case buttonYear:
		if state.YearSelectorOpen {
			return labels.CloseYearSelector
		}
		return labels.OpenYearSelector
	}
	if m.arrowDirection(button) == calendar.DirectionNext {
		return labels.NextMonth
	}
	return labels.PreviousMonth
}
