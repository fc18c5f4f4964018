package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjungandhi/datepick/pkg/locale"
)

const yearListHeight = 8

type yearItem struct {
	year     int
	label    string
	disabled bool
}

func (i yearItem) FilterValue() string { return i.label }

// yearDelegate draws one year per line with the calendar's classes.
type yearDelegate struct {
	styles  StyleSheet
	current *int
	width   int
}

func (d yearDelegate) Height() int                             { return 1 }
func (d yearDelegate) Spacing() int                            { return 0 }
func (d yearDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d yearDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(yearItem)
	if !ok {
		return
	}
	classes := []string{}
	if it.year == *d.current {
		classes = append(classes, ClassSelected)
	}
	if it.disabled {
		classes = append(classes, ClassDisabled)
	}
	if index == m.Index() {
		classes = append(classes, ClassFocused)
	}
	style := d.styles.Compose(classes...).Copy().Width(d.width).Align(lipgloss.Center)
	fmt.Fprint(w, style.Render(it.label))
}

// yearSelector lists the selectable years around the active one.
type yearSelector struct {
	list    list.Model
	current *int
	first   int
}

func newYearSelector(first, last int, allowed func(int) bool, loc *locale.Locale, styles StyleSheet, width int) yearSelector {
	if last < first {
		first, last = last, first
	}
	items := make([]list.Item, 0, last-first+1)
	for y := first; y <= last; y++ {
		items = append(items, yearItem{year: y, label: loc.Number(y), disabled: !allowed(y)})
	}

	current := new(int)
	l := list.New(items, yearDelegate{styles: styles, current: current, width: width}, width, yearListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return yearSelector{list: l, current: current, first: first}
}

// focus moves the cursor to year, which also becomes the highlighted one.
func (s *yearSelector) focus(year int) {
	*s.current = year
	i := year - s.first
	if i < 0 {
		i = 0
	}
	if n := len(s.list.Items()); i >= n {
		i = n - 1
	}
	s.list.Select(i)
}

// selected returns the year under the cursor and whether it may be chosen.
func (s yearSelector) selected() (int, bool) {
	it, ok := s.list.SelectedItem().(yearItem)
	if !ok {
		return 0, false
	}
	return it.year, !it.disabled
}

func (s yearSelector) update(msg tea.Msg) (yearSelector, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s yearSelector) view() string {
	return s.list.View()
}
