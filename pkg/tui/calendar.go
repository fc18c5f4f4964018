// Package tui is a terminal date picker built on bubbletea. A Model shows
// one month at a time, lets the user move between months with a slide,
// jump through month and year selectors, and pick a single day, several
// days or a range.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/locale"
)

// StepMonthMsg starts a month transition, like Controller().StepMonth.
type StepMonthMsg struct {
	Direction calendar.Direction
}

// SelectMonthMsg jumps to a month (1-12) of the displayed year.
type SelectMonthMsg struct {
	Month int
}

// SelectYearMsg jumps to a year keeping the displayed month.
type SelectYearMsg struct {
	Year int
}

// SetValueMsg replaces the selection. Controlled hosts send it in answer
// to OnChange.
type SetValueMsg struct {
	Value calendar.Value
}

type slideFrameMsg struct {
	gen   int
	frame int
}

type region int

const (
	regionNone region = iota
	regionHeader
	regionDays
)

type slide struct {
	gen       int
	frame     int
	active    bool
	direction calendar.Direction
}

// Model is the calendar component.
type Model struct {
	opts     Options
	loc      *locale.Locale
	nav      *calendar.Navigator
	selector calendar.Selector
	kind     calendar.Kind
	log      *logrus.Entry

	root   *Element
	focus  *FocusOutline
	styles StyleSheet
	keys   keyMap
	help   help.Model

	region      region
	button      int
	cursorDay   int
	monthCursor int
	years       yearSelector

	slide         slide
	slideDuration time.Duration
	status        string

	customClasses map[calendar.Date][]string
}

// New builds a calendar and mounts its focus outline handling.
func New(opts Options) Model {
	opts = opts.withDefaults()
	loc := opts.resolveLocale()
	now := opts.Now

	value := opts.Value
	if value == nil {
		value = calendar.EmptyValue(opts.Kind)
	}

	m := Model{
		opts: opts,
		loc:  loc,
		nav: calendar.NewNavigator(value, loc.System, func() calendar.Date {
			return loc.Today(now())
		}, opts.Callbacks),
		selector: calendar.Selector{
			System:   loc.System,
			Bounds:   calendar.Bounds{Minimum: opts.MinimumDate, Maximum: opts.MaximumDate},
			Disabled: opts.DisabledDays,
		},
		kind:          opts.Kind,
		log:           opts.Logger.WithField("component", "calendar"),
		styles:        DefaultStyleSheet(opts.ColorPrimary, opts.ColorPrimaryLight).Merge(opts.StyleSheet),
		keys:          defaultKeyMap(),
		help:          help.New(),
		customClasses: map[calendar.Date][]string{},
	}

	duration, err := ParseSlideDuration(opts.SlideAnimationDuration)
	if err != nil {
		m.log.WithError(err).Warn("using the default slide duration")
		duration, _ = ParseSlideDuration(DefaultSlideAnimationDuration)
	}
	m.slideDuration = duration

	direction := classLTR
	if loc.RTL {
		direction = classRTL
	}
	m.root = NewElement(ClassCalendar)
	m.focus = NewFocusOutline(m.root)
	m.focus.Mount()
	m.root.AddClass(opts.ClassNames.Calendar)
	m.root.AddClass(direction)

	for _, c := range opts.CustomDaysClassName {
		m.customClasses[c.Date] = append(m.customClasses[c.Date], c.ClassName)
	}

	today := m.nav.Today()
	first, last := opts.SelectorStartingYear, opts.SelectorEndingYear
	if first == 0 {
		first = today.Year - yearsBack
	}
	if last == 0 {
		last = today.Year + yearsAhead
	}
	m.years = newYearSelector(first, last, m.selector.Bounds.YearAllowed, loc, m.styles, gridWidth)

	active := m.nav.ActiveDate()
	m.cursorDay = active.Day
	m.monthCursor = active.Month

	m.log.WithFields(logrus.Fields{
		"locale": loc.Name,
		"kind":   m.kind,
		"value":  format.Value(value),
	}).Debug("calendar mounted")
	return m
}

// Unmount releases the key listeners of the root element.
func (m Model) Unmount() {
	m.focus.Unmount()
	m.log.Debug("calendar unmounted")
}

// Controller exposes month navigation to a parent. A transition started
// through it begins sliding on the next message the model receives;
// StepMonthMsg starts it right away. Neither route checks the bounds or
// the quick selectors, which only guard the header and keyboard.
func (m Model) Controller() calendar.Controller {
	return m.nav
}

// Value returns the current selection.
func (m Model) Value() calendar.Value {
	return m.nav.Value()
}

// SetValue replaces the selection without firing OnChange.
func (m *Model) SetValue(v calendar.Value) {
	if v == nil {
		v = calendar.EmptyValue(m.kind)
	}
	m.kind = v.Kind()
	m.nav.SetValue(v)
}

// State is a copy of the navigation state.
func (m Model) State() calendar.ViewState {
	return m.nav.State()
}

// ActiveDate is the date whose month is displayed.
func (m Model) ActiveDate() calendar.Date {
	return m.nav.ActiveDate()
}

// Locale is the resolved locale.
func (m Model) Locale() *locale.Locale {
	return m.loc
}

// Root is the element carrying the root classes.
func (m Model) Root() *Element {
	return m.root
}

// Init mounts the focus outline again so that a model reused by a new
// program keeps exactly one key listener.
func (m Model) Init() tea.Cmd {
	if !m.focus.mounted {
		m.focus.Mount()
	}
	return nil
}

// Update handles the message, then starts the slide of any transition
// requested through the Controller since the last message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	synced, syncCmd := next.(Model).syncSlide()
	switch {
	case syncCmd == nil:
		return synced, cmd
	case cmd == nil:
		return synced, syncCmd
	}
	return synced, tea.Batch(cmd, syncCmd)
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.root.DispatchKeyUp(msg.String())
		return m.handleKey(msg)

	case slideFrameMsg:
		return m.handleSlideFrame(msg)

	case StepMonthMsg:
		if msg.Direction == calendar.DirectionNone {
			return m, nil
		}
		return m.startMonthChange(msg.Direction)

	case SelectMonthMsg:
		m.nav.SelectMonth(msg.Month)
		m.afterJump()
		return m, nil

	case SelectYearMsg:
		m.nav.SelectYear(msg.Year)
		m.afterJump()
		return m, nil

	case SetValueMsg:
		m.SetValue(msg.Value)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	state := m.nav.State()
	switch {
	case state.YearSelectorOpen:
		return m.handleYearSelectorKey(msg)
	case state.MonthSelectorOpen:
		return m.handleMonthSelectorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.stepMonth(calendar.DirectionNext)
	case key.Matches(msg, m.keys.Prev):
		return m.stepMonth(calendar.DirectionPrevious)
	case key.Matches(msg, m.keys.MonthPicker):
		m.toggleMonthSelector()
		return m, nil
	case key.Matches(msg, m.keys.YearPicker):
		m.toggleYearSelector()
		return m, nil
	}

	switch m.region {
	case regionHeader:
		return m.handleHeaderKey(msg)
	case regionDays:
		return m.handleDaysKey(msg)
	}
	return m, nil
}

func (m Model) handleHeaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.button > buttonLeft {
			m.button--
		}
	case key.Matches(msg, m.keys.Right):
		if m.button < buttonRight {
			m.button++
		}
	case key.Matches(msg, m.keys.Down):
		m.region = regionDays
	case key.Matches(msg, m.keys.Select):
		switch m.button {
		case buttonMonth:
			m.toggleMonthSelector()
		case buttonYear:
			m.toggleYearSelector()
		default:
			return m.stepMonth(m.arrowDirection(m.button))
		}
	}
	return m, nil
}

func (m Model) handleDaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Left and right follow the screen, so they swap meaning in
	// right-to-left layouts.
	horizontal := 1
	if m.loc.RTL {
		horizontal = -1
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-horizontal)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(horizontal)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(7)
	case key.Matches(msg, m.keys.Select):
		m.selectDay(m.cursorDate())
	}
	return m, nil
}

func (m Model) handleMonthSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	horizontal := 1
	if m.loc.RTL {
		horizontal = -1
	}

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.MonthPicker):
		m.nav.ToggleMonthSelector()
	case key.Matches(msg, m.keys.YearPicker):
		m.toggleYearSelector()
	case key.Matches(msg, m.keys.Left):
		m.moveMonthCursor(-horizontal)
	case key.Matches(msg, m.keys.Right):
		m.moveMonthCursor(horizontal)
	case key.Matches(msg, m.keys.Up):
		m.moveMonthCursor(-monthColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveMonthCursor(monthColumns)
	case key.Matches(msg, m.keys.Select):
		if m.monthAllowedIn(m.nav.ActiveDate().Year, m.monthCursor) {
			m.nav.SelectMonth(m.monthCursor)
			m.afterJump()
		}
	}
	return m, nil
}

func (m Model) handleYearSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.YearPicker):
		m.nav.ToggleYearSelector()
		return m, nil
	case key.Matches(msg, m.keys.MonthPicker):
		m.toggleMonthSelector()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if year, ok := m.years.selected(); ok {
			m.nav.SelectYear(year)
			m.afterJump()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.years, cmd = m.years.update(msg)
	return m, cmd
}

func (m *Model) cycleFocus(step int) {
	switch {
	case m.region == regionNone && step > 0:
		m.region = regionHeader
	case m.region == regionNone:
		m.region = regionDays
	case m.region == regionHeader:
		m.region = regionDays
	default:
		m.region = regionHeader
	}
	if m.region == regionHeader {
		m.button = buttonMonth
	}
}

func (m *Model) toggleMonthSelector() {
	m.nav.ToggleMonthSelector()
	if m.nav.State().MonthSelectorOpen {
		m.monthCursor = m.nav.ActiveDate().Month
	}
}

func (m *Model) toggleYearSelector() {
	m.nav.ToggleYearSelector()
	if m.nav.State().YearSelectorOpen {
		m.years.focus(m.nav.ActiveDate().Year)
	}
}

// afterJump keeps the cursor valid once the displayed month changed
// without a slide.
func (m *Model) afterJump() {
	m.clampCursor()
	m.log.WithField("active", m.nav.ActiveDate().String()).Debug("displayed month selected")
}

func (m Model) cursorDate() calendar.Date {
	active := m.nav.ActiveDate()
	return calendar.ClampDay(calendar.Date{Year: active.Year, Month: active.Month, Day: m.cursorDay}, m.loc.System)
}

func (m *Model) clampCursor() {
	m.cursorDay = m.cursorDate().Day
}

func (m Model) monthAllowed(direction calendar.Direction) bool {
	return m.selector.Bounds.MonthAllowed(calendar.DateAccordingToMonth(m.nav.ActiveDate(), direction))
}

// moveCursor moves the focused day, changing month when it leaves the
// displayed one.
func (m Model) moveCursor(days int) (tea.Model, tea.Cmd) {
	from := m.cursorDate()
	to := calendar.AddDays(from, days, m.loc.System)
	if calendar.MonthCompare(to, from) == 0 {
		m.cursorDay = to.Day
		return m, nil
	}
	if !m.selector.Bounds.MonthAllowed(to) {
		return m, nil
	}
	m.cursorDay = to.Day
	if calendar.MonthCompare(to, from) > 0 {
		return m.startMonthChange(calendar.DirectionNext)
	}
	return m.startMonthChange(calendar.DirectionPrevious)
}

// stepMonth is an arrow press: it is ignored while a selector is open or
// when the target month is out of bounds.
func (m Model) stepMonth(direction calendar.Direction) (tea.Model, tea.Cmd) {
	if direction == calendar.DirectionNone || m.nav.State().QuickSelectorOpen() {
		return m, nil
	}
	if !m.monthAllowed(direction) {
		return m, nil
	}
	return m.startMonthChange(direction)
}

func (m Model) startMonthChange(direction calendar.Direction) (tea.Model, tea.Cmd) {
	m.nav.StartMonthChange(direction)
	return m.beginSlide()
}

// syncSlide starts the slide for a transition requested through the
// Controller.
func (m Model) syncSlide() (tea.Model, tea.Cmd) {
	if m.nav.State().Transitioning() && !m.slide.active {
		return m.beginSlide()
	}
	return m, nil
}

// beginSlide (re)starts the slide for the pending direction. A slide that
// is already running is abandoned: its frames carry an older generation
// and are dropped, so the latest direction is the one applied.
func (m Model) beginSlide() (tea.Model, tea.Cmd) {
	m.slide = slide{
		gen:       m.slide.gen + 1,
		active:    true,
		direction: m.nav.State().MonthChangeDirection,
	}
	m.log.WithField("direction", m.slide.direction).Debug("month change started")

	if m.slideDuration <= 0 {
		m.finishSlide()
		return m, nil
	}
	return m, m.frameTick(m.slide.gen, 1)
}

func (m Model) frameTick(gen, frame int) tea.Cmd {
	return tea.Tick(m.slideDuration/slideFrames, func(time.Time) tea.Msg {
		return slideFrameMsg{gen: gen, frame: frame}
	})
}

func (m Model) handleSlideFrame(msg slideFrameMsg) (tea.Model, tea.Cmd) {
	if !m.slide.active || msg.gen != m.slide.gen {
		return m, nil
	}
	m.slide.frame = msg.frame
	if msg.frame >= slideFrames {
		m.finishSlide()
		return m, nil
	}
	return m, m.frameTick(msg.gen, msg.frame+1)
}

func (m *Model) finishSlide() {
	m.slide.active = false
	m.slide.frame = 0
	m.nav.CompleteMonthChange()
	m.clampCursor()
	m.log.WithField("active", m.nav.ActiveDate().String()).Debug("month change completed")
}

// selectDay applies a picked day to the value. Disabled days report
// through OnDisabledDayError and leave the value alone.
func (m *Model) selectDay(d calendar.Date) {
	next, err := m.selector.Select(m.nav.Value(), m.kind, d)
	if err != nil {
		var disabled *calendar.DisabledDayError
		if errors.As(err, &disabled) {
			m.status = fmt.Sprintf("%s is not available", format.DateForDisplay(disabled.Date, m.loc))
			m.log.WithField("date", disabled.Date.String()).Debug("disabled day picked")
			if m.opts.OnDisabledDayError != nil {
				m.opts.OnDisabledDayError(disabled.Date)
			}
		}
		return
	}

	m.status = ""
	m.log.WithField("value", format.Value(next)).Debug("selection changed")
	if m.opts.OnChange != nil {
		m.opts.OnChange(next)
	}
	if !m.opts.Controlled {
		m.nav.SetValue(next)
	}
}

func (m Model) View() string {
	state := m.nav.State()

	var body string
	switch {
	case state.YearSelectorOpen:
		body = m.years.view()
	case state.MonthSelectorOpen:
		body = m.monthSelectorView()
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, m.weekDaysView(), m.daysView())
	}

	sections := []string{m.headerView(), body}
	if m.opts.RenderFooter != nil {
		if footer := m.opts.RenderFooter(); footer != "" {
			sections = append(sections, m.styles.Compose(ClassFooter).Copy().Width(gridWidth).Render(footer))
		}
	}
	box := m.styles.Compose(m.root.Classes()...).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	out := []string{box}
	switch {
	case m.status != "":
		out = append(out, m.styles.Compose(ClassStatus).Render(m.status))
	case m.region == regionHeader && m.focus.Visible():
		out = append(out, m.styles.Compose(ClassFooter).Render(m.headerLabel(m.button)))
	}
	out = append(out, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
