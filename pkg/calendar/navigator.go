package calendar

// MonthChange is reported when a month transition starts.
type MonthChange struct {
	Direction   Direction
	CurrentDate Date
	NextDate    Date
}

// Callbacks are the host notifications. Any of them may be nil.
type Callbacks struct {
	// OnChange fires when the user commits a new selection.
	OnChange func(Value)
	// OnChangeActiveDate fires when the month or year is picked directly.
	OnChangeActiveDate func(Date)
	// OnDisplayedDateChangeStart fires when a month transition begins.
	OnDisplayedDateChangeStart func(MonthChange)
	// OnDisplayedDateChangeEnd fires once the displayed month has changed.
	OnDisplayedDateChangeEnd func(Date)
	// OnDisabledDayError fires when a disallowed day is chosen.
	OnDisabledDayError func(Date)
}

// Controller is the imperative handle a parent uses to drive navigation.
type Controller interface {
	// StepMonth starts a transition one month forward or back.
	StepMonth(direction Direction)
	// SelectMonth jumps to the given month (1-12) of the active year.
	SelectMonth(month int)
	// SelectYear jumps to the given year keeping the active month.
	SelectYear(year int)
}

// Navigator owns the ViewState of one calendar and implements the month and
// year transitions.
type Navigator struct {
	state     ViewState
	value     Value
	system    System
	today     func() Date
	callbacks Callbacks
}

var _ Controller = (*Navigator)(nil)

// NewNavigator creates a navigator with an empty ViewState. today is asked
// for the current date whenever the active date falls back to it.
func NewNavigator(value Value, system System, today func() Date, callbacks Callbacks) *Navigator {
	return &Navigator{
		value:     value,
		system:    system,
		today:     today,
		callbacks: callbacks,
	}
}

// State returns a copy of the current view state.
func (n *Navigator) State() ViewState {
	s := n.state
	if s.ActiveDate != nil {
		s.ActiveDate = s.ActiveDate.Ptr()
	}
	return s
}

// Value returns the value the navigator resolves against.
func (n *Navigator) Value() Value {
	return n.value
}

// SetValue replaces the value. A stored active date keeps precedence.
func (n *Navigator) SetValue(v Value) {
	n.value = v
}

// Today returns the current date in the navigator's calendar system.
func (n *Navigator) Today() Date {
	return n.today()
}

// System returns the calendar system used for date arithmetic.
func (n *Navigator) System() System {
	return n.system
}

// ActiveDate returns the stored active date, or resolves one from the value.
func (n *Navigator) ActiveDate() Date {
	if n.state.ActiveDate != nil {
		return *n.state.ActiveDate
	}
	return ResolveActiveDate(n.value, n.today())
}

// StartMonthChange records the pending direction and notifies the host. The
// active date only moves when CompleteMonthChange runs.
func (n *Navigator) StartMonthChange(direction Direction) {
	n.state.MonthChangeDirection = direction
	if n.callbacks.OnDisplayedDateChangeStart != nil {
		current := n.ActiveDate()
		n.callbacks.OnDisplayedDateChangeStart(MonthChange{
			Direction:   direction,
			CurrentDate: current,
			NextDate:    DateAccordingToMonth(current, direction),
		})
	}
}

// CompleteMonthChange applies the pending direction once the slide has
// finished. Without a pending direction it does nothing.
func (n *Navigator) CompleteMonthChange() {
	direction := n.state.MonthChangeDirection
	if direction == DirectionNone {
		return
	}
	next := DateAccordingToMonth(n.ActiveDate(), direction)
	n.state.ActiveDate = &next
	n.state.MonthChangeDirection = DirectionNone
	if n.callbacks.OnDisplayedDateChangeEnd != nil {
		n.callbacks.OnDisplayedDateChangeEnd(next)
	}
}

// StepMonth implements Controller.
func (n *Navigator) StepMonth(direction Direction) {
	n.StartMonthChange(direction)
}

// SelectMonth implements Controller. It closes the month selector.
// Months outside 1-12 are ignored.
func (n *Navigator) SelectMonth(month int) {
	if month < 1 || month > 12 {
		return
	}
	next := n.ActiveDate()
	next.Month = month
	n.jump(ClampDay(next, n.system))
	n.state.MonthSelectorOpen = false
}

// SelectYear implements Controller. It closes the year selector.
func (n *Navigator) SelectYear(year int) {
	next := n.ActiveDate()
	next.Year = year
	n.jump(ClampDay(next, n.system))
	n.state.YearSelectorOpen = false
}

func (n *Navigator) jump(next Date) {
	n.state.ActiveDate = &next
	if n.callbacks.OnDisplayedDateChangeEnd != nil {
		n.callbacks.OnDisplayedDateChangeEnd(next)
	}
	if n.callbacks.OnChangeActiveDate != nil {
		n.callbacks.OnChangeActiveDate(next)
	}
}

// ToggleMonthSelector flips the month selector flag only.
func (n *Navigator) ToggleMonthSelector() {
	n.state.MonthSelectorOpen = !n.state.MonthSelectorOpen
}

// ToggleYearSelector flips the year selector flag only.
func (n *Navigator) ToggleYearSelector() {
	n.state.YearSelectorOpen = !n.state.YearSelectorOpen
}
