package calendar

// Direction is the pending month transition.
type Direction string

const (
	DirectionNone     Direction = ""
	DirectionNext     Direction = "NEXT"
	DirectionPrevious Direction = "PREVIOUS"
)

// ViewState is the transient UI state of one calendar instance. It is only
// changed through the Navigator's transition methods.
type ViewState struct {
	// ActiveDate is set once the user has navigated; until then the active
	// date is derived from the value on every render.
	ActiveDate *Date

	// MonthChangeDirection is set while a slide transition is in flight.
	MonthChangeDirection Direction

	MonthSelectorOpen bool
	YearSelectorOpen  bool
}

// Transitioning reports whether a month change awaits completion.
func (s ViewState) Transitioning() bool {
	return s.MonthChangeDirection != DirectionNone
}

// QuickSelectorOpen reports whether either selector overlay is open.
func (s ViewState) QuickSelectorOpen() bool {
	return s.MonthSelectorOpen || s.YearSelectorOpen
}
