package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes     []Value
	active      []Date
	starts      []MonthChange
	ends        []Date
	disabledDay []Date
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChange:                   func(v Value) { r.changes = append(r.changes, v) },
		OnChangeActiveDate:         func(d Date) { r.active = append(r.active, d) },
		OnDisplayedDateChangeStart: func(c MonthChange) { r.starts = append(r.starts, c) },
		OnDisplayedDateChangeEnd:   func(d Date) { r.ends = append(r.ends, d) },
		OnDisabledDayError:         func(d Date) { r.disabledDay = append(r.disabledDay, d) },
	}
}

func newTestNavigator(value Value, rec *recorder) *Navigator {
	today := func() Date { return NewDate(2024, 6, 15) }
	return NewNavigator(value, gregorian{}, today, rec.callbacks())
}

func TestNavigatorInitialState(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2024, 3, 5).Ptr()}, rec)

	state := nav.State()
	assert.Nil(t, state.ActiveDate)
	assert.False(t, state.Transitioning())
	assert.False(t, state.QuickSelectorOpen())
	assert.Equal(t, NewDate(2024, 3, 5), nav.ActiveDate())
	assert.Equal(t, NewDate(2024, 6, 15), nav.Today())
}

func TestNavigatorMonthChange(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2024, 3, 17).Ptr()}, rec)

	nav.StartMonthChange(DirectionNext)

	require.Len(t, rec.starts, 1)
	assert.Equal(t, MonthChange{
		Direction:   DirectionNext,
		CurrentDate: NewDate(2024, 3, 17),
		NextDate:    NewDate(2024, 4, 1),
	}, rec.starts[0])
	assert.True(t, nav.State().Transitioning())
	assert.Equal(t, NewDate(2024, 3, 17), nav.ActiveDate(), "active date moves only on completion")
	assert.Empty(t, rec.ends)

	nav.CompleteMonthChange()

	assert.Equal(t, NewDate(2024, 4, 1), nav.ActiveDate())
	assert.False(t, nav.State().Transitioning())
	assert.Equal(t, []Date{NewDate(2024, 4, 1)}, rec.ends)
	assert.Empty(t, rec.active, "slides do not report an active date change")
}

func TestNavigatorPreviousMonthAcrossYear(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2024, 1, 20).Ptr()}, rec)

	nav.StepMonth(DirectionPrevious)
	nav.CompleteMonthChange()

	assert.Equal(t, NewDate(2023, 12, 1), nav.ActiveDate())
}

func TestNavigatorCompleteWithoutDirection(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(nil, rec)
	before := nav.State()

	nav.CompleteMonthChange()

	assert.Equal(t, before, nav.State())
	assert.Empty(t, rec.ends)
}

func TestNavigatorSelectMonth(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2024, 2, 10).Ptr()}, rec)
	nav.ToggleMonthSelector()

	nav.SelectMonth(5)

	assert.Equal(t, NewDate(2024, 5, 10), nav.ActiveDate())
	assert.False(t, nav.State().MonthSelectorOpen)
	assert.Equal(t, []Date{NewDate(2024, 5, 10)}, rec.active)
	assert.Equal(t, []Date{NewDate(2024, 5, 10)}, rec.ends)
}

func TestNavigatorSelectMonthClampsDay(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2023, 1, 31).Ptr()}, rec)

	nav.SelectMonth(2)

	assert.Equal(t, NewDate(2023, 2, 28), nav.ActiveDate())
}

func TestNavigatorSelectMonthOutOfRange(t *testing.T) {
	for _, month := range []int{0, 13} {
		rec := &recorder{}
		nav := newTestNavigator(Single{Date: NewDate(2024, 2, 10).Ptr()}, rec)

		nav.SelectMonth(month)

		assert.Equal(t, NewDate(2024, 2, 10), nav.ActiveDate(), "month %d", month)
		assert.Empty(t, rec.active, "month %d", month)
		assert.Empty(t, rec.ends, "month %d", month)
	}
}

func TestNavigatorSelectYear(t *testing.T) {
	rec := &recorder{}
	nav := newTestNavigator(Single{Date: NewDate(2024, 2, 29).Ptr()}, rec)
	nav.ToggleYearSelector()

	nav.SelectYear(2030)

	assert.Equal(t, NewDate(2030, 2, 28), nav.ActiveDate())
	assert.False(t, nav.State().YearSelectorOpen)
	assert.Len(t, rec.active, 1)
	assert.Equal(t, NewDate(2030, 2, 28), rec.active[0])
}

func TestNavigatorTogglesAreIndependent(t *testing.T) {
	nav := newTestNavigator(nil, &recorder{})
	before := nav.State()

	nav.ToggleMonthSelector()
	nav.ToggleYearSelector()
	state := nav.State()
	assert.True(t, state.MonthSelectorOpen)
	assert.True(t, state.YearSelectorOpen)

	nav.ToggleMonthSelector()
	nav.ToggleYearSelector()
	assert.Equal(t, before, nav.State())
}

func TestNavigatorStateIsACopy(t *testing.T) {
	nav := newTestNavigator(nil, &recorder{})
	nav.SelectMonth(3)

	state := nav.State()
	state.ActiveDate.Day = 27

	assert.Equal(t, 15, nav.ActiveDate().Day)
}

func TestNavigatorNilCallbacks(t *testing.T) {
	nav := NewNavigator(nil, gregorian{}, func() Date { return NewDate(2024, 6, 15) }, Callbacks{})

	assert.NotPanics(t, func() {
		nav.StepMonth(DirectionNext)
		nav.CompleteMonthChange()
		nav.SelectMonth(1)
		nav.SelectYear(2020)
	})
	assert.Equal(t, NewDate(2020, 1, 1), nav.ActiveDate())
}

func TestNavigatorActiveDateFollowsValueUntilNavigation(t *testing.T) {
	nav := newTestNavigator(Single{}, &recorder{})
	assert.Equal(t, NewDate(2024, 6, 15), nav.ActiveDate())

	nav.SetValue(Single{Date: NewDate(2022, 9, 1).Ptr()})
	assert.Equal(t, NewDate(2022, 9, 1), nav.ActiveDate())

	nav.SelectYear(2021)
	nav.SetValue(Single{Date: NewDate(2025, 1, 1).Ptr()})
	assert.Equal(t, NewDate(2021, 9, 1), nav.ActiveDate())
}
