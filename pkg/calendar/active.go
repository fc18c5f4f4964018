package calendar

// ResolveActiveDate picks the date whose month should be displayed for a
// value: the first of a multi selection, the single date, or the start of a
// range. Anything else falls back to today.
func ResolveActiveDate(value Value, today Date) Date {
	switch v := value.(type) {
	case Multi:
		if len(v.Dates) > 0 {
			return v.Dates[0]
		}
	case Single:
		if v.Date != nil {
			return *v.Date
		}
	case Range:
		if v.From != nil {
			return *v.From
		}
	}
	return today
}
