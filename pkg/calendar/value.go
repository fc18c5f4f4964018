package calendar

// Kind identifies which selection mode a Value belongs to.
type Kind string

const (
	KindSingle Kind = "single"
	KindMulti  Kind = "multi"
	KindRange  Kind = "range"
)

// Value is the externally supplied selection. It is one of Single, Multi or
// Range; a nil Value means nothing has been selected yet.
type Value interface {
	Kind() Kind
	isValue()
}

// Single holds at most one selected date.
type Single struct {
	Date *Date
}

// Multi holds an ordered list of selected dates.
type Multi struct {
	Dates []Date
}

// Range holds an optionally open-ended span of days.
type Range struct {
	From *Date
	To   *Date
}

func (Single) Kind() Kind { return KindSingle }
func (Multi) Kind() Kind  { return KindMulti }
func (Range) Kind() Kind  { return KindRange }

func (Single) isValue() {}
func (Multi) isValue()  {}
func (Range) isValue()  {}

// KindOf returns the kind of v, defaulting to KindSingle for nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindSingle
	}
	return v.Kind()
}

// EmptyValue returns the zero selection for a kind.
func EmptyValue(kind Kind) Value {
	switch kind {
	case KindMulti:
		return Multi{}
	case KindRange:
		return Range{}
	default:
		return Single{}
	}
}

// IsEmpty reports whether v selects no day at all.
func IsEmpty(v Value) bool {
	switch val := v.(type) {
	case Single:
		return val.Date == nil
	case Multi:
		return len(val.Dates) == 0
	case Range:
		return val.From == nil && val.To == nil
	}
	return true
}

// Contains reports whether d is one of the selected days of v. For a range
// both ends and every day between them count.
func Contains(v Value, d Date) bool {
	switch val := v.(type) {
	case Single:
		return val.Date != nil && *val.Date == d
	case Multi:
		for _, day := range val.Dates {
			if day == d {
				return true
			}
		}
	case Range:
		if IsSameDay(val.From, &d) || IsSameDay(val.To, &d) {
			return true
		}
		if val.From != nil && val.To != nil {
			return IsWithinRange(d, *val.From, *val.To)
		}
	}
	return false
}
