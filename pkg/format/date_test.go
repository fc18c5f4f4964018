package format

import (
	"testing"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/locale"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    calendar.Date
		wantErr bool
	}{
		{"2024-03-05", calendar.NewDate(2024, 3, 5), false},
		{" 1403-01-01 ", calendar.NewDate(1403, 1, 1), false},
		{"2024-3-5", calendar.NewDate(2024, 3, 5), false},
		{"2024-13-01", calendar.Date{}, true},
		{"2024-02-32", calendar.Date{}, true},
		{"2024/03/05", calendar.Date{}, true},
		{"march", calendar.Date{}, true},
		{"", calendar.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateIn(t *testing.T) {
	en := locale.English()
	fa := locale.Persian()

	if _, err := ParseDateIn("2023-02-29", en); err == nil {
		t.Error("Expected 2023-02-29 to be rejected in the Gregorian calendar")
	}
	if _, err := ParseDateIn("2024-02-29", en); err != nil {
		t.Errorf("Expected 2024-02-29 to be accepted, got %v", err)
	}
	if _, err := ParseDateIn("1403-01-31", fa); err != nil {
		t.Errorf("Expected 1403-01-31 to be accepted in the Persian calendar, got %v", err)
	}
	if _, err := ParseDateIn("1403-07-31", fa); err == nil {
		t.Error("Expected 1403-07-31 to be rejected in the Persian calendar")
	}
}

func TestValueRoundTrip(t *testing.T) {
	a := calendar.NewDate(2024, 3, 5)
	b := calendar.NewDate(2024, 3, 9)

	tests := []struct {
		name  string
		value calendar.Value
		text  string
	}{
		{"empty single", calendar.Single{}, ""},
		{"single", calendar.Single{Date: &a}, "2024-03-05"},
		{"empty multi", calendar.Multi{}, ""},
		{"multi", calendar.Multi{Dates: []calendar.Date{b, a}}, "2024-03-09,2024-03-05"},
		{"empty range", calendar.Range{}, ".."},
		{"open range", calendar.Range{From: &a}, "2024-03-05.."},
		{"range", calendar.Range{From: &a, To: &b}, "2024-03-05..2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Value(tt.value)
			if text != tt.text {
				t.Fatalf("Value() = %q, expected %q", text, tt.text)
			}
			back, err := ParseValue(tt.value.Kind(), text)
			if err != nil {
				t.Fatalf("ParseValue(%q) unexpected error: %v", text, err)
			}
			if Value(back) != text {
				t.Errorf("ParseValue(%q) rendered back as %q", text, Value(back))
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	if _, err := ParseValue(calendar.KindRange, "2024-03-05"); err == nil {
		t.Error("Expected a range without separator to fail")
	}
	if _, err := ParseValue(calendar.KindMulti, "2024-03-05,soon"); err == nil {
		t.Error("Expected a bad multi member to fail")
	}
	if _, err := ParseValue("weekly", "2024-03-05"); err == nil {
		t.Error("Expected an unknown kind to fail")
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]calendar.Kind{
		"":       calendar.KindSingle,
		"single": calendar.KindSingle,
		"Multi":  calendar.KindMulti,
		"range ": calendar.KindRange,
	}
	for input, want := range tests {
		got, err := ParseKind(input)
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, expected %s", input, got, want)
		}
	}
	if _, err := ParseKind("week"); err == nil {
		t.Error("Expected ParseKind(\"week\") to fail")
	}
}

func TestDateRange(t *testing.T) {
	en := locale.English()

	// No bounds
	minDate, maxDate, err := DateRange([]string{}, en)
	if err != nil || minDate != nil || maxDate != nil {
		t.Errorf("Expected open bounds, got %v %v %v", minDate, maxDate, err)
	}

	// Explicit bounds
	args := []string{"--min", "2023-01-15", "--max", "2023-01-31"}
	minDate, maxDate, err = DateRange(args, en)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if minDate.String() != "2023-01-15" {
		t.Errorf("Expected min date '2023-01-15', got '%s'", minDate)
	}
	if maxDate.String() != "2023-01-31" {
		t.Errorf("Expected max date '2023-01-31', got '%s'", maxDate)
	}

	// Month flag
	args = []string{"--month", "2023-02"}
	minDate, maxDate, err = DateRange(args, en)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if minDate.String() != "2023-02-01" {
		t.Errorf("Expected min date '2023-02-01', got '%s'", minDate)
	}
	if maxDate.String() != "2023-02-28" {
		t.Errorf("Expected max date '2023-02-28', got '%s'", maxDate)
	}

	// Short month flag in the Persian calendar
	args = []string{"-m", "1403-07"}
	_, maxDate, err = DateRange(args, locale.Persian())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if maxDate.String() != "1403-07-30" {
		t.Errorf("Expected max date '1403-07-30', got '%s'", maxDate)
	}

	// Inverted bounds
	args = []string{"--min", "2023-02-01", "--max", "2023-01-01"}
	if _, _, err = DateRange(args, en); err == nil {
		t.Error("Expected an error when max is before min")
	}

	// Bad date
	args = []string{"--min", "tomorrow"}
	if _, _, err = DateRange(args, en); err == nil {
		t.Error("Expected an error for an invalid date")
	}
}

func TestDateForDisplay(t *testing.T) {
	tests := []struct {
		name string
		date calendar.Date
		loc  *locale.Locale
		want string
	}{
		{"english", calendar.NewDate(2024, 3, 5), locale.English(), "March 5, 2024"},
		{"russian", calendar.NewDate(2024, 1, 9), locale.Russian(), "Январь 9, 2024"},
		{"persian", calendar.NewDate(1403, 1, 1), locale.Persian(), "۱ فروردین ۱۴۰۳"},
		{"zero", calendar.Date{}, locale.English(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateForDisplay(tt.date, tt.loc); got != tt.want {
				t.Errorf("DateForDisplay() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestValueForDisplay(t *testing.T) {
	en := locale.English()
	a := calendar.NewDate(2024, 3, 5)
	b := calendar.NewDate(2024, 3, 9)

	tests := []struct {
		name  string
		value calendar.Value
		want  string
	}{
		{"nil", nil, "Select..."},
		{"empty", calendar.Single{}, "Select..."},
		{"single", calendar.Single{Date: &a}, "March 5, 2024"},
		{"multi", calendar.Multi{Dates: []calendar.Date{a, b}}, "March 5, 2024; March 9, 2024"},
		{"open range", calendar.Range{From: &a}, "from March 5, 2024"},
		{"range", calendar.Range{From: &a, To: &b}, "from March 5, 2024 to March 9, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueForDisplay(tt.value, en); got != tt.want {
				t.Errorf("ValueForDisplay() = %q, expected %q", got, tt.want)
			}
		})
	}
}
