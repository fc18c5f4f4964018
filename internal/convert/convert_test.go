package convert

import (
	"testing"
	"time"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/database"
	"github.com/arjungandhi/datepick/pkg/locale"
)

func TestToPickFields(t *testing.T) {
	from := calendar.NewDate(1403, 1, 1)
	to := calendar.NewDate(1403, 1, 5)

	kind, value, loc := ToPickFields(calendar.Range{From: &from, To: &to}, locale.Persian())

	if kind != "range" {
		t.Errorf("Expected kind 'range', got '%s'", kind)
	}
	if value != "1403-01-01..1403-01-05" {
		t.Errorf("Expected value '1403-01-01..1403-01-05', got '%s'", value)
	}
	if loc != "fa" {
		t.Errorf("Expected locale 'fa', got '%s'", loc)
	}
}

func TestFromPick(t *testing.T) {
	tests := []struct {
		name    string
		pick    database.Pick
		want    calendar.Value
		wantErr bool
	}{
		{
			name: "single",
			pick: database.Pick{ID: "p1", Kind: "single", Value: "2024-03-05"},
			want: calendar.Single{Date: calendar.NewDate(2024, 3, 5).Ptr()},
		},
		{
			name: "multi",
			pick: database.Pick{ID: "p2", Kind: "multi", Value: "2024-03-05,2024-03-07"},
			want: calendar.Multi{Dates: []calendar.Date{calendar.NewDate(2024, 3, 5), calendar.NewDate(2024, 3, 7)}},
		},
		{
			name: "open range",
			pick: database.Pick{ID: "p3", Kind: "range", Value: "2024-03-05.."},
			want: calendar.Range{From: calendar.NewDate(2024, 3, 5).Ptr()},
		},
		{
			name:    "unknown kind",
			pick:    database.Pick{ID: "p4", Kind: "weekly", Value: "2024-03-05"},
			wantErr: true,
		},
		{
			name:    "broken value",
			pick:    database.Pick{ID: "p5", Kind: "single", Value: "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPick(tt.pick)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if calendar.KindOf(got) != calendar.KindOf(tt.want) {
				t.Fatalf("Expected kind %s, got %s", calendar.KindOf(tt.want), calendar.KindOf(got))
			}
			switch want := tt.want.(type) {
			case calendar.Single:
				if !calendar.IsSameDay(got.(calendar.Single).Date, want.Date) {
					t.Errorf("Expected %v, got %v", want.Date, got.(calendar.Single).Date)
				}
			case calendar.Multi:
				gotDates := got.(calendar.Multi).Dates
				if len(gotDates) != len(want.Dates) {
					t.Fatalf("Expected %d dates, got %d", len(want.Dates), len(gotDates))
				}
				for i := range want.Dates {
					if gotDates[i] != want.Dates[i] {
						t.Errorf("Expected %s at %d, got %s", want.Dates[i], i, gotDates[i])
					}
				}
			case calendar.Range:
				r := got.(calendar.Range)
				if !calendar.IsSameDay(r.From, want.From) || !calendar.IsSameDay(r.To, want.To) {
					t.Errorf("Expected %v..%v, got %v..%v", want.From, want.To, r.From, r.To)
				}
			}
		})
	}
}

func TestPickLocale(t *testing.T) {
	if got := PickLocale(database.Pick{Locale: "fa"}); got.Name != "fa" {
		t.Errorf("Expected locale 'fa', got '%s'", got.Name)
	}
	if got := PickLocale(database.Pick{Locale: "xx"}); got.Name != "en" {
		t.Errorf("Expected fallback locale 'en', got '%s'", got.Name)
	}
}

func TestToDisplayRow(t *testing.T) {
	p := database.Pick{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		Kind:      "single",
		Value:     "2024-03-05",
		Locale:    "en",
		CreatedAt: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
	}

	row := ToDisplayRow(p)

	if len(row) != 5 {
		t.Fatalf("Expected 5 columns, got %d", len(row))
	}
	if row[0] != "0f8fad5b" {
		t.Errorf("Expected short id '0f8fad5b', got '%s'", row[0])
	}
	if row[3] != "2024-03-05" {
		t.Errorf("Expected raw value '2024-03-05', got '%s'", row[3])
	}
	if row[4] != "March 5, 2024" {
		t.Errorf("Expected display value 'March 5, 2024', got '%s'", row[4])
	}
}
