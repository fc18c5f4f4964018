package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveActiveDate(t *testing.T) {
	today := NewDate(2024, 6, 15)
	a := NewDate(2024, 3, 5)
	b := NewDate(2023, 11, 20)

	tests := []struct {
		name  string
		value Value
		want  Date
	}{
		{"nil", nil, today},
		{"empty single", Single{}, today},
		{"single", Single{Date: a.Ptr()}, a},
		{"empty multi", Multi{}, today},
		{"multi takes the first date", Multi{Dates: []Date{b, a}}, b},
		{"empty range", Range{}, today},
		{"range takes the start", Range{From: a.Ptr(), To: NewDate(2024, 3, 9).Ptr()}, a},
		{"range without start", Range{To: b.Ptr()}, today},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveActiveDate(tt.value, today))
		})
	}
}
