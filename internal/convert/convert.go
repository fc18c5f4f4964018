package convert

import (
	"fmt"

	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/database"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/locale"
)

// ToPickFields converts a selection to the columns of a history record
func ToPickFields(v calendar.Value, loc *locale.Locale) (kind, value, localeName string) {
	return string(calendar.KindOf(v)), format.Value(v), loc.Name
}

// FromPick reads a stored pick back into a selection
func FromPick(p database.Pick) (calendar.Value, error) {
	kind, err := format.ParseKind(p.Kind)
	if err != nil {
		return nil, fmt.Errorf("pick %s: %w", p.ID, err)
	}
	v, err := format.ParseValue(kind, p.Value)
	if err != nil {
		return nil, fmt.Errorf("pick %s: %w", p.ID, err)
	}
	return v, nil
}

// PickLocale returns the locale a pick was made in, or English when it is
// no longer registered
func PickLocale(p database.Pick) *locale.Locale {
	loc, err := locale.Lookup(p.Locale)
	if err != nil {
		return locale.English()
	}
	return loc
}

// ShortID is the id prefix shown in listings
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ToDisplayRow converts a pick to the columns of the history listing:
// id, created, kind, value, and the value as people read it
func ToDisplayRow(p database.Pick) []string {
	display := p.Value
	if v, err := FromPick(p); err == nil {
		display = format.ValueForDisplay(v, PickLocale(p))
	}
	return []string{
		ShortID(p.ID),
		p.CreatedAt.Local().Format("2006-01-02 15:04"),
		p.Kind,
		p.Value,
		display,
	}
}
