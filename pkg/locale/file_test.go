package locale

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const germanYAML = `
name: de
calendar: gregorian
months: [Januar, Februar, März, April, Mai, Juni, Juli, August, September, Oktober, November, Dezember]
weekdays:
  - {name: Sonntag, short: So}
  - {name: Montag, short: Mo}
  - {name: Dienstag, short: Di}
  - {name: Mittwoch, short: Mi}
  - {name: Donnerstag, short: Do}
  - {name: Freitag, short: Fr}
  - {name: Samstag, short: Sa}
week_start: monday
weekend: [sat, sun]
labels:
  next_month: Nächster Monat
  default_placeholder: Auswählen...
`

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(germanYAML))
	require.NoError(t, err)

	assert.Equal(t, "de", l.Name)
	assert.Equal(t, "März", l.MonthName(3))
	assert.Equal(t, time.Monday, l.WeekStart)
	assert.Equal(t, "Mo", l.WeekDays()[0].Short)
	assert.True(t, l.IsWeekend(time.Saturday))
	assert.IsType(t, GregorianSystem{}, l.System)
	assert.False(t, l.RTL)

	assert.Equal(t, "Nächster Monat", l.Labels.NextMonth)
	assert.Equal(t, "Auswählen...", l.Labels.DefaultPlaceholder)
	assert.Equal(t, "Previous Month", l.Labels.PreviousMonth, "missing labels come from English")
	assert.Equal(t, "2024", l.Number(2024))
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"no name":        "months: []",
		"short months":   "name: x\nmonths: [a, b]",
		"bad calendar":   strings.Replace(germanYAML, "gregorian", "julian", 1),
		"bad week start": strings.Replace(germanYAML, "monday", "moonday", 1),
		"bad digits":     germanYAML + "digits: \"0123\"\n",
		"not yaml":       "name: [",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileAndRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.yaml")
	require.NoError(t, os.WriteFile(path, []byte(germanYAML), 0644))

	l, err := LoadFile(path)
	require.NoError(t, err)
	Register(l)

	got, err := Lookup("DE")
	require.NoError(t, err)
	assert.Same(t, l, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
