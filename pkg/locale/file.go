package locale

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// fileLocale is the YAML layout of a custom locale. Weekdays are listed
// Sunday first.
type fileLocale struct {
	Name      string        `yaml:"name"`
	Calendar  string        `yaml:"calendar"`
	RTL       bool          `yaml:"rtl"`
	Months    []string      `yaml:"months"`
	Weekdays  []fileWeekDay `yaml:"weekdays"`
	WeekStart string        `yaml:"week_start"`
	Weekend   []string      `yaml:"weekend"`
	Digits    string        `yaml:"digits"`
	Labels    fileLabels    `yaml:"labels"`
}

type fileWeekDay struct {
	Name  string `yaml:"name"`
	Short string `yaml:"short"`
}

type fileLabels struct {
	NextMonth          string `yaml:"next_month"`
	PreviousMonth      string `yaml:"previous_month"`
	OpenMonthSelector  string `yaml:"open_month_selector"`
	OpenYearSelector   string `yaml:"open_year_selector"`
	CloseMonthSelector string `yaml:"close_month_selector"`
	CloseYearSelector  string `yaml:"close_year_selector"`
	DefaultPlaceholder string `yaml:"default_placeholder"`
	From               string `yaml:"from"`
	To                 string `yaml:"to"`
}

// LoadFile reads a custom locale from a YAML file.
func LoadFile(path string) (*Locale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open locale file: %w", err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode parses a YAML locale definition. Missing labels are taken from
// the English locale.
func Decode(r io.Reader) (*Locale, error) {
	var fl fileLocale
	if err := yaml.NewDecoder(r).Decode(&fl); err != nil {
		return nil, fmt.Errorf("failed to decode locale: %w", err)
	}

	if strings.TrimSpace(fl.Name) == "" {
		return nil, fmt.Errorf("locale name is required")
	}
	if len(fl.Months) != 12 {
		return nil, fmt.Errorf("locale %s: expected 12 months, got %d", fl.Name, len(fl.Months))
	}
	if len(fl.Weekdays) != 7 {
		return nil, fmt.Errorf("locale %s: expected 7 weekdays, got %d", fl.Name, len(fl.Weekdays))
	}

	system, ok := SystemByName(fl.Calendar)
	if !ok {
		return nil, fmt.Errorf("locale %s: unknown calendar %q", fl.Name, fl.Calendar)
	}

	en := English()
	l := &Locale{
		Name:   fl.Name,
		RTL:    fl.RTL,
		System: system,
		Digits: asciiDigits,
		Labels: en.Labels,
	}
	copy(l.Months[:], fl.Months)
	for i, wd := range fl.Weekdays {
		l.Weekdays[i] = WeekDay{Name: wd.Name, Short: wd.Short, Weekday: time.Weekday(i)}
	}

	if fl.WeekStart != "" {
		wd, err := ParseWeekday(fl.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", fl.Name, err)
		}
		l.WeekStart = wd
	}
	for _, name := range fl.Weekend {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", fl.Name, err)
		}
		l.Weekend = append(l.Weekend, wd)
	}

	if fl.Digits != "" {
		if utf8.RuneCountInString(fl.Digits) != 10 {
			return nil, fmt.Errorf("locale %s: digits must list exactly 10 glyphs", fl.Name)
		}
		i := 0
		for _, r := range fl.Digits {
			l.Digits[i] = r
			i++
		}
	}

	mergeLabels(&l.Labels, fl.Labels)
	return l, nil
}

func mergeLabels(dst *Labels, src fileLabels) {
	set := func(field *string, v string) {
		if v != "" {
			*field = v
		}
	}
	set(&dst.NextMonth, src.NextMonth)
	set(&dst.PreviousMonth, src.PreviousMonth)
	set(&dst.OpenMonthSelector, src.OpenMonthSelector)
	set(&dst.OpenYearSelector, src.OpenYearSelector)
	set(&dst.CloseMonthSelector, src.CloseMonthSelector)
	set(&dst.CloseYearSelector, src.CloseYearSelector)
	set(&dst.DefaultPlaceholder, src.DefaultPlaceholder)
	set(&dst.From, src.From)
	set(&dst.To, src.To)
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || name == full[:3] {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
