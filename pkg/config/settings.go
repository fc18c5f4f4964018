package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClassStyle describes the look of one calendar class.
type ClassStyle struct {
	Foreground string `yaml:"foreground,omitempty" validate:"omitempty,hexcolor"`
	Background string `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
	Bold       bool   `yaml:"bold,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
}

// ClassNames are extra classes put on calendar days, styled through Styles.
type ClassNames struct {
	Calendar     string `yaml:"calendar,omitempty"`
	Today        string `yaml:"today,omitempty"`
	SelectedDay  string `yaml:"selected_day,omitempty"`
	RangeStart   string `yaml:"range_start,omitempty"`
	RangeBetween string `yaml:"range_between,omitempty"`
	RangeEnd     string `yaml:"range_end,omitempty"`
}

// Settings is the YAML settings file of the picker.
type Settings struct {
	// Locale is a built-in locale name or the name of one of LocaleFiles.
	Locale string `yaml:"locale" validate:"required"`

	// LocaleFiles are extra YAML locale definitions to register.
	LocaleFiles []string `yaml:"locale_files,omitempty"`

	// Mode is the default selection kind.
	Mode string `yaml:"mode" validate:"oneof=single multi range"`

	ColorPrimary           string `yaml:"color_primary" validate:"hexcolor"`
	ColorPrimaryLight      string `yaml:"color_primary_light" validate:"hexcolor"`
	SlideAnimationDuration string `yaml:"slide_animation_duration" validate:"duration"`
	HighlightWeekends      bool   `yaml:"highlight_weekends"`

	SelectorStartingYear int `yaml:"selector_starting_year,omitempty" validate:"omitempty,gte=1"`
	SelectorEndingYear   int `yaml:"selector_ending_year,omitempty" validate:"omitempty,gte=1"`

	// Disabled lists day rules: dates, spans, weekday sets or RRULEs.
	Disabled []string `yaml:"disabled,omitempty"`

	// Holidays is an .ics file. HolidayMode "disable" blocks its days,
	// "mark" only tags them with the holiday class.
	Holidays    string `yaml:"holidays,omitempty"`
	HolidayMode string `yaml:"holiday_mode" validate:"oneof=disable mark"`

	ClassNames ClassNames            `yaml:"class_names,omitempty"`
	Styles     map[string]ClassStyle `yaml:"styles,omitempty" validate:"dive"`

	// SaveHistory records every confirmed pick in the history database.
	SaveHistory bool `yaml:"save_history"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultSettings returns an in-memory default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Locale:                 "en",
		Mode:                   "single",
		ColorPrimary:           "#0eca2d",
		ColorPrimaryLight:      "#cff4d5",
		SlideAnimationDuration: "0.4s",
		HighlightWeekends:      true,
		HolidayMode:            "mark",
		Styles:                 map[string]ClassStyle{},
		SaveHistory:            true,
		LogLevel:               "info",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled settings still behave correctly.
func (s *Settings) Normalize() {
	d := DefaultSettings()
	if s.Locale == "" {
		s.Locale = d.Locale
	}
	if s.Mode == "" {
		s.Mode = d.Mode
	}
	if s.ColorPrimary == "" {
		s.ColorPrimary = d.ColorPrimary
	}
	if s.ColorPrimaryLight == "" {
		s.ColorPrimaryLight = d.ColorPrimaryLight
	}
	if s.SlideAnimationDuration == "" {
		s.SlideAnimationDuration = d.SlideAnimationDuration
	}
	if s.HolidayMode == "" {
		s.HolidayMode = d.HolidayMode
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.Styles == nil {
		s.Styles = map[string]ClassStyle{}
	}
}

// LoadSettings loads settings from the given YAML path.
//
// On first run the file does not exist: the defaults are written to path
// and returned. Otherwise the file is read, normalized and validated.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, errors.New("settings path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := DefaultSettings()
			if err := SaveSettings(path, s); err != nil {
				return s, err
			}
			return s, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.Normalize()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings writes s to path atomically with 0600 permissions.
func SaveSettings(path string, s *Settings) error {
	if path == "" {
		return errors.New("settings path is empty")
	}
	if s == nil {
		return errors.New("settings are nil")
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".datepick-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to SaveSettings.
func (s *Settings) Save(path string) error {
	return SaveSettings(path, s)
}

// ApplyEnvironment lets environment variables override the file.
func (s *Settings) ApplyEnvironment(c *Config) {
	if c.Locale != "" {
		s.Locale = c.Locale
	}
	if os.Getenv("DATEPICK_LOG_LEVEL") != "" {
		s.LogLevel = c.LogLevel
	}
}
