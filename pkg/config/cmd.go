package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"
	"gopkg.in/yaml.v3"

	"github.com/arjungandhi/datepick/internal/prompt"
	"github.com/arjungandhi/datepick/pkg/locale"
)

// Cmd is the root command for the datepick settings
var Cmd = &Z.Cmd{
	Name:    "config",
	Summary: "manage the datepick settings",
	Commands: []*Z.Cmd{
		help.Cmd,
		initCmd,
		echoCmd,
		pathCmd,
	},
}

// initCmd walks through the settings interactively
var initCmd = &Z.Cmd{
	Name:    "init",
	Summary: "create or update the settings file interactively",
	Commands: []*Z.Cmd{
		help.Cmd,
	},
	Call: func(_ *Z.Cmd, _ ...string) error {
		cfg := New()
		if err := cfg.EnsureDir(); err != nil {
			return fmt.Errorf("failed to create datepick directory: %w", err)
		}
		path := cfg.SettingsPath()

		if _, err := os.Stat(path); err == nil {
			overwrite, err := prompt.Confirm(fmt.Sprintf("Settings already exist at %s. Overwrite them?", path))
			if err != nil || !overwrite {
				fmt.Println("Setup cancelled.")
				return nil
			}
		}

		s, err := runWizard()
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("Setup cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.Save(path); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("✅ Settings saved to", path)
		return nil
	},
}

func runWizard() (*Settings, error) {
	s := DefaultSettings()

	localeOptions := make([]prompt.Option, 0)
	for _, name := range locale.Names() {
		l, err := locale.Lookup(name)
		if err != nil {
			continue
		}
		localeOptions = append(localeOptions, prompt.Option{
			Label:       name,
			Value:       name,
			Description: l.MonthName(1) + " … " + l.MonthName(12),
		})
	}
	loc, err := prompt.Select("Which locale should the calendar use?", localeOptions)
	if err != nil {
		return nil, err
	}
	s.Locale = loc.Value

	mode, err := prompt.Select("What do you usually pick?", []prompt.Option{
		{Label: "A single day", Value: "single"},
		{Label: "Several days", Value: "multi"},
		{Label: "A range of days", Value: "range"},
	})
	if err != nil {
		return nil, err
	}
	s.Mode = mode.Value

	if s.ColorPrimary, err = prompt.Input("Primary color", s.ColorPrimary, prompt.ColorValidator); err != nil {
		return nil, err
	}
	if s.ColorPrimaryLight, err = prompt.Input("Light primary color", s.ColorPrimaryLight, prompt.ColorValidator); err != nil {
		return nil, err
	}

	if s.HighlightWeekends, err = prompt.Confirm("Highlight weekends?"); err != nil {
		return nil, err
	}

	start, err := prompt.Input("First year of the year selector (empty for 100 years back)", "", prompt.YearValidator)
	if err != nil {
		return nil, err
	}
	s.SelectorStartingYear, _ = strconv.Atoi(start)

	holidays, err := prompt.Input("Holidays .ics file (empty for none)", "", prompt.FileValidator)
	if err != nil {
		return nil, err
	}
	if holidays != "" {
		if s.Holidays, err = prompt.ExpandHome(holidays); err != nil {
			return nil, err
		}
		disable, err := prompt.Confirm("Block holidays from being picked?")
		if err != nil {
			return nil, err
		}
		if disable {
			s.HolidayMode = "disable"
		}
	}

	if s.SaveHistory, err = prompt.Confirm("Keep a history of picked dates?"); err != nil {
		return nil, err
	}
	return s, nil
}

// echoCmd prints the effective settings
var echoCmd = &Z.Cmd{
	Name:    "echo",
	Summary: "echo the current settings and environment",
	Commands: []*Z.Cmd{
		help.Cmd,
	},
	Call: func(_ *Z.Cmd, _ ...string) error {
		cfg := New()
		s, err := LoadSettings(cfg.SettingsPath())
		if err != nil {
			return err
		}
		s.ApplyEnvironment(cfg)

		out, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Print(string(out))

		if exports := cfg.GetBashrcExports(); len(exports) > 0 {
			fmt.Println()
			fmt.Println("# environment")
			for _, e := range exports {
				fmt.Println(e)
			}
		}
		return nil
	},
}

// pathCmd prints where datepick keeps its files
var pathCmd = &Z.Cmd{
	Name:    "path",
	Summary: "print the datepick file locations",
	Commands: []*Z.Cmd{
		help.Cmd,
	},
	Call: func(_ *Z.Cmd, _ ...string) error {
		cfg := New()
		fmt.Println("directory:", cfg.Dir)
		fmt.Println("settings: ", cfg.SettingsPath())
		fmt.Println("history:  ", cfg.DBPath())
		fmt.Println("log:      ", cfg.LogPath())
		return nil
	},
}
