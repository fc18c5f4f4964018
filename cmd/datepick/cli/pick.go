package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"
	"github.com/sirupsen/logrus"

	"github.com/arjungandhi/datepick/internal/convert"
	"github.com/arjungandhi/datepick/internal/dbutil"
	"github.com/arjungandhi/datepick/pkg/calendar"
	"github.com/arjungandhi/datepick/pkg/config"
	"github.com/arjungandhi/datepick/pkg/database"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/locale"
	"github.com/arjungandhi/datepick/pkg/logger"
	"github.com/arjungandhi/datepick/pkg/tui"
)

// errPickCancelled is returned when the picker is left with ctrl+c
var errPickCancelled = errors.New("pick cancelled")

var Pick = &Z.Cmd{
	Name:    "pick",
	Aliases: []string{"p"},
	Summary: "pick dates in an interactive calendar and print them",
	Usage: "pick [--mode single|multi|range] [--value VALUE] [--locale NAME]\n" +
		"     [--min YYYY-MM-DD] [--max YYYY-MM-DD] [--month YYYY-MM]\n" +
		"     [--disable RULE]... [--holidays FILE.ics] [--display] [--no-save]",
	Description: `
The calendar is drawn on stderr so that the picked value can be captured
from stdout, e.g. "day=$(datepick pick)". Press q to confirm and ctrl+c to
leave without picking. Values are printed as 2024-03-05, 2024-03-05,2024-03-07
or 2024-03-05..2024-03-09; --display prints them as words instead.

Disable rules are dates, spans (2024-03-05..2024-03-09), "weekend",
"weekday:fri,sat" or recurrence rules such as "FREQ=MONTHLY;BYMONTHDAY=1".`,
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		flags, err := parsePickArgs(args)
		if err != nil {
			return err
		}

		cfg := config.New()
		if err := cfg.EnsureDir(); err != nil {
			return fmt.Errorf("failed to create datepick directory: %w", err)
		}
		settings, err := config.LoadSettings(cfg.SettingsPath())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings.ApplyEnvironment(cfg)

		logs, err := logger.NewFile(cfg.LogPath(), settings.LogLevel)
		if err != nil {
			logs = logger.Discard()
		}
		defer logs.Close()
		log := logs.WithComponent("pick")

		loc := resolvePickLocale(settings, flags, log)
		opts, err := buildOptions(settings, flags, loc, time.Now, log)
		if err != nil {
			return err
		}

		value, err := runPicker(opts, loc, log)
		if errors.Is(err, errPickCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if calendar.IsEmpty(value) {
			log.Info("picker closed without a selection")
			return nil
		}

		if flags.display {
			fmt.Println(format.ValueForDisplay(value, loc))
		} else {
			fmt.Println(format.Value(value))
		}

		if settings.SaveHistory && !flags.noSave {
			err := dbutil.WithDatabase(func(db *database.DB) error {
				kind, text, name := convert.ToPickFields(value, loc)
				p, err := db.SavePick(kind, text, name)
				if err == nil {
					log.WithField("id", p.ID).Info("pick saved")
				}
				return err
			})
			if err != nil {
				log.WithError(err).Warn("failed to save pick")
			}
		}
		return nil
	},
}

// pickResult is shared by the host model and the calendar callbacks
type pickResult struct {
	value calendar.Value
}

// pickModel hosts the calendar and decides when picking is over
type pickModel struct {
	calendar  tui.Model
	result    *pickResult
	loc       *locale.Locale
	done      bool
	cancelled bool
}

func newPickModel(opts tui.Options, loc *locale.Locale, log *logrus.Entry) pickModel {
	result := &pickResult{value: opts.Value}

	onChange := opts.OnChange
	opts.OnChange = func(v calendar.Value) {
		result.value = v
		if onChange != nil {
			onChange(v)
		}
	}
	opts.OnDisabledDayError = func(d calendar.Date) {
		log.WithField("date", d.String()).Info("disabled day picked")
	}
	opts.RenderFooter = func() string {
		return format.ValueForDisplay(result.value, loc)
	}

	return pickModel{
		calendar: tui.New(opts),
		result:   result,
		loc:      loc,
	}
}

func (m pickModel) Init() tea.Cmd {
	return m.calendar.Init()
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "q":
			m.done = true
			return m, tea.Quit
		}
	}

	next, cmd := m.calendar.Update(msg)
	m.calendar = next.(tui.Model)
	return m, cmd
}

func (m pickModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		Render("q: confirm  ctrl+c: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, m.calendar.View(), hint)
}

func runPicker(opts tui.Options, loc *locale.Locale, log *logrus.Entry) (calendar.Value, error) {
	model := newPickModel(opts, loc, log)
	defer model.calendar.Unmount()

	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := p.StartReturningModel()
	if err != nil {
		return nil, err
	}

	m, ok := final.(pickModel)
	if !ok || m.cancelled {
		return nil, errPickCancelled
	}
	return m.result.value, nil
}
