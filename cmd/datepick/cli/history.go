package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"

	"github.com/arjungandhi/datepick/internal/convert"
	"github.com/arjungandhi/datepick/internal/dbutil"
	"github.com/arjungandhi/datepick/internal/prompt"
	"github.com/arjungandhi/datepick/pkg/database"
	"github.com/arjungandhi/datepick/pkg/format"
	"github.com/arjungandhi/datepick/pkg/table"
)

const defaultHistoryLimit = 20

var History = &Z.Cmd{
	Name:    "history",
	Aliases: []string{"hist", "h"},
	Summary: "list, browse and manage previously picked dates",
	Commands: []*Z.Cmd{
		help.Cmd,
		HistoryList,
		HistoryBrowse,
		HistoryStats,
		HistoryDelete,
		HistoryClear,
	},
	Call: func(cmd *Z.Cmd, args ...string) error {
		if len(args) == 0 {
			return HistoryList.Call(cmd, args...)
		}
		return help.Cmd.Call(cmd, args...)
	},
}

var HistoryList = &Z.Cmd{
	Name:     "list",
	Aliases:  []string{"ls", "l"},
	Summary:  "list recent picks",
	Usage:    "list [--limit N]",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		limit, err := parseLimit(args, defaultHistoryLimit)
		if err != nil {
			return err
		}

		return dbutil.WithDatabase(func(db *database.DB) error {
			picks, err := db.GetPicks(limit)
			if err != nil {
				return err
			}
			if len(picks) == 0 {
				fmt.Println("No picks found.")
				return nil
			}
			return renderPicks(picks)
		})
	},
}

func renderPicks(picks []database.Pick) error {
	config := table.DefaultConfig()
	config.BoldHeaders = true
	// fixed width keeps right-to-left values aligned
	config.UseTabwriter = false
	config.MaxColumnWidth = 60

	t := table.NewWithConfig(config, "ID", "Picked", "Kind", "Value", "Dates")
	for _, p := range picks {
		t.AddRow(convert.ToDisplayRow(p)...)
	}
	return t.Render()
}

var HistoryStats = &Z.Cmd{
	Name:     "stats",
	Summary:  "chart how many picks were made per month",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		return dbutil.WithDatabase(func(db *database.DB) error {
			counts, err := db.PickCountsByMonth()
			if err != nil {
				return err
			}
			if len(counts) == 0 {
				fmt.Println("No picks found.")
				return nil
			}

			fmt.Println(monthlyChart(counts))
			fmt.Println()

			config := table.DefaultConfig()
			t := table.NewWithConfig(config, "Month", "Picks")
			total := 0
			for _, c := range counts {
				t.AddRow(c.Month, format.WithCommas(int64(c.Count)))
				total += c.Count
			}
			if err := t.Render(); err != nil {
				return err
			}
			fmt.Printf("\n%s picks over %d months\n", format.WithCommas(int64(total)), len(counts))
			return nil
		})
	},
}

// monthlyChart plots the pick counts. A single month is padded so the
// chart still has a line to draw.
func monthlyChart(counts []database.MonthCount) string {
	series := make([]float64, 0, len(counts)+1)
	for _, c := range counts {
		series = append(series, float64(c.Count))
	}
	if len(series) == 1 {
		series = append([]float64{0}, series...)
	}

	caption := counts[0].Month
	if len(counts) > 1 {
		caption += " to " + counts[len(counts)-1].Month
	}
	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Caption("picks per month, "+caption),
	)
}

var HistoryDelete = &Z.Cmd{
	Name:     "delete",
	Aliases:  []string{"rm"},
	Summary:  "delete one pick by id or id prefix",
	Usage:    "delete <id>",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: datepick history delete <id>")
		}

		return dbutil.WithDatabase(func(db *database.DB) error {
			picks, err := db.GetPicks(0)
			if err != nil {
				return err
			}
			p, err := findPick(picks, args[0])
			if err != nil {
				return err
			}
			if err := db.DeletePick(p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted pick %s (%s)\n", convert.ShortID(p.ID), p.Value)
			return nil
		})
	},
}

// findPick resolves a full id or an unambiguous id prefix
func findPick(picks []database.Pick, prefix string) (database.Pick, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return database.Pick{}, errors.New("empty pick id")
	}

	var matches []database.Pick
	for _, p := range picks {
		if p.ID == prefix {
			return p, nil
		}
		if strings.HasPrefix(p.ID, prefix) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return database.Pick{}, fmt.Errorf("%w: %s", database.ErrPickNotFound, prefix)
	case 1:
		return matches[0], nil
	}
	return database.Pick{}, fmt.Errorf("pick id %q is ambiguous: %d picks match", prefix, len(matches))
}

var HistoryClear = &Z.Cmd{
	Name:     "clear",
	Summary:  "delete every recorded pick",
	Usage:    "clear [--yes]",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		confirmed := len(args) > 0 && (args[0] == "--yes" || args[0] == "-y")
		if !confirmed {
			ok, err := prompt.Confirm("Delete the whole pick history?")
			if errors.Is(err, prompt.ErrCancelled) || (err == nil && !ok) {
				fmt.Println("Nothing deleted.")
				return nil
			}
			if err != nil {
				return err
			}
		}

		return dbutil.WithDatabase(func(db *database.DB) error {
			n, err := db.ClearPicks()
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d picks.\n", n)
			return nil
		})
	},
}
