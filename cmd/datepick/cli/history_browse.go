package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"

	"github.com/arjungandhi/datepick/internal/convert"
	"github.com/arjungandhi/datepick/internal/dbutil"
	"github.com/arjungandhi/datepick/pkg/database"
)

const (
	columnKeyID      = "id"
	columnKeyPicked  = "picked"
	columnKeyKind    = "kind"
	columnKeyValue   = "value"
	columnKeyDates   = "dates"
	columnKeyPick    = "pick_data"
	historyPageSize  = 15
	historyMaxDates  = 50
	historyMinLayout = 12
)

var HistoryBrowse = &Z.Cmd{
	Name:     "browse",
	Aliases:  []string{"b"},
	Summary:  "browse the history; enter prints a pick, d deletes it",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		var picks []database.Pick
		err := dbutil.WithDatabase(func(db *database.DB) error {
			var err error
			picks, err = db.GetPicks(0)
			return err
		})
		if err != nil {
			return err
		}
		if len(picks) == 0 {
			fmt.Println("No picks found.")
			return nil
		}

		p := tea.NewProgram(newHistoryModel(picks), tea.WithAltScreen(), tea.WithOutput(os.Stderr))
		final, err := p.StartReturningModel()
		if err != nil {
			return err
		}
		if m, ok := final.(HistoryModel); ok && m.chosen != nil {
			fmt.Println(m.chosen.Value)
		}
		return nil
	},
}

// HistoryModel is the interactive history browser
type HistoryModel struct {
	table   table.Model
	picks   []database.Pick
	chosen  *database.Pick
	message string
	width   int
}

func newHistoryModel(picks []database.Pick) HistoryModel {
	m := HistoryModel{
		picks:   picks,
		message: fmt.Sprintf("%d picks. j/k to move, enter to print, d to delete, q to quit.", len(picks)),
	}
	m.table = m.buildTable(historyPageSize)
	return m
}

func pickToRow(p database.Pick) table.Row {
	cols := convert.ToDisplayRow(p)
	kindColor := "#8c8"
	switch p.Kind {
	case "multi":
		kindColor = "#00d7ff"
	case "range":
		kindColor = "#e67e22"
	}
	return table.NewRow(table.RowData{
		columnKeyID:     cols[0],
		columnKeyPicked: cols[1],
		columnKeyKind:   table.NewStyledCell(cols[2], lipgloss.NewStyle().Foreground(lipgloss.Color(kindColor))),
		columnKeyValue:  cols[3],
		columnKeyDates:  cols[4],
		columnKeyPick:   p,
	})
}

func (m HistoryModel) buildTable(pageSize int) table.Model {
	valueWidth, datesWidth := 24, 36
	for _, p := range m.picks {
		if n := len(p.Value) + 2; n > valueWidth {
			valueWidth = n
		}
	}
	if valueWidth > 40 {
		valueWidth = 40
	}
	if m.width > 0 {
		// id, picked and kind take 38 columns with borders
		datesWidth = m.width - valueWidth - 38
		if datesWidth < historyMinLayout {
			datesWidth = historyMinLayout
		}
		if datesWidth > historyMaxDates {
			datesWidth = historyMaxDates
		}
	}

	rows := make([]table.Row, len(m.picks))
	for i, p := range m.picks {
		rows[i] = pickToRow(p)
	}

	return table.New([]table.Column{
		table.NewColumn(columnKeyID, "ID", 10),
		table.NewColumn(columnKeyPicked, "Picked", 18),
		table.NewColumn(columnKeyKind, "Kind", 8),
		table.NewColumn(columnKeyValue, "Value", valueWidth),
		table.NewColumn(columnKeyDates, "Dates", datesWidth),
	}).WithRows(rows).
		BorderRounded().
		WithPageSize(pageSize).
		Focused(true).
		WithBaseStyle(lipgloss.NewStyle().
			BorderForeground(lipgloss.Color("#0eca2d")).
			Align(lipgloss.Left)).
		WithRowStyleFunc(func(input table.RowStyleFuncInput) lipgloss.Style {
			if input.IsHighlighted {
				return lipgloss.NewStyle().Background(lipgloss.Color("#555"))
			}
			return lipgloss.NewStyle()
		})
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		pageSize := msg.Height - 10
		if pageSize < 5 {
			pageSize = 5
		}
		index := m.table.GetHighlightedRowIndex()
		m.table = m.buildTable(pageSize).WithHighlightedRow(index)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if p, ok := m.highlighted(); ok {
				m.chosen = &p
				return m, tea.Quit
			}
			return m, nil
		case "d":
			return m.deleteHighlighted(), nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) highlighted() (database.Pick, bool) {
	if len(m.picks) == 0 {
		return database.Pick{}, false
	}
	p, ok := m.table.HighlightedRow().Data[columnKeyPick].(database.Pick)
	return p, ok
}

func (m HistoryModel) deleteHighlighted() HistoryModel {
	p, ok := m.highlighted()
	if !ok {
		return m
	}

	err := dbutil.WithDatabase(func(db *database.DB) error {
		return db.DeletePick(p.ID)
	})
	if err != nil {
		m.message = fmt.Sprintf("Failed to delete %s: %v", convert.ShortID(p.ID), err)
		return m
	}

	m.picks = removePick(m.picks, p.ID)
	index := m.table.GetHighlightedRowIndex()
	if index >= len(m.picks) {
		index = len(m.picks) - 1
	}
	if index < 0 {
		index = 0
	}
	rows := make([]table.Row, len(m.picks))
	for i, pick := range m.picks {
		rows[i] = pickToRow(pick)
	}
	m.table = m.table.WithRows(rows).WithHighlightedRow(index)
	m.message = fmt.Sprintf("Deleted %s (%s). %d picks left.", convert.ShortID(p.ID), p.Value, len(m.picks))
	return m
}

func removePick(picks []database.Pick, id string) []database.Pick {
	out := make([]database.Pick, 0, len(picks))
	for _, p := range picks {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func (m HistoryModel) View() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0eca2d")).
		Bold(true).
		Render("Pick History")

	content := m.table.View()
	if len(m.picks) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8c8")).
			Render("History is empty.")
	}

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff0")).
		Render(m.message)

	return lipgloss.NewStyle().Margin(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", status),
	)
}
