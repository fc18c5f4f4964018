package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Table collects rows and prints them aligned under a header row
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
	config  Config
}

// Config holds table configuration options
type Config struct {
	// Title shown above the table
	Title string
	// ShowHeaders whether to display column headers
	ShowHeaders bool
	// BoldHeaders whether to make headers bold
	BoldHeaders bool
	// SeparatorChar character used for the line under the title
	SeparatorChar string
	// MaxColumnWidth maximum display width of a cell (0 = no limit)
	MaxColumnWidth int
	// MinColumnWidth minimum width for each column
	MinColumnWidth int
	// UseTabwriter aligns with text/tabwriter. Cells holding wide or
	// right-to-left text line up better with the fixed width renderer.
	UseTabwriter bool
	// Padding is the number of spaces between columns
	Padding int
	// Writer defaults to os.Stdout
	Writer io.Writer
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		ShowHeaders:    true,
		SeparatorChar:  "─",
		MaxColumnWidth: 50,
		UseTabwriter:   true,
		Padding:        1,
	}
}

// New creates a new table with the given headers and default config
func New(headers ...string) *Table {
	return NewWithConfig(DefaultConfig(), headers...)
}

// NewWithConfig creates a new table with custom configuration
func NewWithConfig(config Config, headers ...string) *Table {
	w := config.Writer
	if w == nil {
		w = os.Stdout
	}
	if config.Padding <= 0 {
		config.Padding = 1
	}
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		writer:  w,
		config:  config,
	}
}

// AddRow adds a row to the table. Missing columns are left blank and
// extra ones dropped.
func (t *Table) AddRow(columns ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, columns)
	t.rows = append(t.rows, row)
	return t
}

// Len is the number of rows added so far
func (t *Table) Len() int {
	return len(t.rows)
}

// truncateString cuts s to maxWidth terminal columns, adding "..." if
// truncated
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

func (t *Table) header(text string) string {
	if t.config.BoldHeaders {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Render prints the table to the configured writer
func (t *Table) Render() error {
	if len(t.headers) == 0 {
		return fmt.Errorf("no headers defined")
	}
	if t.config.UseTabwriter {
		return t.renderWithTabwriter()
	}
	return t.renderWithFixedWidth()
}

func (t *Table) renderTitle(width int) {
	if t.config.Title == "" {
		return
	}
	if tw := runewidth.StringWidth(t.config.Title); tw > width {
		width = tw
	}
	fmt.Fprintf(t.writer, "%s\n", t.config.Title)
	fmt.Fprintf(t.writer, "%s\n", strings.Repeat(t.config.SeparatorChar, width))
}

// renderWithTabwriter renders using text/tabwriter for alignment
func (t *Table) renderWithTabwriter() error {
	t.renderTitle(50)

	w := tabwriter.NewWriter(t.writer, t.config.MinColumnWidth, 8, t.config.Padding, ' ', 0)

	if t.config.ShowHeaders {
		headerRow := make([]string, len(t.headers))
		for i, h := range t.headers {
			headerRow[i] = t.header(truncateString(h, t.config.MaxColumnWidth))
		}
		fmt.Fprintf(w, "%s\n", strings.Join(headerRow, "\t"))
	}

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = truncateString(cell, t.config.MaxColumnWidth)
		}
		fmt.Fprintf(w, "%s\n", strings.Join(cells, "\t"))
	}

	return w.Flush()
}

// renderWithFixedWidth pads every cell to its column's display width
func (t *Table) renderWithFixedWidth() error {
	widths := t.columnWidths()

	total := 0
	for _, w := range widths {
		total += w + t.config.Padding
	}
	t.renderTitle(total - t.config.Padding)

	gap := strings.Repeat(" ", t.config.Padding)

	if t.config.ShowHeaders {
		cells := make([]string, len(t.headers))
		for i, h := range t.headers {
			// pad before styling so escape codes don't count as width
			cells[i] = t.header(runewidth.FillRight(truncateString(h, widths[i]), widths[i]))
		}
		fmt.Fprintln(t.writer, strings.TrimRight(strings.Join(cells, gap), " "))
	}

	for _, row := range t.rows {
		cells := make([]string, len(widths))
		for i := range widths {
			cells[i] = runewidth.FillRight(truncateString(row[i], widths[i]), widths[i])
		}
		fmt.Fprintln(t.writer, strings.TrimRight(strings.Join(cells, gap), " "))
	}

	return nil
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	measure := func(i int, s string) {
		if w := runewidth.StringWidth(truncateString(s, t.config.MaxColumnWidth)); w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range t.headers {
		measure(i, h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			measure(i, cell)
		}
	}
	for i := range widths {
		if widths[i] < t.config.MinColumnWidth {
			widths[i] = t.config.MinColumnWidth
		}
	}
	return widths
}
