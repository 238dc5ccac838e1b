// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position
}

// Table is a simple selectable table component. Paging across the data
// set is the caller's concern; the table only ever holds one page of
// rows.
type Table struct {
	columns     []Column
	rows        [][]string
	selected    int
	offset      int
	visibleRows int
	focused     bool

	headerStyle   lipgloss.Style
	rowStyle      lipgloss.Style
	rowAltStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	borderStyle   lipgloss.Style
}

// NewTable creates a new table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		columns:       columns,
		rows:          [][]string{},
		visibleRows:   12,
		headerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#66FF66")),
		rowStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		rowAltStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		selectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("#00FF00")).Foreground(lipgloss.Color("#000000")),
		borderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
	}
}

// SetRows replaces the table data. The selection is clamped so it never
// points past the new data.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	if t.offset > t.selected {
		t.offset = t.selected
	}
}

// SetVisibleRows sets the number of visible rows.
func (t *Table) SetVisibleRows(n int) {
	if n > 0 {
		t.visibleRows = n
	}
}

// SetStyles sets the table styles.
func (t *Table) SetStyles(header, row, rowAlt, selected, border lipgloss.Style) {
	t.headerStyle = header
	t.rowStyle = row
	t.rowAltStyle = rowAlt
	t.selectedStyle = selected
	t.borderStyle = border
}

// Focus sets the table focus state.
func (t *Table) Focus(focused bool) {
	t.focused = focused
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// MoveUp moves the selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
		if t.selected < t.offset {
			t.offset = t.selected
		}
	}
}

// MoveDown moves the selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
		if t.selected >= t.offset+t.visibleRows {
			t.offset = t.selected - t.visibleRows + 1
		}
	}
}

// GoToTop resets the selection to the first row.
func (t *Table) GoToTop() {
	t.selected = 0
	t.offset = 0
}

// Render renders the table.
func (t *Table) Render() string {
	var b strings.Builder

	totalWidth := 0
	for _, col := range t.columns {
		totalWidth += col.Width + 3 // padding and separator
	}

	b.WriteString(t.renderRow(t.headers(), t.headerStyle))
	b.WriteString("\n")

	b.WriteString(t.borderStyle.Render(strings.Repeat("-", totalWidth)))
	b.WriteString("\n")

	endIdx := t.offset + t.visibleRows
	if endIdx > len(t.rows) {
		endIdx = len(t.rows)
	}

	for i := t.offset; i < endIdx; i++ {
		var style lipgloss.Style
		switch {
		case i == t.selected && t.focused:
			style = t.selectedStyle
		case (i-t.offset)%2 == 1:
			style = t.rowAltStyle
		default:
			style = t.rowStyle
		}

		b.WriteString(t.renderRow(t.rows[i], style))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *Table) headers() []string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Title
	}
	return headers
}

func (t *Table) renderRow(cells []string, style lipgloss.Style) string {
	var parts []string

	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		if len(cell) > col.Width {
			cell = cell[:col.Width-1] + "…"
		}

		switch col.Align {
		case lipgloss.Right:
			cell = fmt.Sprintf("%*s", col.Width, cell)
		case lipgloss.Center:
			padding := col.Width - len(cell)
			leftPad := padding / 2
			cell = strings.Repeat(" ", leftPad) + cell + strings.Repeat(" ", padding-leftPad)
		default: // Left
			cell = fmt.Sprintf("%-*s", col.Width, cell)
		}

		parts = append(parts, style.Render(cell))
	}

	return " " + strings.Join(parts, " | ") + " "
}

// Empty returns true if the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}
