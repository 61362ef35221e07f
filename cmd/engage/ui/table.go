package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// minColumnWidth is the narrowest a column is squeezed to when fitting.
const minColumnWidth = 4

// Column describes one table column.
type Column struct {
	Header     string
	AlignRight bool
}

// Table renders static rows under a title. Cells may already carry ANSI
// styling; widths are measured on the visible text.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// NewTable creates a table with left-aligned columns.
func NewTable(title string, headers ...string) *Table {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Header: h}
	}
	return &Table{Title: title, Columns: cols, Rows: make([][]string, 0)}
}

// AlignRight right-aligns the given column indexes.
func (t *Table) AlignRight(idx ...int) *Table {
	for _, i := range idx {
		if i >= 0 && i < len(t.Columns) {
			t.Columns[i].AlignRight = true
		}
	}
	return t
}

// AddRow adds a row to the table. Missing cells render empty.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// columnWidths returns natural widths, squeezed so the table fits width
// when width > 0.
func (t *Table) columnWidths(width int) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c.Header)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	if width <= 0 {
		return widths
	}

	// One space of padding each side plus a separator between columns.
	overhead := 2*len(widths) + len(widths) - 1
	for total(widths)+overhead > width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

// View renders the table using the provided styles, fitted to width
// (0 means unconstrained).
func (t *Table) View(styles Styles, width int) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := t.columnWidths(width)
	sep := styles.Muted.Render("│")

	cell := func(style lipgloss.Style, text string, i int) string {
		text = ansi.Truncate(text, widths[i], "…")
		st := style.Padding(0, 1).Width(widths[i] + 2)
		if t.Columns[i].AlignRight {
			st = st.Align(lipgloss.Right)
		}
		return st.Render(text)
	}

	for i, c := range t.Columns {
		sb.WriteString(cell(styles.TableHead, c.Header, i))
		if i < len(t.Columns)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	ruleWidth := total(widths) + 2*len(widths) + len(widths) - 1
	sb.WriteString(styles.RenderDivider(ruleWidth))
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render(" (none)"))
		sb.WriteString("\n")
		return sb.String()
	}

	for r, row := range t.Rows {
		style := styles.RowEven
		if r%2 == 1 {
			style = styles.RowOdd
		}
		for i := range t.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			sb.WriteString(cell(style, text, i))
			if i < len(t.Columns)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func total(ws []int) int {
	n := 0
	for _, w := range ws {
		n += w
	}
	return n
}
