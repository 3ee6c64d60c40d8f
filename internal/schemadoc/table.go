// Package schemadoc renders markdown reference documents for the settings
// schema and for prior work penalty curves.
package schemadoc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment specifies column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	// minSeparatorWidth is the minimum width for separator dashes (---).
	minSeparatorWidth = 3

	// cellPadding is the number of spaces around cell content.
	cellPadding = 2
)

// Table is a markdown table aligned by display width.
type Table struct {
	headers    []string
	alignments []Alignment
	rows       [][]string
}

// NewTable creates a left-aligned table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:    headers,
		alignments: make([]Alignment, len(headers)),
	}
}

// SetAlignments sets column alignments from the first column on.
func (t *Table) SetAlignments(alignments ...Alignment) *Table {
	for i, align := range alignments {
		if i < len(t.alignments) {
			t.alignments[i] = align
		}
	}

	return t
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)

	t.rows = append(t.rows, row)

	return t
}

// String renders the table.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.widths()

	var sb strings.Builder

	sb.WriteString(t.renderRow(t.headers, widths))
	sb.WriteString("\n")
	sb.WriteString(t.renderSeparator(widths))
	sb.WriteString("\n")

	for _, row := range t.rows {
		sb.WriteString(t.renderRow(row, widths))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))

	for i, header := range t.headers {
		widths[i] = max(minSeparatorWidth, runewidth.StringWidth(sanitize(header)))
	}

	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(sanitize(cell)))
		}
	}

	return widths
}

func (t *Table) renderRow(cells []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(pad(sanitize(cell), widths[i], t.alignments[i]))
		sb.WriteString(" |")
	}

	return sb.String()
}

// renderSeparator renders |:-----|-----:| with no spaces around the dashes.
func (t *Table) renderSeparator(widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, w := range widths {
		total := w + cellPadding

		switch t.alignments[i] {
		case AlignCenter:
			sb.WriteString(":" + strings.Repeat("-", total-cellPadding) + ":")
		case AlignRight:
			sb.WriteString(strings.Repeat("-", total-1) + ":")
		default:
			sb.WriteString(":" + strings.Repeat("-", total-1))
		}

		sb.WriteString("|")
	}

	return sb.String()
}

// sanitize flattens a cell onto one line and escapes bare pipes.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")

	var sb strings.Builder

	for i, r := range s {
		if r == '|' && (i == 0 || s[i-1] != '\\') {
			sb.WriteString(`\|`)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func pad(s string, width int, align Alignment) string {
	padding := width - runewidth.StringWidth(s)
	if padding <= 0 {
		return s
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + s
	case AlignCenter:
		left := padding / 2

		return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
	default:
		return s + strings.Repeat(" ", padding)
	}
}
