package richfmt

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// maxTextWidth caps the Text column of the run table. Longer cells are
// truncated with "...".
const maxTextWidth = 40

var runHeader = []string{"#", "Start", "End", "Text", "Attributes"}

var runAligns = []alignment{alignRight, alignRight, alignRight, alignLeft, alignLeft}

// runRows flattens texts into one row per run. The first column is the
// index of the text the run belongs to.
func runRows(texts []RichText) [][]string {
	var rows [][]string
	for i, rt := range texts {
		rows = append(rows, textRows(i, rt)...)
	}
	return rows
}

func textRows(index int, rt RichText) [][]string {
	rows := make([][]string, len(rt.runs))
	for j, r := range rt.runs {
		rows[j] = []string{
			strconv.Itoa(index),
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			r.Text(rt),
			formatAttributes(r.Attributes),
		}
	}
	return rows
}

// formatAttributes renders attributes as space-separated key=value pairs in
// key order.
func formatAttributes(s Style) string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + valueString(s[k])
	}
	return strings.Join(parts, " ")
}

func writeTable(w io.Writer, texts []RichText) error {
	rows := runRows(texts)
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row[3] = strconv.Quote(row[3])
	}

	widths := computeWidths(runHeader, rows)
	if widths[3] > maxTextWidth {
		widths[3] = maxTextWidth
	}

	if err := drawHLine(w, widths, "╭", "─", "┬", "╮"); err != nil {
		return err
	}
	if err := drawRow(w, runHeader, widths); err != nil {
		return err
	}
	if err := drawHLine(w, widths, "├", "─", "┼", "┤"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, "╰", "─", "┴", "╯")
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("│")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cells[i], width, runAligns[i]))
		sb.WriteString(" │")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
