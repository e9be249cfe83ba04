package mdblock

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

type tableBorders struct {
	horizontal, vertical               string
	topLeft, topSep, topRight          string
	midLeft, midSep, midRight          string
	bottomLeft, bottomSep, bottomRight string
}

func boxTableBorders() tableBorders {
	return tableBorders{
		horizontal:  "─",
		vertical:    "│",
		topLeft:     "┌",
		topSep:      "┬",
		topRight:    "┐",
		midLeft:     "├",
		midSep:      "┼",
		midRight:    "┤",
		bottomLeft:  "└",
		bottomSep:   "┴",
		bottomRight: "┘",
	}
}

func asciiTableBorders() tableBorders {
	return tableBorders{
		horizontal:  "-",
		vertical:    "|",
		topLeft:     "+",
		topSep:      "+",
		topRight:    "+",
		midLeft:     "+",
		midSep:      "+",
		midRight:    "+",
		bottomLeft:  "+",
		bottomSep:   "+",
		bottomRight: "+",
	}
}

func (r *blockRenderer) tableLines(t Table) []string {
	cols := tableColumns(t)
	if cols == 0 {
		return nil
	}
	borders := boxTableBorders()
	if r.cfg.asciiTables {
		borders = asciiTableBorders()
	}

	header := r.tableCells(t.Header, cols, r.styles.TableHeader)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = r.tableCells(row, cols, r.styles.Text)
	}
	widths := columnWidths(t, cols)
	fitColumnWidths(widths, r.width)

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, r.borderLine(widths, borders, borders.topLeft, borders.topSep, borders.topRight))
	lines = append(lines, r.rowLine(header, widths, borders))
	if len(rows) > 0 {
		lines = append(lines, r.borderLine(widths, borders, borders.midLeft, borders.midSep, borders.midRight))
		for _, row := range rows {
			lines = append(lines, r.rowLine(row, widths, borders))
		}
	}
	lines = append(lines, r.borderLine(widths, borders, borders.bottomLeft, borders.bottomSep, borders.bottomRight))
	return lines
}

// tableColumns is the widest of the header and body rows; ragged rows are
// padded with empty cells when drawn.
func tableColumns(t Table) int {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

func (r *blockRenderer) tableCells(cells [][]Span, cols int, base Style) []string {
	out := make([]string, cols)
	for i := 0; i < cols && i < len(cells); i++ {
		out[i] = r.inline(cells[i], base)
	}
	return out
}

func columnWidths(t Table, cols int) []int {
	widths := make([]int, cols)
	measure := func(cells [][]Span) {
		for i, cell := range cells {
			if w := runewidth.StringWidth(SpanText(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = 1
		}
	}
	return widths
}

// fitColumnWidths shrinks the widest columns until the drawn table fits in
// limit columns or every column is at minColumnWidth.
func fitColumnWidths(widths []int, limit int) {
	if limit <= 0 {
		return
	}
	total := len(widths)*3 + 1
	for _, w := range widths {
		total += w
	}
	for total > limit {
		widest := -1
		for i, w := range widths {
			if w > minColumnWidth && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		widths[widest]--
		total--
	}
}

func (r *blockRenderer) borderLine(widths []int, b tableBorders, left, sep, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strings.Repeat(b.horizontal, w+2))
	}
	sb.WriteString(right)
	return styled(sb.String(), r.styles.TableBorder)
}

func (r *blockRenderer) rowLine(cells []string, widths []int, b tableBorders) string {
	vertical := styled(b.vertical, r.styles.TableBorder)
	var sb strings.Builder
	sb.WriteString(vertical)
	for i, w := range widths {
		sb.WriteByte(' ')
		sb.WriteString(padRight(truncateWithEllipsis(cells[i], w), w))
		sb.WriteByte(' ')
		sb.WriteString(vertical)
	}
	return sb.String()
}
