// Package formatter renders article reports as markdown.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth is the narrowest column, wide enough for a "---" separator.
const minColumnWidth = 3

// FormatMarkdown aligns every pipe table in content so that columns line up
// by display width. Lines outside tables are left untouched.
func FormatMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	var table []string

	for _, line := range lines {
		if isTableRow(line) {
			table = append(table, line)

			continue
		}

		if len(table) > 0 {
			out = append(out, alignTable(table)...)
			table = nil
		}

		out = append(out, line)
	}

	if len(table) > 0 {
		out = append(out, alignTable(table)...)
	}

	return strings.Join(out, "\n")
}

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)

	return len(trimmed) > 1 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// splitRow returns the trimmed cells of a table row. Escaped pipes stay in
// their cell.
func splitRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	var (
		cells []string
		cell  strings.Builder
	)

	escaped := false

	for _, r := range trimmed {
		switch {
		case escaped:
			cell.WriteRune(r)

			escaped = false
		case r == '\\':
			cell.WriteRune(r)

			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}

	return append(cells, strings.TrimSpace(cell.String()))
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if strings.Trim(cell, "-: ") != "" || !strings.Contains(cell, "-") {
			return false
		}
	}

	return true
}

func alignTable(rows []string) []string {
	// A header needs a separator below it; anything shorter is left alone.
	if len(rows) < 2 {
		return rows
	}

	table := make([][]string, len(rows))
	colCount := 0

	for i, row := range rows {
		table[i] = splitRow(row)
		colCount = max(colCount, len(table[i]))
	}

	separator := -1
	if isSeparatorRow(table[1]) {
		separator = 1
	}

	widths := make([]int, colCount)
	for i := range widths {
		widths[i] = minColumnWidth
	}

	for i, cells := range table {
		if i == separator {
			continue
		}

		for j, cell := range cells {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	result := make([]string, 0, len(table))

	for i, cells := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := range colCount {
			sb.WriteString(" ")

			if i == separator {
				sb.WriteString(strings.Repeat("-", widths[j]))
			} else {
				cell := ""
				if j < len(cells) {
					cell = cells[j]
				}

				sb.WriteString(runewidth.FillRight(cell, widths[j]))
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}
