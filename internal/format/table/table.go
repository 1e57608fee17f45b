// Package table pads rows of cells into aligned columns for plain
// text CLI output.
package table

import "strings"

// Format renders the header and rows as lines with two spaces between
// columns, each column sized to its widest cell. Trailing padding is
// trimmed so the lines stay clean when redirected to a file.
func Format(header []string, rows [][]string) []string {
	all := make([][]string, 0, len(rows)+1)
	if len(header) > 0 {
		all = append(all, header)
	}
	all = append(all, rows...)
	if len(all) == 0 {
		return nil
	}

	widths := make([]int, len(all[0]))
	for _, row := range all {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	out := make([]string, len(all))
	for i, row := range all {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if pad := widths[c] - len([]rune(cell)); pad > 0 && c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
