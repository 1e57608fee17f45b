package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	previewPanelMinWidth = 30  // minimum cols for the preview panel; below this no split
	previewPanelFraction = 0.5 // fraction of total width given to the preview panel
	bottomBarRows        = 2   // status line + footer
	topBarRows           = 1   // filter prompt
)

const footerText = "↑/↓ move  enter open  C-s save  C-e edit  C-d delete  C-k kill  C-h help  esc quit"

// View implements tea.Model. The browsing layout is always rendered;
// the confirmation and help popups are spliced over it so the list
// stays visible behind them.
func (m *Model) View() string {
	base := m.viewBrowsing()
	switch m.mode {
	case ModeConfirmDelete:
		return m.spliceCentered(base, m.confirmPopupLines())
	case ModeHelp:
		return m.spliceCentered(base, m.helpPopupLines())
	default:
		return base
	}
}

func (m *Model) viewBrowsing() string {
	prompt := m.filterPrompt()

	panelH := m.height - topBarRows - bottomBarRows
	if panelH < 1 {
		panelH = 1
	}
	menuW := m.menuColumnWidth()
	prevW := m.previewPanelWidth()

	listRows := m.renderListRows(menuW, panelH)
	left := strings.Join(listRows, "\n")

	top := left
	if prevW > 0 {
		right := m.renderPreviewPanel(prevW, panelH)
		top = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	status := m.statusLine()
	footer := fitWidth(styles.Footer.Render(footerText), m.width)

	return prompt + "\n" + top + "\n" + status + "\n" + footer
}

// previewPanelWidth returns the width in columns for the right-hand
// preview panel, or 0 when the preview is hidden or the terminal is
// too narrow to split.
func (m *Model) previewPanelWidth() int {
	if !m.previewVisible || m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return len(m.matches) + 1
	}
	remain := m.height - topBarRows - bottomBarRows
	if remain < 1 {
		return 1
	}
	return remain
}

// renderListRows produces exactly height rows of width columns: the
// visible slice of the match list padded with blanks.
func (m *Model) renderListRows(width, height int) []string {
	rows := make([]string, 0, height)
	if len(m.matches) == 0 {
		msg := "(no sessions)"
		if strings.TrimSpace(m.query) != "" {
			msg = fmt.Sprintf("No matches for %q", strings.TrimSpace(m.query))
		}
		rows = append(rows, fitWidth(styles.Info.Render(msg), width))
	} else {
		start := m.offset
		if start < 0 {
			start = 0
		}
		end := start + height
		if end > len(m.matches) {
			end = len(m.matches)
		}
		for i := start; i < end; i++ {
			rows = append(rows, m.renderItemRow(m.matches[i], i == m.cursor, width))
		}
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", max(width, 0)))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return rows
}

// renderItemRow builds one list row: cursor indicator, unsaved marker,
// the name with matched characters highlighted, and a running suffix.
func (m *Model) renderItemRow(match Match, selected bool, width int) string {
	base := styles.Item
	highlight := styles.ItemMatch
	indicator := "  "
	if selected {
		base = styles.SelectedItem
		highlight = styles.SelectedItemMatch
		indicator = "▌ "
	}

	marker := "  "
	if !match.Entry.HasConfig() {
		marker = "* "
	}
	suffix := ""
	if match.Entry.IsRunning() {
		suffix = " (running)"
	}

	var b strings.Builder
	b.WriteString(base.Render(indicator + marker))
	b.WriteString(renderHighlighted(match.Entry.Name, match.Positions, base, highlight))
	if suffix != "" {
		b.WriteString(styles.SourceTag.Render(suffix))
	}
	row := b.String()
	if width > 0 {
		w := lipgloss.Width(row)
		if w > width {
			row = truncate.StringWithTail(row, uint(width-1), "…")
		} else if selected {
			row += base.Render(strings.Repeat(" ", width-w))
		} else {
			row += strings.Repeat(" ", width-w)
		}
	}
	return row
}

// renderHighlighted styles the runes of name, using the highlight style
// for the positions matched by the query. Contiguous runs share one
// styled segment to keep the escape churn down.
func renderHighlighted(name string, positions []int, base, highlight *lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(name)
	}
	marked := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		marked[p] = struct{}{}
	}
	runes := []rune(name)
	var b strings.Builder
	for i := 0; i < len(runes); {
		_, hit := marked[i]
		j := i
		for j < len(runes) {
			if _, h := marked[j]; h != hit {
				break
			}
			j++
		}
		segment := string(runes[i:j])
		if hit {
			b.WriteString(highlight.Render(segment))
		} else {
			b.WriteString(base.Render(segment))
		}
		i = j
	}
	return b.String()
}

func (m *Model) filterPrompt() string {
	prompt := styles.FilterPrompt.Render("» ")
	if m.query == "" {
		return fitWidth(prompt+styles.FilterPlaceholder.Render("(type to filter)"), m.width)
	}
	return fitWidth(prompt+styles.Filter.Render(m.query), m.width)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return fitWidth(styles.Error.Render("Error: "+m.errMsg), m.width)
	case m.infoMsg != "":
		return fitWidth(styles.Info.Render(m.infoMsg), m.width)
	default:
		return ""
	}
}

// renderPreviewPanel builds the bordered preview box with exactly
// height rows and totalWidth columns.
func (m *Model) renderPreviewPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title := "Preview"
	if m.preview.target != "" {
		title = "Preview: " + m.preview.target
	}
	var content []string
	errLine := ""
	switch {
	case m.preview.loading:
		content = []string{"Loading…"}
	case m.preview.err != "":
		errLine = m.preview.err
	default:
		content = m.preview.lines
	}

	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - len([]rune(titleSeg))
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	border := styles.PopupBorder
	topLine := border.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		border.Render(strings.Repeat(hz, dashes)+hz+trc)
	bottomLine := border.Render(blc + strings.Repeat(hz, innerW) + brc)

	bodyStyle := styles.PreviewBody
	if errLine != "" {
		bodyStyle = styles.PreviewError
		content = []string{errLine}
	}

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		line = fitWidth(line, innerW)
		rows = append(rows, border.Render(vt)+bodyStyle.Render(line)+border.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// fitWidth pads or truncates a possibly styled string to exactly width
// visible columns. Width 0 or less leaves the string unchanged.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w > width {
		return truncate.StringWithTail(s, uint(width-1), "…")
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
