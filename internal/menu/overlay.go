package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceCentered replaces a rectangular region in the middle of the
// rendered view with the popup lines. ANSI-aware truncation keeps the
// escape sequences of the underlying view intact on both sides.
func (m *Model) spliceCentered(view string, popup []string) string {
	if len(popup) == 0 {
		return view
	}
	viewLines := strings.Split(view, "\n")
	popupWidth := ansi.StringWidth(popup[0])
	anchorX := (m.width - popupWidth) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	anchorY := (len(viewLines) - len(popup)) / 2
	if anchorY < 0 {
		anchorY = 0
	}

	for i, popupLine := range popup {
		idx := anchorY + i
		if idx < 0 || idx >= len(viewLines) {
			continue
		}
		line := viewLines[idx]
		lineWidth := ansi.StringWidth(line)

		var b strings.Builder
		if anchorX > 0 {
			b.WriteString(ansi.Truncate(line, anchorX, ""))
		}
		b.WriteString("\x1b[0m")
		b.WriteString(popupLine)
		b.WriteString("\x1b[0m")
		if suffixStart := anchorX + popupWidth; suffixStart < lineWidth {
			b.WriteString(ansi.TruncateLeft(line, suffixStart, ""))
		}
		viewLines[idx] = b.String()
	}
	return strings.Join(viewLines, "\n")
}

func (m *Model) confirmPopupLines() []string {
	question := fmt.Sprintf("Delete saved session %q?", m.confirmTarget)
	return popupLines("Confirm", []string{
		question,
		"",
		"y / enter  delete    n / esc  cancel",
	})
}

func (m *Model) helpPopupLines() []string {
	return popupLines("Keys", []string{
		"↑ / ctrl+p   previous item",
		"↓ / ctrl+n   next item",
		"enter        open session",
		"ctrl+s       save running session",
		"ctrl+e       edit saved config",
		"ctrl+d       delete config, kill when unsaved",
		"ctrl+k       kill running session",
		"ctrl+t       toggle preview",
		"ctrl+w       delete last query word",
		"ctrl+h       toggle this help",
		"esc / ctrl+c quit",
	})
}

// popupLines renders a bordered box around the body, every line padded
// to the same width so the splice region is rectangular.
func popupLines(title string, body []string) []string {
	innerW := len([]rune(title)) + 2
	for _, line := range body {
		if w := ansi.StringWidth(line); w+2 > innerW {
			innerW = w + 2
		}
	}

	border := styles.PopupBorder
	titleSeg := " " + title + " "
	dashes := innerW - len([]rune(titleSeg)) - 1
	if dashes < 0 {
		dashes = 0
	}
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, border.Render("╭─")+styles.PopupTitle.Render(titleSeg)+border.Render(strings.Repeat("─", dashes)+"╮"))
	for _, line := range body {
		pad := innerW - ansi.StringWidth(line) - 1
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, border.Render("│")+styles.PopupBody.Render(" "+line+strings.Repeat(" ", pad))+border.Render("│"))
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return lines
}
