package tmux

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tmux-session-manager/internal/session"
)

// Restore recreates a session from a saved layout and attaches to it.
// The windows are built under a temporary session name first and
// renamed at the end, so a half-restored session never collides with
// the target name.
func (c *Client) Restore(layout session.Layout) error {
	if len(layout.Windows) == 0 {
		return fmt.Errorf("session %s has no windows to restore", layout.Name)
	}
	temp := fmt.Sprintf("tsm-restore-%d", os.Getpid())
	script := c.restoreScript(temp, layout)

	file, err := os.CreateTemp("", "tsm-restore-*.sh")
	if err != nil {
		return fmt.Errorf("create restore script: %w", err)
	}
	defer os.Remove(file.Name())
	if _, err := file.WriteString(script); err != nil {
		file.Close()
		return fmt.Errorf("write restore script: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close restore script: %w", err)
	}

	if err := execCommand("sh", file.Name()).Run(); err != nil {
		return fmt.Errorf("restore session %s: %w", layout.Name, err)
	}
	return c.Attach(layout.Name)
}

func (c *Client) restoreScript(temp string, layout session.Layout) string {
	tmux := "tmux"
	if socket := strings.TrimSpace(c.Socket); socket != "" {
		tmux = fmt.Sprintf("tmux -S %s", shQuote(socket))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s new-session -d -s %s -c %s\n", tmux, shQuote(temp), shQuote(layout.WorkDir))
	for i, window := range layout.Windows {
		if i > 0 {
			fmt.Fprintf(&b, "%s new-window -d -t %s -n %s -c %s\n",
				tmux, shQuote(temp), shQuote(window.Name), shQuote(layout.WorkDir))
		}
		writeWindowScript(&b, tmux, temp, layout, window)
	}
	fmt.Fprintf(&b, "%s rename-session -t %s %s\n", tmux, shQuote(temp), shQuote(layout.Name))
	return b.String()
}

func writeWindowScript(b *strings.Builder, tmux, temp string, layout session.Layout, window session.Window) {
	// A hand-edited config can declare a window with no panes; the
	// window is still created with tmux's default pane, there is just
	// nothing to split or type into.
	if len(window.Panes) == 0 {
		return
	}
	target := fmt.Sprintf("%s:%s", temp, window.Index)
	for range window.Panes[1:] {
		fmt.Fprintf(b, "%s split-window -d -t %s -c %s\n", tmux, shQuote(target), shQuote(layout.WorkDir))
	}
	fmt.Fprintf(b, "%s select-layout -t %s %s\n", tmux, shQuote(target), shQuote(window.Layout))
	for _, pane := range window.Panes {
		paneTarget := fmt.Sprintf("%s.%s", target, pane.Index)
		if pane.WorkDir != "" && pane.WorkDir != layout.WorkDir {
			cd := fmt.Sprintf("cd %s; clear", shQuote(pane.WorkDir))
			fmt.Fprintf(b, "%s send-keys -t %s %s C-m\n", tmux, shQuote(paneTarget), shQuote(cd))
		}
		if pane.Command != "" {
			fmt.Fprintf(b, "%s send-keys -t %s %s C-m\n", tmux, shQuote(paneTarget), shQuote(pane.Command))
		}
	}
}

// shQuote wraps a string in single quotes for use in the generated
// restore script, escaping embedded single quotes.
func shQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
