package tmux

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-session-manager/internal/session"
)

const (
	windowFormat = "#{window_index}\t#{window_name}\t#{window_layout}"
	paneFormat   = "#{pane_index}\t#{pane_pid}\t#{pane_current_path}"
)

// Snapshot captures the window/pane structure of a live session as a
// storable layout, including the foreground command of each pane.
func (c *Client) Snapshot(name string) (session.Layout, error) {
	workDir, err := c.sessionPath(name)
	if err != nil {
		return session.Layout{}, err
	}
	windows, err := c.windows(name)
	if err != nil {
		return session.Layout{}, err
	}
	return session.Layout{Name: name, WorkDir: workDir, Windows: windows}, nil
}

// Describe renders the structural summary of a live session for the
// preview panel.
func (c *Client) Describe(name string) (string, error) {
	layout, err := c.Snapshot(name)
	if err != nil {
		return "", err
	}
	return layout.Preview(), nil
}

func (c *Client) sessionPath(name string) (string, error) {
	out, err := c.run("display-message", "-p", "-t", name, "-F", "#{session_path}")
	if err != nil {
		return "", fmt.Errorf("session path for %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Client) windows(name string) ([]session.Window, error) {
	out, err := c.run("list-windows", "-t", name, "-F", windowFormat)
	if err != nil {
		return nil, fmt.Errorf("list windows of %s: %w", name, err)
	}
	lines := splitLines(out)
	windows := make([]session.Window, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, fieldSeparator, 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("unexpected window line %q", line)
		}
		target := fmt.Sprintf("%s:%s", name, parts[0])
		panes, err := c.panes(target)
		if err != nil {
			return nil, err
		}
		windows = append(windows, session.Window{
			Index:  parts[0],
			Name:   parts[1],
			Layout: parts[2],
			Panes:  panes,
		})
	}
	return windows, nil
}

func (c *Client) panes(windowTarget string) ([]session.Pane, error) {
	out, err := c.run("list-panes", "-t", windowTarget, "-F", paneFormat)
	if err != nil {
		return nil, fmt.Errorf("list panes of %s: %w", windowTarget, err)
	}
	lines := splitLines(out)
	panes := make([]session.Pane, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, fieldSeparator, 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("unexpected pane line %q", line)
		}
		panes = append(panes, session.Pane{
			Index:   parts[0],
			Command: foregroundCommand(parts[1]),
			WorkDir: parts[2],
		})
	}
	return panes, nil
}

// foregroundCommand returns the command line of the first child of the
// pane's shell, or empty when the shell is idle. The manager's own pid
// is skipped so a save issued from inside a pane does not record
// itself.
func foregroundCommand(shellPID string) string {
	out, err := execCommand("ps", "-o", "pid=,args=", "--ppid", shellPID).Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), lineSeparator) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		pidStr, cmdline, found := strings.Cut(trimmed, " ")
		if !found {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(pidStr))
		if err != nil || pid == os.Getpid() {
			continue
		}
		return strings.TrimSpace(cmdline)
	}
	return ""
}
