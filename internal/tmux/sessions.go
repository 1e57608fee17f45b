package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ListSessions returns the names of all sessions on the server. A
// server that is not running yields an empty list, not an error, so
// the menu can still present saved sessions. Any other tmux failure
// (bad socket path, permissions) propagates.
func (c *Client) ListSessions() ([]string, error) {
	out, err := c.run("list-sessions", "-F", "#{session_name}")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && isNoServer(exitErr.Stderr) {
			return nil, nil
		}
		return nil, err
	}
	return splitLines(out), nil
}

// isNoServer recognises the stderr tmux emits when no server is
// listening: "no server running on <path>", or "error connecting to
// <path> (No such file or directory)" when the socket file was never
// created.
func isNoServer(stderr []byte) bool {
	msg := string(stderr)
	return strings.Contains(msg, "no server running") ||
		strings.Contains(msg, "No such file or directory")
}

// IsRunning reports whether a session with the given name exists.
func (c *Client) IsRunning(name string) (bool, error) {
	sessions, err := c.ListSessions()
	if err != nil {
		return false, err
	}
	for _, session := range sessions {
		if session == name {
			return true, nil
		}
	}
	return false, nil
}

// CurrentSession returns the name of the attached session.
func (c *Client) CurrentSession() (string, error) {
	if !InsideTmux() {
		return "", fmt.Errorf("not inside a tmux session")
	}
	out, err := c.run("display-message", "-p", "#{session_name}")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", fmt.Errorf("could not determine current session name")
	}
	return name, nil
}

// Kill terminates the named session.
func (c *Client) Kill(name string) error {
	if _, err := c.run("kill-session", "-t", name); err != nil {
		return fmt.Errorf("kill session %s: %w", name, err)
	}
	return nil
}

// Attach connects the terminal to the named session: switch-client
// when already inside tmux (nested attach is refused by tmux),
// attach-session otherwise. The attach case hands the terminal over to
// tmux until the user detaches.
func (c *Client) Attach(name string) error {
	if InsideTmux() {
		if _, err := c.run("switch-client", "-t", name); err != nil {
			return fmt.Errorf("switch to session %s: %w", name, err)
		}
		return nil
	}
	cmd := execCommand("tmux", append(c.baseArgs(), "attach-session", "-t", name)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("attach to session %s: %w", name, err)
	}
	return nil
}
