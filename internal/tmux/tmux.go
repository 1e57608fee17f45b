// Package tmux shells out to the tmux binary to list, inspect, create,
// and kill sessions. It is the only package that talks to a live tmux
// server; everything above it goes through Client.
package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// execCommand is swapped out by tests to intercept command execution.
var execCommand = exec.Command

const (
	fieldSeparator = "\t"
	lineSeparator  = "\n"
)

// Client runs tmux commands against one server socket. An empty Socket
// targets the default server.
type Client struct {
	Socket string
}

func (c *Client) baseArgs() []string {
	if strings.TrimSpace(c.Socket) == "" {
		return []string{}
	}
	return []string{"-S", c.Socket}
}

func (c *Client) run(args ...string) ([]byte, error) {
	cmd := execCommand("tmux", append(c.baseArgs(), args...)...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return out, nil
}

// InsideTmux reports whether the current process runs inside a tmux
// client.
func InsideTmux() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

func splitLines(out []byte) []string {
	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil
	}
	lines := strings.Split(text, lineSeparator)
	trimmed := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			trimmed = append(trimmed, line)
		}
	}
	return trimmed
}
