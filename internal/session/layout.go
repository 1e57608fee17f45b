package session

import (
	"fmt"
	"strings"
)

// Pane describes a single pane inside a saved window layout.
type Pane struct {
	Index   string `yaml:"index"`
	Command string `yaml:"command,omitempty"`
	WorkDir string `yaml:"workdir"`
}

// Window describes one window of a saved session layout. Layout holds
// the tmux layout string consumed by select-layout on restore.
type Window struct {
	Index  string `yaml:"index"`
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"`
	Panes  []Pane `yaml:"panes"`
}

// Layout is the on-disk session model: the session name, its root
// working directory, and the window/pane tree.
type Layout struct {
	Name    string   `yaml:"name"`
	WorkDir string   `yaml:"workdir"`
	Windows []Window `yaml:"windows"`
}

func (p Pane) preview(showIndex bool) string {
	var b strings.Builder
	if showIndex {
		fmt.Fprintf(&b, "(%s) ", p.Index)
	}
	if p.Command != "" {
		b.WriteString(p.Command)
	} else {
		b.WriteString("_")
	}
	return b.String()
}

func (w Window) preview(addConnector bool) string {
	if len(w.Panes) == 0 {
		return fmt.Sprintf("%s: (empty)\n", w.Name)
	}
	if len(w.Panes) == 1 {
		return fmt.Sprintf("%s: %s\n", w.Name, w.Panes[0].preview(false))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", w.Name)
	connector := " "
	if addConnector {
		connector = "║"
	}
	for i, pane := range w.Panes {
		branch := "╠═"
		if i == len(w.Panes)-1 {
			branch = "╚═"
		}
		fmt.Fprintf(&b, " %s  %s %s\n", connector, branch, pane.preview(true))
	}
	return b.String()
}

// Preview renders the window/pane tree of the layout as display text
// for the menu's preview panel.
func (l Layout) Preview() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", l.Name)
	if len(l.Windows) == 0 {
		b.WriteString(" (no windows)\n")
		return b.String()
	}
	for i, window := range l.Windows {
		last := i == len(l.Windows)-1
		branch := "╠══"
		if last {
			branch = "╚══"
		}
		fork := ""
		if len(window.Panes) > 1 {
			fork = "╦═"
		}
		fmt.Fprintf(&b, " %s%s %s", branch, fork, window.preview(!last))
	}
	return b.String()
}
