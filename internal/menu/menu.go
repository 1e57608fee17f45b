// Package menu implements the interactive session picker: a fuzzy
// filtered list of saved and running sessions with a structural
// preview, driven by a small modal state machine (browsing, delete
// confirmation, help overlay).
//
// The package owns no I/O of its own. Everything that touches disk or
// the tmux server goes through the Store and Multiplexer collaborators
// supplied at construction; action failures are converted to a status
// line message and never escape the event loop.
package menu

import "os/exec"

// Store is the persistent side of the session catalog: saved config
// files and the external editor that modifies them.
type Store interface {
	// Save snapshots the named live session to a config file.
	Save(name string) error
	// Delete removes the saved config for name.
	Delete(name string) error
	// EditorCommand returns the external editor invocation for the
	// saved config of name. The command is run with the terminal
	// handed over to it.
	EditorCommand(name string) (*exec.Cmd, error)
	// DescribeSaved renders the window/pane tree of a saved config.
	DescribeSaved(name string) (string, error)
}

// Multiplexer is the live side: the running tmux server.
type Multiplexer interface {
	// Kill terminates the named live session.
	Kill(name string) error
	// Describe renders the window/pane tree of a live session.
	Describe(name string) (string, error)
}
