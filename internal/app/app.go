// Package app wires the store, the tmux client, and the menu together
// and exposes one function per CLI operation.
package app

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/tmux-session-manager/internal/logging"
	"github.com/atomicstack/tmux-session-manager/internal/logging/events"
	"github.com/atomicstack/tmux-session-manager/internal/menu"
	"github.com/atomicstack/tmux-session-manager/internal/session"
	"github.com/atomicstack/tmux-session-manager/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// Config carries the resolved settings shared by every operation.
type Config struct {
	StorageDir          string
	Socket              string
	Editor              string
	ShowPreview         bool
	ConfirmBeforeDelete bool
}

func (c Config) store() *session.Store {
	return session.NewStore(c.StorageDir)
}

func (c Config) client() *tmux.Client {
	return &tmux.Client{Socket: c.Socket}
}

// Menu builds the session catalog and runs the interactive picker. A
// session chosen with enter is opened after the terminal is restored.
func Menu(cfg Config) error {
	store := cfg.store()
	client := cfg.client()
	catalog, err := buildCatalog(store, client)
	if err != nil {
		return err
	}
	model := menu.NewModel(
		menuStore{store: store, client: client, editor: cfg.Editor},
		client,
		catalog,
		menu.Options{ShowPreview: cfg.ShowPreview, ConfirmBeforeDelete: cfg.ConfirmBeforeDelete},
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		logging.Error(err)
		return fmt.Errorf("run menu: %w", err)
	}
	picked, ok := final.(*menu.Model)
	if !ok || picked.OpenRequest == nil {
		return nil
	}
	return openEntry(cfg, *picked.OpenRequest)
}

// Save snapshots a running session to the store. An empty name saves
// the session the caller is attached to.
func Save(cfg Config, name string) error {
	client := cfg.client()
	if name == "" {
		current, err := client.CurrentSession()
		if err != nil {
			return err
		}
		name = current
	}
	if err := session.ValidateName(name); err != nil {
		return err
	}
	layout, err := client.Snapshot(name)
	if err != nil {
		return err
	}
	store := cfg.store()
	if err := store.Save(layout); err != nil {
		return err
	}
	events.Store.Save(name, store.ConfigPath(name))
	fmt.Printf("Saved session %s to %s\n", name, store.ConfigPath(name))
	return nil
}

// Open attaches to the named session when it is running and restores
// it from its saved config otherwise.
func Open(cfg Config, name string) error {
	return openEntry(cfg, session.Entry{Name: name})
}

func openEntry(cfg Config, entry session.Entry) error {
	client := cfg.client()
	running, err := client.IsRunning(entry.Name)
	if err != nil {
		return err
	}
	if running {
		return client.Attach(entry.Name)
	}
	layout, err := cfg.store().Load(entry.Name)
	if err != nil {
		return err
	}
	return client.Restore(layout)
}

// Edit opens the saved config of the named session in the editor. An
// empty name edits the config of the session the caller is attached to.
func Edit(cfg Config, name string) error {
	if name == "" {
		current, err := cfg.client().CurrentSession()
		if err != nil {
			return err
		}
		name = current
	}
	cmd, err := editorCommand(cfg.store(), cfg.Editor, name)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("edit session %s: %w", name, err)
	}
	return nil
}

// Delete removes the saved config of the named session. The live
// session, if any, keeps running.
func Delete(cfg Config, name string) error {
	if err := cfg.store().Delete(name); err != nil {
		return err
	}
	events.Store.Delete(name)
	fmt.Printf("Deleted session %s\n", name)
	return nil
}

// Catalog returns the merged saved and running session list.
func Catalog(cfg Config) ([]session.Entry, error) {
	return buildCatalog(cfg.store(), cfg.client())
}

func buildCatalog(store *session.Store, client *tmux.Client) ([]session.Entry, error) {
	saved, err := store.ListSaved()
	if err != nil {
		return nil, err
	}
	running, err := client.ListSessions()
	if err != nil {
		return nil, err
	}
	events.Store.List(len(saved), len(running))
	return session.BuildCatalog(saved, running), nil
}

func editorCommand(store *session.Store, editor, name string) (*exec.Cmd, error) {
	path := store.ConfigPath(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no saved session %q", name)
		}
		return nil, fmt.Errorf("stat config for %s: %w", name, err)
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}

// menuStore adapts the YAML store and the tmux client to the menu's
// Store interface. Saving from the menu snapshots the live session
// first, same as the save subcommand.
type menuStore struct {
	store  *session.Store
	client *tmux.Client
	editor string
}

func (s menuStore) Save(name string) error {
	layout, err := s.client.Snapshot(name)
	if err != nil {
		return err
	}
	if err := s.store.Save(layout); err != nil {
		return err
	}
	events.Store.Save(name, s.store.ConfigPath(name))
	return nil
}

func (s menuStore) Delete(name string) error {
	if err := s.store.Delete(name); err != nil {
		return err
	}
	events.Store.Delete(name)
	return nil
}

func (s menuStore) EditorCommand(name string) (*exec.Cmd, error) {
	return editorCommand(s.store, s.editor, name)
}

func (s menuStore) DescribeSaved(name string) (string, error) {
	layout, err := s.store.Load(name)
	if err != nil {
		return "", err
	}
	return layout.Preview(), nil
}
