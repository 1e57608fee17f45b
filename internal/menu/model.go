package menu

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/tmux-session-manager/internal/logging/events"
	"github.com/atomicstack/tmux-session-manager/internal/session"
	"github.com/atomicstack/tmux-session-manager/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode identifies which input surface currently owns the keyboard.
type Mode int

const (
	// ModeBrowsing is the default filter-and-navigate state.
	ModeBrowsing Mode = iota
	// ModeConfirmDelete shows the delete confirmation popup.
	ModeConfirmDelete
	// ModeHelp shows the key binding overlay.
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeConfirmDelete:
		return "confirm-delete"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

var styles = theme.Default()

// Options carries the menu flags resolved by the CLI layer.
type Options struct {
	ShowPreview         bool
	ConfirmBeforeDelete bool
}

type editorFinishedMsg struct {
	name string
	err  error
}

// Model implements the Bubble Tea model for the session picker.
type Model struct {
	store  Store
	mux    Multiplexer
	filter *Filter

	catalog []session.Entry
	matches []Match
	query   string

	mode          Mode
	confirmTarget string

	cursor int
	offset int

	previewVisible      bool
	confirmBeforeDelete bool

	preview    previewState
	previewSeq int

	errMsg  string
	infoMsg string

	width  int
	height int

	// OpenRequest is set when the user picks a session with enter. The
	// attach or restore happens after the program returns and the
	// terminal is back in its normal state.
	OpenRequest *session.Entry
}

// NewModel builds the picker over an immutable startup catalog. The
// catalog is only mutated by the menu's own actions (save, delete,
// kill); external changes to tmux or the config dir are not observed.
func NewModel(store Store, mux Multiplexer, catalog []session.Entry, opts Options) *Model {
	m := &Model{
		store:               store,
		mux:                 mux,
		filter:              NewFilter(),
		catalog:             catalog,
		previewVisible:      opts.ShowPreview,
		confirmBeforeDelete: opts.ConfirmBeforeDelete,
	}
	m.matches = m.filter.Apply(m.catalog, m.query)
	events.Menu.Start(len(catalog), opts.ShowPreview, opts.ConfirmBeforeDelete)
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.ensurePreview()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil
	case previewLoadedMsg:
		return m, m.handlePreviewLoaded(msg)
	case editorFinishedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("edit %s: %v", msg.name, msg.err)
			events.Action.Error(msg.err)
		} else {
			m.setInfo(fmt.Sprintf("Edited %s", msg.name))
			events.Action.Success("edit " + msg.name)
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case ModeConfirmDelete:
			return m, m.handleConfirmKey(msg)
		case ModeHelp:
			return m, m.handleHelpKey(msg)
		default:
			return m, m.handleBrowsingKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		events.Menu.Quit()
		return tea.Quit
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m.ensurePreview()
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m.ensurePreview()
	case key.Matches(msg, keys.Open):
		return m.openSelected()
	case key.Matches(msg, keys.Save):
		return m.saveSelected()
	case key.Matches(msg, keys.Edit):
		return m.editSelected()
	case key.Matches(msg, keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, keys.Kill):
		return m.killSelected()
	case key.Matches(msg, keys.TogglePreview):
		m.previewVisible = !m.previewVisible
		events.Menu.TogglePreview(m.previewVisible)
		if m.previewVisible {
			return m.ensurePreview()
		}
		return nil
	case key.Matches(msg, keys.ToggleHelp):
		m.setMode(ModeHelp)
		return nil
	case key.Matches(msg, keys.DeleteWord):
		if m.deleteQueryWord() {
			events.Filter.WordBackspace(m.query, len(m.matches))
			return m.ensurePreview()
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if m.query == "" {
			return nil
		}
		runes := []rune(m.query)
		m.setQuery(string(runes[:len(runes)-1]))
		events.Filter.Backspace(m.query, len(m.matches))
		return m.ensurePreview()
	case tea.KeySpace:
		m.setQuery(m.query + " ")
		events.Filter.Append(m.query, len(m.matches))
		return m.ensurePreview()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.setQuery(m.query + string(msg.Runes))
		events.Filter.Append(m.query, len(m.matches))
		return m.ensurePreview()
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		name := m.confirmTarget
		m.setMode(ModeBrowsing)
		m.confirmTarget = ""
		return m.performDelete(name)
	case "n", "N", "q", "esc", "ctrl+c":
		m.setMode(ModeBrowsing)
		m.confirmTarget = ""
		return nil
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "enter", "ctrl+h", "ctrl+c":
		m.setMode(ModeBrowsing)
	}
	return nil
}

func (m *Model) openSelected() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}
	events.Action.Dispatch("open", entry.Name)
	e := entry
	m.OpenRequest = &e
	return tea.Quit
}

func (m *Model) saveSelected() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}
	if !entry.IsRunning() {
		m.errMsg = fmt.Sprintf("%s is not running, nothing to save", entry.Name)
		return nil
	}
	events.Action.Dispatch("save", entry.Name)
	if err := m.store.Save(entry.Name); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	m.setSource(entry.Name, session.Both)
	m.refilter()
	m.setInfo(fmt.Sprintf("Saved %s", entry.Name))
	events.Action.Success("save " + entry.Name)
	return nil
}

func (m *Model) editSelected() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}
	if !entry.HasConfig() {
		m.errMsg = fmt.Sprintf("%s has no saved config to edit", entry.Name)
		return nil
	}
	events.Action.Dispatch("edit", entry.Name)
	cmd, err := m.store.EditorCommand(entry.Name)
	if err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	name := entry.Name
	m.preview = previewState{}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{name: name, err: err}
	})
}

// deleteSelected removes the saved config of the selected entry,
// asking first when confirmation is enabled. The live session, if any,
// is untouched. A running-only entry has no config to delete; the
// delete key kills its live session instead, with no confirmation.
func (m *Model) deleteSelected() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}
	if !entry.HasConfig() {
		return m.killSelected()
	}
	if m.confirmBeforeDelete {
		m.confirmTarget = entry.Name
		m.setMode(ModeConfirmDelete)
		return nil
	}
	return m.performDelete(entry.Name)
}

func (m *Model) performDelete(name string) tea.Cmd {
	events.Action.Dispatch("delete", name)
	if err := m.store.Delete(name); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	if entry, ok := m.lookup(name); ok && entry.Source == session.Both {
		m.setSource(name, session.Running)
	} else {
		m.remove(name)
	}
	m.refilter()
	m.setInfo(fmt.Sprintf("Deleted %s", name))
	events.Action.Success("delete " + name)
	return m.ensurePreview()
}

// killSelected terminates the live session of the selected entry. A
// saved config under the same name survives the kill.
func (m *Model) killSelected() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}
	if !entry.IsRunning() {
		m.errMsg = fmt.Sprintf("%s is not running", entry.Name)
		return nil
	}
	events.Action.Dispatch("kill", entry.Name)
	if err := m.mux.Kill(entry.Name); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	if entry.Source == session.Both {
		m.setSource(entry.Name, session.Saved)
	} else {
		m.remove(entry.Name)
	}
	m.refilter()
	m.setInfo(fmt.Sprintf("Killed %s", entry.Name))
	events.Action.Success("kill " + entry.Name)
	return m.ensurePreview()
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.Menu.Mode(mode.String())
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	m.errMsg = ""
}

func (m *Model) setQuery(query string) {
	m.query = query
	m.errMsg = ""
	m.infoMsg = ""
	m.refilter()
}

// deleteQueryWord drops trailing spaces and then the last word of the
// query, readline style.
func (m *Model) deleteQueryWord() bool {
	if m.query == "" {
		return false
	}
	runes := []rune(m.query)
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	m.setQuery(string(runes[:i]))
	return true
}

// refilter rebuilds the match list for the current query. The cursor
// is kept when it still addresses a match and reset to the top when
// the list shrank underneath it.
func (m *Model) refilter() {
	m.matches = m.filter.Apply(m.catalog, m.query)
	if m.cursor >= len(m.matches) {
		m.cursor = 0
		m.offset = 0
	}
	m.syncViewport()
}

func (m *Model) moveCursor(delta int) {
	if len(m.matches) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.matches)-1 {
		next = len(m.matches) - 1
	}
	if next == m.cursor {
		return
	}
	m.cursor = next
	m.syncViewport()
	events.Menu.Cursor(m.cursor, m.matches[m.cursor].Entry.Name)
}

func (m *Model) syncViewport() {
	visible := m.maxVisibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) selected() (session.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return session.Entry{}, false
	}
	return m.matches[m.cursor].Entry, true
}

func (m *Model) lookup(name string) (session.Entry, bool) {
	for _, entry := range m.catalog {
		if entry.Name == name {
			return entry, true
		}
	}
	return session.Entry{}, false
}

func (m *Model) setSource(name string, source session.Source) {
	for i := range m.catalog {
		if m.catalog[i].Name == name {
			m.catalog[i].Source = source
			return
		}
	}
}

func (m *Model) remove(name string) {
	for i := range m.catalog {
		if m.catalog[i].Name == name {
			m.catalog = append(m.catalog[:i], m.catalog[i+1:]...)
			return
		}
	}
}
