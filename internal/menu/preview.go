package menu

import (
	"strings"

	"github.com/atomicstack/tmux-session-manager/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// previewState caches the structural preview of exactly one entry, the
// selected one. Moving the cursor replaces the cache; there is no
// history, so memory stays flat no matter how long the session list is.
type previewState struct {
	target  string
	lines   []string
	err     string
	loading bool
	seq     int
}

type previewLoadedMsg struct {
	target string
	seq    int
	lines  []string
	err    error
}

// ensurePreview returns the command that fetches the preview for the
// selected entry, or nil when the cache is already current. Stale
// fetches are discarded by the seq check in handlePreviewLoaded.
func (m *Model) ensurePreview() tea.Cmd {
	if !m.previewVisible {
		return nil
	}
	entry, ok := m.selected()
	if !ok {
		m.preview = previewState{}
		return nil
	}
	if m.preview.target == entry.Name && !m.preview.loading {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview = previewState{target: entry.Name, loading: true, seq: seq}
	name := entry.Name
	describe := m.store.DescribeSaved
	if entry.IsRunning() {
		// A live session is the authoritative shape for entries that
		// are both saved and running.
		describe = m.mux.Describe
	}
	events.Preview.Fetch(name)
	return func() tea.Msg {
		text, err := describe(name)
		var lines []string
		if err == nil {
			lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
		}
		return previewLoadedMsg{target: name, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) tea.Cmd {
	if msg.seq != m.preview.seq || msg.target != m.preview.target {
		return nil
	}
	m.preview.loading = false
	if msg.err != nil {
		m.preview.err = msg.err.Error()
		m.preview.lines = nil
		events.Preview.Error(msg.target, msg.err)
		return nil
	}
	m.preview.err = ""
	m.preview.lines = msg.lines
	return nil
}
