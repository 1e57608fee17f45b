package session

import "sort"

// Source records where a session entry was discovered.
type Source int

const (
	// Saved entries exist only as a config file on disk.
	Saved Source = iota
	// Running entries exist only as a live tmux session.
	Running
	// Both entries have a config file and a live session.
	Both
)

func (s Source) String() string {
	switch s {
	case Saved:
		return "saved"
	case Running:
		return "running"
	case Both:
		return "saved+running"
	default:
		return "unknown"
	}
}

// Entry is one addressable session: a saved config, a live tmux
// session, or both under the same name.
type Entry struct {
	Name       string
	Source     Source
	ConfigPath string
}

// HasConfig reports whether the entry is backed by a config file.
func (e Entry) HasConfig() bool {
	return e.Source == Saved || e.Source == Both
}

// IsRunning reports whether a live tmux session exists for the entry.
func (e Entry) IsRunning() bool {
	return e.Source == Running || e.Source == Both
}

// BuildCatalog merges saved config names and running session names into
// one ordered entry list. Names present in both lists collapse into a
// single Both entry. The result is sorted by name so the menu's default
// (unfiltered) presentation is stable across invocations.
func BuildCatalog(saved map[string]string, running []string) []Entry {
	live := make(map[string]struct{}, len(running))
	for _, name := range running {
		live[name] = struct{}{}
	}
	entries := make([]Entry, 0, len(saved)+len(running))
	for name, path := range saved {
		source := Saved
		if _, ok := live[name]; ok {
			source = Both
		}
		entries = append(entries, Entry{Name: name, Source: source, ConfigPath: path})
	}
	for _, name := range running {
		if _, ok := saved[name]; ok {
			continue
		}
		entries = append(entries, Entry{Name: name, Source: Running})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
