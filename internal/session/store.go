package session

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

const configExt = ".yaml"

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,30}$`)

// ValidateName checks a session name against the allowed character set.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("session name must be 1-30 characters long and only contain [a-zA-Z0-9_-]")
	}
	return nil
}

// Store reads and writes saved session layouts under a single
// directory, one YAML file per session.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created
// lazily on the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// ConfigPath returns the config file path for a session name.
func (s *Store) ConfigPath(name string) string {
	return filepath.Join(s.dir, name+configExt)
}

// ListSaved returns the saved session names mapped to their config
// paths. A missing storage directory yields an empty map.
func (s *Store) ListSaved() (map[string]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read storage dir %s: %w", s.dir, err)
	}
	saved := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), configExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), configExt)
		saved[name] = filepath.Join(s.dir, entry.Name())
	}
	return saved, nil
}

// Save writes the layout to <name>.yaml, creating the storage
// directory when missing.
func (s *Store) Save(layout Layout) error {
	if err := ValidateName(layout.Name); err != nil {
		return err
	}
	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", layout.Name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", s.dir, err)
	}
	path := s.ConfigPath(layout.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes the layout saved under name. A missing file
// produces an error that names the closest saved session, if any.
func (s *Store) Load(name string) (Layout, error) {
	data, err := os.ReadFile(s.ConfigPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, s.notFound(name)
		}
		return Layout{}, fmt.Errorf("read config for %s: %w", name, err)
	}
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("decode config for %s: %w", name, err)
	}
	if layout.Name == "" {
		layout.Name = name
	}
	return layout, nil
}

// Delete removes the config file for name.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.ConfigPath(name)); err != nil {
		if os.IsNotExist(err) {
			return s.notFound(name)
		}
		return fmt.Errorf("delete config for %s: %w", name, err)
	}
	return nil
}

// notFound builds the error for a missing saved session, appending the
// closest saved name as a suggestion when one ranks.
func (s *Store) notFound(name string) error {
	if suggestion := s.closest(name); suggestion != "" {
		return fmt.Errorf("no saved session %q (did you mean %q?)", name, suggestion)
	}
	return fmt.Errorf("no saved session %q", name)
}

func (s *Store) closest(name string) string {
	saved, err := s.ListSaved()
	if err != nil || len(saved) == 0 {
		return ""
	}
	names := make([]string, 0, len(saved))
	for n := range saved {
		names = append(names, n)
	}
	sort.Strings(names)
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return best.Target
}
