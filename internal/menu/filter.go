package menu

import (
	"sort"
	"strings"

	"github.com/atomicstack/tmux-session-manager/internal/fuzzy"
	"github.com/atomicstack/tmux-session-manager/internal/session"
)

// Match pairs a catalog entry with its fuzzy score and the matched
// character positions for the current query. Matches are replaced as a
// batch on every query or catalog change, never mutated in place.
type Match struct {
	Entry     session.Entry
	Score     int
	Positions []int
}

// Filter produces the ordered match list for a query against the
// catalog.
type Filter struct {
	scorer *fuzzy.Scorer
}

// NewFilter returns a Filter with its own scorer.
func NewFilter() *Filter {
	return &Filter{scorer: fuzzy.NewScorer()}
}

// Apply scores every catalog entry against the query and returns the
// matches ordered by descending score; equal scores are broken by
// shorter name first, then lexicographic name order. An empty query
// returns the whole catalog in its original order with zero scores and
// no highlights, so the default presentation is exactly the catalog
// order.
func (f *Filter) Apply(catalog []session.Entry, query string) []Match {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		matches := make([]Match, len(catalog))
		for i, entry := range catalog {
			matches[i] = Match{Entry: entry}
		}
		return matches
	}
	matches := make([]Match, 0, len(catalog))
	for _, entry := range catalog {
		result, ok := f.scorer.Match(trimmed, entry.Name)
		if !ok {
			continue
		}
		matches = append(matches, Match{Entry: entry, Score: result.Score, Positions: result.Positions})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		a, b := matches[i].Entry.Name, matches[j].Entry.Name
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return matches
}
