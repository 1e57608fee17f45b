// Package fuzzy scores a query against candidate labels using the fzf
// matching algorithm, returning the score together with the matched
// character positions so the UI can highlight them.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

// Result holds the outcome of scoring one label against a query.
type Result struct {
	Score     int
	Positions []int
}

// Scorer matches queries against labels. The zero value is not usable;
// construct with NewScorer. A Scorer reuses an internal allocation slab
// between calls and is not safe for concurrent use.
type Scorer struct {
	slab *util.Slab
}

// NewScorer returns a Scorer backed by a fresh allocation slab.
func NewScorer() *Scorer {
	return &Scorer{slab: util.MakeSlab(100*1024, 2048)}
}

// Match reports whether every rune of query appears in label as an
// in-order, case-insensitive subsequence. On a match it returns the
// score and the ascending rune positions of the matched characters.
// An empty query matches everything with score zero and no positions.
//
// Scoring is fully determined by (query, label): contiguous runs and
// word-boundary hits raise the score, gaps between matched characters
// lower it.
func (s *Scorer) Match(query, label string) (Result, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Result{}, true
	}
	pattern := []rune(strings.ToLower(trimmed))
	chars := util.ToChars([]byte(label))
	res, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, s.slab)
	if res.Start < 0 {
		return Result{}, false
	}
	var pos []int
	if positions != nil {
		pos = append(pos, *positions...)
		sort.Ints(pos)
	}
	return Result{Score: res.Score, Positions: pos}, true
}
