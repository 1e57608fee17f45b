package menu

import (
	"testing"

	"github.com/atomicstack/tmux-session-manager/internal/session"
)

func testCatalog() []session.Entry {
	return []session.Entry{
		{Name: "dotfiles", Source: session.Both, ConfigPath: "/tmp/dotfiles.yaml"},
		{Name: "home-wifi", Source: session.Saved, ConfigPath: "/tmp/home-wifi.yaml"},
		{Name: "homework", Source: session.Running},
		{Name: "work", Source: session.Saved, ConfigPath: "/tmp/work.yaml"},
	}
}

func matchNames(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Entry.Name
	}
	return names
}

func TestApplyEmptyQueryKeepsCatalogOrder(t *testing.T) {
	f := NewFilter()
	matches := f.Apply(testCatalog(), "")
	want := []string{"dotfiles", "home-wifi", "homework", "work"}
	got := matchNames(matches)
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	for _, m := range matches {
		if m.Score != 0 || len(m.Positions) != 0 {
			t.Fatalf("expected zero score and no highlights for empty query, got %+v", m)
		}
	}
}

func TestApplyBlankQueryKeepsCatalogOrder(t *testing.T) {
	f := NewFilter()
	matches := f.Apply(testCatalog(), "   ")
	if len(matches) != 4 {
		t.Fatalf("expected all entries for blank query, got %d", len(matches))
	}
}

func TestApplyExcludesNonSubsequenceMatches(t *testing.T) {
	f := NewFilter()
	matches := f.Apply(testCatalog(), "ho")
	got := matchNames(matches)
	for _, name := range got {
		if name == "work" {
			t.Fatalf("work is not a subsequence match for %q, got %v", "ho", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected home-wifi and homework, got %v", got)
	}
}

func TestApplyRecordsHighlightPositions(t *testing.T) {
	f := NewFilter()
	matches := f.Apply([]session.Entry{{Name: "homework"}}, "hw")
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	positions := matches[0].Positions
	if len(positions) != 2 {
		t.Fatalf("expected two highlight positions, got %v", positions)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i-1] >= positions[i] {
			t.Fatalf("expected ascending positions, got %v", positions)
		}
	}
}

func TestApplyTieBreaksShorterThenLexicographic(t *testing.T) {
	catalog := []session.Entry{
		{Name: "abcd"},
		{Name: "abc"},
		{Name: "abd"},
	}
	f := NewFilter()
	matches := f.Apply(catalog, "ab")
	got := matchNames(matches)
	if len(got) != 3 {
		t.Fatalf("expected three matches, got %v", got)
	}
	// All three are prefix matches with equal scores: the shorter names
	// win, equal lengths fall back to name order.
	if got[len(got)-1] != "abcd" {
		t.Fatalf("expected the longest name last, got %v", got)
	}
	idxABC, idxABD := -1, -1
	for i, name := range got {
		switch name {
		case "abc":
			idxABC = i
		case "abd":
			idxABD = i
		}
	}
	if idxABC > idxABD {
		t.Fatalf("expected abc before abd, got %v", got)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	f := NewFilter()
	first := matchNames(f.Apply(testCatalog(), "o"))
	for i := 0; i < 5; i++ {
		again := matchNames(f.Apply(testCatalog(), "o"))
		if len(again) != len(first) {
			t.Fatalf("match count changed between runs: %v vs %v", first, again)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("order changed between runs: %v vs %v", first, again)
			}
		}
	}
}
