package fuzzy

import (
	"sort"
	"testing"
)

func TestMatchSubsequence(t *testing.T) {
	s := NewScorer()
	res, ok := s.Match("hw", "home-wifi")
	if !ok {
		t.Fatal("expected 'hw' to match 'home-wifi'")
	}
	if res.Score <= 0 {
		t.Fatalf("expected positive score, got %d", res.Score)
	}
	if len(res.Positions) != 2 {
		t.Fatalf("expected two matched positions, got %v", res.Positions)
	}
	if !sort.IntsAreSorted(res.Positions) {
		t.Fatalf("expected ascending positions, got %v", res.Positions)
	}
}

func TestMatchRejectsNonSubsequence(t *testing.T) {
	s := NewScorer()
	if _, ok := s.Match("ho", "work"); ok {
		t.Fatal("'ho' is not a subsequence of 'work'")
	}
	if _, ok := s.Match("xyz", "home-wifi"); ok {
		t.Fatal("'xyz' is not a subsequence of 'home-wifi'")
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	s := NewScorer()
	res, ok := s.Match("WORK", "my-Workspace")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if res.Score <= 0 {
		t.Fatalf("expected positive score, got %d", res.Score)
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	s := NewScorer()
	res, ok := s.Match("", "anything")
	if !ok {
		t.Fatal("empty query must match")
	}
	if res.Score != 0 || len(res.Positions) != 0 {
		t.Fatalf("empty query must score zero with no positions, got %+v", res)
	}
}

func TestMatchDeterministic(t *testing.T) {
	s := NewScorer()
	first, ok := s.Match("hm", "homework")
	if !ok {
		t.Fatal("expected match")
	}
	for i := 0; i < 5; i++ {
		again, ok := s.Match("hm", "homework")
		if !ok {
			t.Fatal("expected repeat match")
		}
		if again.Score != first.Score {
			t.Fatalf("score changed between runs: %d vs %d", first.Score, again.Score)
		}
		if len(again.Positions) != len(first.Positions) {
			t.Fatalf("positions changed between runs: %v vs %v", first.Positions, again.Positions)
		}
	}
}

func TestWordBoundaryBeatsMidWord(t *testing.T) {
	s := NewScorer()
	boundary, ok := s.Match("wifi", "home-wifi")
	if !ok {
		t.Fatal("expected boundary match")
	}
	midword, ok := s.Match("wifi", "showifiles")
	if !ok {
		t.Fatal("expected mid-word match")
	}
	if boundary.Score <= midword.Score {
		t.Fatalf("expected word-boundary match to outscore mid-word match: %d vs %d",
			boundary.Score, midword.Score)
	}
}
