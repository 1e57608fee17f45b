package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sizedTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, _, _ := newTestModel(t, opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewListsEntriesWithMarkers(t *testing.T) {
	m := sizedTestModel(t, Options{})
	view := m.View()
	for _, name := range []string{"dotfiles", "home-wifi", "homework", "work"} {
		if !strings.Contains(view, name) {
			t.Fatalf("expected view to list %s", name)
		}
	}
	if !strings.Contains(view, "(running)") {
		t.Fatalf("expected running marker in view")
	}
	if !strings.Contains(view, "* ") {
		t.Fatalf("expected unsaved marker for running-only entries")
	}
}

func TestViewShowsNoMatchesMessage(t *testing.T) {
	m := sizedTestModel(t, Options{})
	typeQuery(m, "zzz")
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-matches message, got:\n%s", view)
	}
}

func TestViewShowsQueryInPrompt(t *testing.T) {
	m := sizedTestModel(t, Options{})
	typeQuery(m, "ho")
	view := m.View()
	firstLine := strings.SplitN(view, "\n", 2)[0]
	if !strings.Contains(firstLine, "ho") {
		t.Fatalf("expected query in prompt line, got %q", firstLine)
	}
}

func TestViewStatusLineShowsErrors(t *testing.T) {
	m := sizedTestModel(t, Options{})
	selectEntry(t, m, "work")
	pressKey(m, tea.KeyCtrlS)
	view := m.View()
	if !strings.Contains(view, "Error:") {
		t.Fatalf("expected error in status line, got:\n%s", view)
	}
}

func TestViewRendersPreviewPanel(t *testing.T) {
	m := sizedTestModel(t, Options{ShowPreview: true})
	cmd := m.ensurePreview()
	if cmd == nil {
		t.Fatalf("expected a preview fetch command")
	}
	m.Update(cmd())
	view := m.View()
	if !strings.Contains(view, "Preview: dotfiles") {
		t.Fatalf("expected preview title, got:\n%s", view)
	}
	if !strings.Contains(view, "live layout of dotfiles") {
		t.Fatalf("expected preview body, got:\n%s", view)
	}
}

func TestViewHidesPreviewOnNarrowTerminal(t *testing.T) {
	m, _, _ := newTestModel(t, Options{ShowPreview: true})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.previewPanelWidth() != 0 {
		t.Fatalf("expected no preview split on a narrow terminal")
	}
}

func TestConfirmPopupSplicedOverView(t *testing.T) {
	m := sizedTestModel(t, Options{ConfirmBeforeDelete: true})
	selectEntry(t, m, "work")
	pressKey(m, tea.KeyCtrlD)
	view := m.View()
	if !strings.Contains(view, `Delete saved session "work"?`) {
		t.Fatalf("expected confirmation question, got:\n%s", view)
	}
	if !strings.Contains(view, "home-wifi") {
		t.Fatalf("expected the list to stay visible behind the popup")
	}
}

func TestHelpPopupListsBindings(t *testing.T) {
	m := sizedTestModel(t, Options{})
	pressKey(m, tea.KeyCtrlH)
	view := m.View()
	for _, hint := range []string{"ctrl+k", "ctrl+s", "toggle preview"} {
		if !strings.Contains(view, hint) {
			t.Fatalf("expected help popup to mention %q, got:\n%s", hint, view)
		}
	}
}

func TestRenderHighlightedCoversWholeName(t *testing.T) {
	out := renderHighlighted("homework", []int{0, 4}, styles.Item, styles.ItemMatch)
	plain := out
	for _, ch := range "homework" {
		if !strings.ContainsRune(plain, ch) {
			t.Fatalf("expected rendered name to contain %q", ch)
		}
	}
}
