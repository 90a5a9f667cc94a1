package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText(`site:instagram.com "johndoe" -inurl:explore`, 20)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != `site:instagram.com "johndoe" -inurl:explore` {
		t.Errorf("wrapText lost words: %q", got)
	}
}

func TestWrapParagraphsKeepsBreaks(t *testing.T) {
	got := wrapParagraphs("first line\nsecond line\n", 40)
	if got != "first line\nsecond line" {
		t.Errorf("wrapParagraphs = %q", got)
	}
}

func TestResultsNavigation(t *testing.T) {
	r := newResults(dork.Instagram("johndoe"))
	if len(r.dorks) != dork.Count(dork.Instagram("johndoe")) {
		t.Fatalf("flattened %d dorks", len(r.dorks))
	}

	r.up()
	if r.cursor != 0 {
		t.Errorf("up at top moved cursor to %d", r.cursor)
	}
	r.nextCategory()
	d, cat, ok := r.selected()
	if !ok || cat.ID != "external" || d.ID != "e1" {
		t.Errorf("nextCategory selected %s/%s", cat.ID, d.ID)
	}
	for i := 0; i < 100; i++ {
		r.down()
	}
	if r.cursor != len(r.dorks)-1 {
		t.Errorf("down past end: cursor %d", r.cursor)
	}
	r.nextCategory()
	if r.cursor != len(r.dorks)-1 {
		t.Errorf("nextCategory in last category moved cursor to %d", r.cursor)
	}
}

func TestResultsEmpty(t *testing.T) {
	r := newResults(nil)
	r.down()
	r.nextCategory()
	if _, _, ok := r.selected(); ok {
		t.Error("empty results should have no selection")
	}
	if !strings.Contains(renderList(r, 10, 40), "Fill in the form") {
		t.Error("empty list should prompt for input")
	}
}

func TestRenderListKeepsCursorVisible(t *testing.T) {
	r := newResults(dork.Person("John", "Doe", dork.PersonOptions{Variations: true}))
	for i := 0; i < len(r.dorks)-1; i++ {
		r.down()
	}
	out := renderList(r, 5, 40)
	if got := strings.Count(out, "\n") + 1; got > 5 {
		t.Errorf("renderList returned %d lines for height 5", got)
	}
	if !strings.Contains(out, "v1") {
		t.Errorf("last dork not visible:\n%s", out)
	}
}

func TestFilterBar(t *testing.T) {
	cats := dork.Email("user@example.com")
	f := newFilterBar(cats)
	if got := f.apply(cats); len(got) != len(cats) {
		t.Errorf("empty filter kept %d of %d categories", len(got), len(cats))
	}

	f.toggle("em_leaks")
	got := f.apply(cats)
	if len(got) != 1 || got[0].ID != "em_leaks" {
		t.Errorf("filter kept %v", got)
	}

	f.toggle("em_leaks")
	if f.activeIDs() != nil {
		t.Errorf("toggling twice should clear the filter, got %v", f.activeIDs())
	}
}

func TestRenderStatusBarFitsWidth(t *testing.T) {
	for _, width := range []int{60, 80, 120} {
		bar := renderStatusBar("Copied i1 to clipboard", "esc home  q quit", width)
		if strings.Contains(bar, "\n") {
			t.Errorf("width %d: status bar wrapped:\n%s", width, bar)
		}
		if got := lipgloss.Width(bar); got != width {
			t.Errorf("width %d: status bar is %d cells", width, got)
		}
	}
}
