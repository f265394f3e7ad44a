package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/linedit/buffer"
)

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// plainStyle renders without any escape sequences.
func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyle(r, DefaultPalette())
}

// markedStyle wraps the cursor in [] and selections in <> so tests can see
// them without decoding ANSI.
func markedStyle() Style {
	st := plainStyle()
	st.Cursor = st.Cursor.Transform(func(s string) string { return "[" + s + "]" })
	st.Selection = st.Selection.Transform(func(s string) string { return "<" + s + ">" })
	return st
}

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

func TestNew_RejectsOverCapacity(t *testing.T) {
	_, err := New(Config{Lines: []string{"a", "b", "c"}, MaxLines: 2})
	if !errors.Is(err, buffer.ErrCapacityExceeded) {
		t.Fatalf("err: got %v, want %v", err, buffer.ErrCapacityExceeded)
	}
}

func TestNew_EmptyDocumentHasOneLine(t *testing.T) {
	m := newTestModel(t, Config{})
	if got := m.Session().Buffer().Len(); got != 1 {
		t.Fatalf("len: got %d, want 1", got)
	}
	if m.Modified() {
		t.Fatalf("new model should not be modified")
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := newTestModel(t, Config{Lines: []string{"a", "b", "c"}, Style: plainStyle()})
	m = m.Blur()

	m = m.SetSize(20, 5)
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("height after SetSize(20,5): got %d, want %d", got, 5)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_ViewEmptyBeforeSizing(t *testing.T) {
	m := newTestModel(t, Config{Lines: []string{"a"}})
	if got := m.View(); got != "" {
		t.Fatalf("view before size: got %q, want empty", got)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := newTestModel(t, Config{
		Lines:    []string{"one", "two", "three", "four", "five"},
		Filename: "/tmp/notes.txt",
		Style:    plainStyle(),
	})
	m = m.Blur()
	m = m.SetSize(24, 5)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
		"notes.txt   Ln 1, Col 1",
		"",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_MessageLine(t *testing.T) {
	m := newTestModel(t, Config{Lines: []string{"a"}, Style: plainStyle()})
	m = m.SetSize(30, 4)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	lines := viewLines(m)
	if got := lines[len(lines)-1]; got != "Nothing to paste" {
		t.Fatalf("message line: got %q, want %q", got, "Nothing to paste")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	lines = viewLines(m)
	if got := lines[len(lines)-1]; got != "" {
		t.Fatalf("message should clear on next key: got %q", got)
	}
}

func TestView_PromptOverlaysBottomLine(t *testing.T) {
	m := newTestModel(t, Config{Lines: []string{"a"}, Style: plainStyle()})
	m = m.SetSize(40, 4)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ye")})

	lines := viewLines(m)
	if len(lines) != 4 {
		t.Fatalf("view lines: got %d, want 4", len(lines))
	}
	if got := lines[3]; !strings.HasPrefix(got, savePromptLabel+"ye") {
		t.Fatalf("prompt line: got %q, want prefix %q", got, savePromptLabel+"ye")
	}
}
