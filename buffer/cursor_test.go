package buffer

import (
	"strings"
	"testing"
)

func TestCursor_DerivedFromFilePosition(t *testing.T) {
	s := mustSession(t, []string{"abcdef", "gh"})
	s.SetCursorFile(Point{X: 4, Y: 1})

	assertCursor(t, s, Point{X: 2, Y: 1})

	c := s.Cursor()
	m := s.Buffer().Margin()
	if c.X != m+2 || c.Y != 1 {
		t.Fatalf("cursor: got (%d,%d), want (%d,1)", c.X, c.Y, m+2)
	}
	if got := c.FileCol(m); got != 2 {
		t.Fatalf("file col: got %d, want 2", got)
	}
	if got := c.FileRow(); got != 1 {
		t.Fatalf("file row: got %d, want 1", got)
	}
}

func TestCursor_ClampAfterExternalChange(t *testing.T) {
	s := mustSession(t, []string{"abc", "defgh"})
	s.SetCursorFile(Point{X: 5, Y: 1})

	if err := s.Buffer().RemoveLine(1); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	s.ClampCursor()
	assertCursor(t, s, Point{X: 3, Y: 0})
}

func TestFollow_ScrollsVertically(t *testing.T) {
	lines := make([]string, 20)
	s := mustSession(t, lines)

	s.SetCursorFile(Point{Y: 12})
	s.Follow(5, 80)
	c := s.Cursor()
	if c.YOffset != 8 || c.Y != 4 {
		t.Fatalf("after scroll down: yoffset=%d y=%d, want 8, 4", c.YOffset, c.Y)
	}

	s.SetCursorFile(Point{Y: 3})
	s.Follow(5, 80)
	c = s.Cursor()
	if c.YOffset != 3 || c.Y != 0 {
		t.Fatalf("after scroll up: yoffset=%d y=%d, want 3, 0", c.YOffset, c.Y)
	}
}

func TestFollow_ScrollsHorizontally(t *testing.T) {
	s := mustSession(t, []string{"0123456789abcdef"})

	s.SetCursorFile(Point{X: 12})
	s.Follow(10, 5)
	c := s.Cursor()
	if c.XOffset != 8 {
		t.Fatalf("xoffset: got %d, want 8", c.XOffset)
	}
	if got, want := c.X, s.Buffer().Margin()+4; got != want {
		t.Fatalf("screen x: got %d, want %d", got, want)
	}

	s.Move(Move{Unit: MoveLine, Dir: DirHome})
	s.Follow(10, 5)
	if got := s.Cursor().XOffset; got != 0 {
		t.Fatalf("xoffset after home: got %d, want 0", got)
	}
}

func TestFollow_CountsTabCells(t *testing.T) {
	s, err := NewSession([]string{"\t\tab"}, SessionOptions{TabWidth: 4})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.SetCursorFile(Point{X: 3})
	s.Follow(1, 6)
	if got := s.Cursor().XOffset; got != 1 {
		t.Fatalf("xoffset: got %d, want 1", got)
	}

	line := s.Buffer().Line(0)
	if got := CalcRenderX(line, 3, 4) - CalcRenderX(line, 1, 4); got != 5 {
		t.Fatalf("cursor cell: got %d, want 5", got)
	}
}

func TestFollow_LongLine(t *testing.T) {
	line := strings.Repeat("x", 1<<20)
	s := mustSession(t, []string{line})

	s.Move(Move{Unit: MoveLine, Dir: DirEnd})
	for i := 0; i < 100; i++ {
		s.Follow(24, 80)
	}
	if got, want := s.Cursor().XOffset, len(line)-79; got != want {
		t.Fatalf("xoffset: got %d, want %d", got, want)
	}

	s.Move(Move{Unit: MoveChar, Dir: DirLeft})
	s.Follow(24, 80)
	if got, want := s.Cursor().XOffset, len(line)-79; got != want {
		t.Fatalf("xoffset after stepping left: got %d, want %d", got, want)
	}

	s.Move(Move{Unit: MoveLine, Dir: DirHome})
	s.Follow(24, 80)
	if got := s.Cursor().XOffset; got != 0 {
		t.Fatalf("xoffset after home: got %d, want 0", got)
	}
}
