package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func mustBuffer(t *testing.T, lines []string, opt Options) *Buffer {
	t.Helper()
	b, err := New(lines, opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestBuffer_New_EmptyCreatesOneLine(t *testing.T) {
	b := mustBuffer(t, nil, Options{})
	if got := b.Len(); got != 1 {
		t.Fatalf("len: got %d, want 1", got)
	}
	if got := b.Line(0); got != "" {
		t.Fatalf("line 0: got %q, want empty", got)
	}
	if got, want := b.Margin(), 3; got != want {
		t.Fatalf("margin: got %d, want %d", got, want)
	}
	if got, want := b.Cap(), DefaultMaxLines; got != want {
		t.Fatalf("cap: got %d, want %d", got, want)
	}
}

func TestBuffer_New_RejectsOverCapacity(t *testing.T) {
	_, err := New([]string{"a", "b", "c"}, Options{MaxLines: 2})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err: got %v, want %v", err, ErrCapacityExceeded)
	}
}

func TestBuffer_NewFromText_SplitsAndStripsControlBytes(t *testing.T) {
	b, err := NewFromText("ab\r\nc\x00d\n", Options{})
	if err != nil {
		t.Fatalf("NewFromText: %v", err)
	}
	if got, want := b.Lines(), []string{"ab", "cd", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got, want := b.Text(), "ab\ncd\n"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_New_KeepsHighBytes(t *testing.T) {
	b := mustBuffer(t, []string{"a\xffb\xc3"}, Options{})
	if got, want := b.Line(0), "a\xffb\xc3"; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
}

func TestBuffer_InsertLine_ShiftsDown(t *testing.T) {
	b := mustBuffer(t, []string{"a", "b"}, Options{})

	if err := b.InsertLine(1, "x"); err != nil {
		t.Fatalf("InsertLine: %v", err)
	}
	if err := b.InsertLine(3, "end"); err != nil {
		t.Fatalf("InsertLine at end: %v", err)
	}
	if got, want := b.Lines(), []string{"a", "x", "b", "end"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func TestBuffer_InsertLine_RejectsBadIndexAndCapacity(t *testing.T) {
	b := mustBuffer(t, []string{"a", "b"}, Options{MaxLines: 2})

	if err := b.InsertLine(-1, "x"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("index -1: got %v, want %v", err, ErrOutOfBounds)
	}
	if err := b.InsertLine(3, "x"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("index 3: got %v, want %v", err, ErrOutOfBounds)
	}
	if err := b.InsertLine(0, "x"); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("full: got %v, want %v", err, ErrCapacityExceeded)
	}
	if got, want := b.Lines(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rejected inserts must not mutate: got %q", got)
	}
}

func TestBuffer_RemoveLine_ShiftsUpAndKeepsOneLine(t *testing.T) {
	b := mustBuffer(t, []string{"a", "b", "c"}, Options{})

	if err := b.RemoveLine(1); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if got, want := b.Lines(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if err := b.RemoveLine(2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("remove past end: got %v, want %v", err, ErrOutOfBounds)
	}

	_ = b.RemoveLine(0)
	_ = b.RemoveLine(0)
	if got, want := b.Lines(), []string{""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines after removing all: got %q, want %q", got, want)
	}
}

func TestBuffer_ReplaceLine(t *testing.T) {
	b := mustBuffer(t, []string{"a", "b"}, Options{})

	if err := b.ReplaceLine(1, "x\ny"); err != nil {
		t.Fatalf("ReplaceLine: %v", err)
	}
	if got, want := b.Line(1), "xy"; got != want {
		t.Fatalf("line 1: got %q, want %q", got, want)
	}
	if err := b.ReplaceLine(2, "z"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("replace past end: got %v, want %v", err, ErrOutOfBounds)
	}
}

func TestBuffer_MarginTracksLineCount(t *testing.T) {
	lines := make([]string, 9)
	b := mustBuffer(t, lines, Options{})
	if got, want := b.Margin(), 3; got != want {
		t.Fatalf("margin at 9 lines: got %d, want %d", got, want)
	}

	_ = b.InsertLine(0, "")
	if got, want := b.Margin(), 4; got != want {
		t.Fatalf("margin at 10 lines: got %d, want %d", got, want)
	}

	_ = b.RemoveLine(0)
	if got, want := b.Margin(), 3; got != want {
		t.Fatalf("margin back at 9 lines: got %d, want %d", got, want)
	}
}

func TestBuffer_LinesReturnsCopy(t *testing.T) {
	b := mustBuffer(t, []string{"a"}, Options{})
	lines := b.Lines()
	lines[0] = "mutated"
	if got := b.Line(0); got != "a" {
		t.Fatalf("line changed through copy: %q", got)
	}
}
