package buffer

import "strings"

// TabSize is the number of spaces AddTab inserts.
//
// It is independent of the render width of '\t' (SessionOptions.TabWidth);
// the two can disagree and column math then differs between typed indents
// and literal tabs loaded from a file.
const TabSize = 4

// InsertChar splices c into the current line at the cursor's file column and
// advances the cursor by one column.
func (s *Session) InsertChar(c byte) error {
	if c == '\n' || c == '\r' || c == 0 {
		return ErrInvalidChar
	}
	return s.insertAtCursor(string([]byte{c}))
}

// AddTab splices TabSize spaces at the cursor's file column and advances the
// cursor by TabSize.
func (s *Session) AddTab() error {
	return s.insertAtCursor(strings.Repeat(" ", TabSize))
}

func (s *Session) insertAtCursor(text string) error {
	p := ClampPoint(s.pos, s.buf.Len(), s.buf.lineLen)
	line := s.buf.Line(p.Y)

	if err := s.buf.ReplaceLine(p.Y, line[:p.X]+text+line[p.X:]); err != nil {
		return err
	}
	s.finishEdit(Point{X: p.X + len(text), Y: p.Y})
	return nil
}

// NewLine splits the current line at the cursor. The right part becomes a new
// line right after it and the cursor moves to that line's start.
func (s *Session) NewLine() error {
	p := ClampPoint(s.pos, s.buf.Len(), s.buf.lineLen)
	line := s.buf.Line(p.Y)

	if err := s.buf.splice(p.Y, p.Y+1, []string{line[:p.X], line[p.X:]}); err != nil {
		return err
	}
	s.xOffset = 0
	s.finishEdit(Point{X: 0, Y: p.Y + 1})
	return nil
}

// Deletion removes the bytes from start through end, inclusive. The points
// may be given in either order.
//
// On a single row the range stays inside the line: a start at or past the
// end of the line is a no-op and an end past it is clamped to the last byte.
// Across rows, the start line is cut at start.X and the end line's bytes
// after end.X are appended to it; the lines in between and the end line go
// away.
//
// A start column below zero on a non-first line, with no active selection
// and a single-point range, is the backspace case: the line is merged onto
// the end of the previous one. Any other negative column is clamped to 0.
// With no active selection, a start before the beginning of the document is
// a no-op. Rows past the end of the document are rejected.
func (s *Session) Deletion(start, end Point) error {
	selecting := s.sel.IsSelecting()
	start, end = OrderPoints(start, end)

	total := s.buf.Len()
	if start.Y < 0 || start.Y >= total || end.Y >= total {
		return ErrOutOfBounds
	}
	if !selecting && start.Y == 0 && start.X < 0 {
		return nil
	}

	if !selecting && start.X < 0 && start == end {
		return s.joinWithPrevious(start.Y)
	}

	start.X = max(start.X, 0)
	end.X = max(end.X, 0)

	if start.Y == end.Y {
		n := s.buf.lineLen(start.Y)
		if start.X >= n {
			return nil
		}
		return s.deleteSpan(start, Point{X: min(end.X, n-1) + 1, Y: end.Y})
	}
	return s.deleteSpan(start, Point{X: min(end.X+1, s.buf.lineLen(end.Y)), Y: end.Y})
}

// deleteSpan removes the half-open range [start, end) and replaces the rows
// it touches with one merged line. Columns must already be within their
// lines, except that start.X may sit past the end of its line.
func (s *Session) deleteSpan(start, end Point) error {
	first := s.buf.Line(start.Y)
	head := first[:min(start.X, len(first))]
	tail := s.buf.Line(end.Y)[end.X:]

	if err := s.buf.splice(start.Y, end.Y+1, []string{head + tail}); err != nil {
		return err
	}
	s.finishEdit(Point{X: len(head), Y: start.Y})
	return nil
}

func (s *Session) joinWithPrevious(row int) error {
	prev := s.buf.Line(row - 1)
	if err := s.buf.splice(row-1, row+1, []string{prev + s.buf.Line(row)}); err != nil {
		return err
	}
	s.finishEdit(Point{X: len(prev), Y: row - 1})
	return nil
}

// DeleteBackward applies backspace semantics: the selection if any, else the
// byte before the cursor (or the line break before the line).
func (s *Session) DeleteBackward() error {
	if s.sel.IsSelecting() {
		return s.DeleteSelection()
	}
	p := s.pos
	before := Point{X: p.X - 1, Y: p.Y}
	return s.Deletion(before, before)
}

// DeleteForward applies delete-key semantics: the selection if any, else the
// byte under the cursor. At the end of a line it joins the next line; at the
// end of the document it does nothing.
func (s *Session) DeleteForward() error {
	if s.sel.IsSelecting() {
		return s.DeleteSelection()
	}
	p := s.pos
	if p.X < s.buf.lineLen(p.Y) {
		return s.Deletion(p, p)
	}
	if p.Y+1 >= s.buf.Len() {
		return nil
	}
	return s.deleteSpan(p, Point{X: 0, Y: p.Y + 1})
}

// DeleteSelection deletes the active selection, if any. A selection that
// runs onto the next line takes the line break with it.
func (s *Session) DeleteSelection() error {
	start, end, ok := s.SelectionRange()
	if !ok {
		return nil
	}
	return s.deleteSelected(start, end)
}

func (s *Session) deleteSelected(start, end Point) error {
	total := s.buf.Len()
	if start.Y < 0 || end.Y >= total {
		return ErrOutOfBounds
	}
	start = ClampPoint(start, total, s.buf.lineLen)
	end = ClampPoint(end, total, s.buf.lineLen)
	return s.deleteSpan(start, end)
}

// CopyText stores the text between start and end in the clipboard. The first
// row is taken from start.X, the last row up to end.X (exclusive), and rows
// in between in full; rows are joined by '\n'. Copying cancels the selection.
func (s *Session) CopyText(start, end Point) error {
	start, end = OrderPoints(start, end)
	if start.Y < 0 || end.Y >= s.buf.Len() {
		return ErrOutOfBounds
	}

	var sb strings.Builder
	for y := start.Y; y <= end.Y; y++ {
		line := s.buf.Line(y)
		from, to := 0, len(line)
		if y == start.Y {
			from = clampInt(start.X, 0, len(line))
		}
		if y == end.Y {
			to = clampInt(end.X, 0, len(line))
		}
		if to > from {
			sb.WriteString(line[from:to])
		}
		if y < end.Y {
			sb.WriteByte('\n')
		}
	}

	s.clip.Set(sb.String())
	s.CancelSelection()
	return nil
}

// CopySelection copies the active selection, if any.
func (s *Session) CopySelection() error {
	start, end, ok := s.SelectionRange()
	if !ok {
		return nil
	}
	return s.CopyText(start, end)
}

// CutSelection copies then deletes the active selection.
func (s *Session) CutSelection() error {
	start, end, ok := s.SelectionRange()
	if !ok {
		return nil
	}
	if err := s.CopyText(start, end); err != nil {
		return err
	}
	return s.deleteSelected(start, end)
}

// PasteText inserts the clipboard as whole lines: each '\n'-separated
// segment becomes one new line, in order, starting at the cursor's row; the
// existing lines from that row on move down. The cursor stays on its row
// index, which now holds the first pasted line.
//
// The clipboard is consumed: once the lines are in, it is cleared and a
// second paste reports ErrEmptyClipboard. A failed paste leaves it intact.
func (s *Session) PasteText() error {
	text, ok := s.clip.Get()
	if !ok || text == "" {
		return ErrEmptyClipboard
	}

	row := clampInt(s.pos.Y, 0, s.buf.Len()-1)
	segments := strings.Split(text, "\n")
	if err := s.buf.splice(row, row, segments); err != nil {
		return err
	}
	s.clip.Clear()
	s.finishEdit(Point{X: s.pos.X, Y: row})
	return nil
}

// finishEdit places the cursor after a text change, makes its column the
// sticky column and drops the selection.
func (s *Session) finishEdit(p Point) {
	s.moveCursorTo(p)
	s.maxX = s.pos.X
	s.sel.CancelSelection()
	s.touch(true)
}
