package buffer

// Cursor is the on-screen cursor together with the viewport origin.
//
// X is the screen column including the margin and Y is the screen row.
// XOffset and YOffset are the file column and line shown at the left and top
// edges of the text area. MaxX is the sticky file column that vertical
// movement tries to restore.
//
// File column = X - margin + XOffset; file row = Y + YOffset.
type Cursor struct {
	X, Y             int
	XOffset, YOffset int
	MaxX             int
}

// FileCol returns the cursor's file column for the given margin.
func (c Cursor) FileCol(margin int) int { return c.X - margin + c.XOffset }

// FileRow returns the cursor's line index.
func (c Cursor) FileRow() int { return c.Y + c.YOffset }

// Cursor returns the cursor in screen terms.
func (s *Session) Cursor() Cursor {
	return Cursor{
		X:       s.pos.X - s.xOffset + s.buf.Margin(),
		Y:       s.pos.Y - s.yOffset,
		XOffset: s.xOffset,
		YOffset: s.yOffset,
		MaxX:    s.maxX,
	}
}

// CursorPoint returns the cursor in file coordinates.
func (s *Session) CursorPoint() Point { return s.pos }

// SetCursorFile places the cursor at p (file coordinates), clamped into the
// document, and makes its column the sticky column.
func (s *Session) SetCursorFile(p Point) {
	prev := s.pos
	s.moveCursorTo(p)
	s.maxX = s.pos.X
	if s.pos != prev {
		s.version++
	}
}

// ClampCursor re-derives the cursor from the document bounds: the row is
// clamped to [0, Len()), the column to [0, len(line)], and the viewport
// origin never lies past the cursor.
func (s *Session) ClampCursor() {
	s.moveCursorTo(s.pos)
}

func (s *Session) moveCursorTo(p Point) {
	p = ClampPoint(p, s.buf.Len(), s.buf.lineLen)
	s.pos = p

	if s.yOffset > p.Y {
		s.yOffset = p.Y
	}
	if s.yOffset >= s.buf.Len() {
		s.yOffset = s.buf.Len() - 1
	}
	if s.yOffset < 0 {
		s.yOffset = 0
	}
	if s.xOffset > p.X {
		s.xOffset = p.X
	}
	if s.xOffset < 0 {
		s.xOffset = 0
	}
}

// Follow scrolls the viewport so the cursor is visible inside a text area of
// rows lines and cols rendered cells (the margin is not part of cols).
// Non-positive dimensions leave that axis untouched.
func (s *Session) Follow(rows, cols int) {
	if rows > 0 {
		if s.pos.Y < s.yOffset {
			s.yOffset = s.pos.Y
		}
		if s.pos.Y >= s.yOffset+rows {
			s.yOffset = s.pos.Y - rows + 1
		}
	}

	if cols > 0 {
		if s.pos.X < s.xOffset {
			s.xOffset = s.pos.X
		}
		s.xOffset = s.firstVisibleCol(cols)
	}
}

// firstVisibleCol returns the smallest column at or after xOffset from which
// the cells up to the cursor fit in fewer than cols cells. The walk is
// bounded by cols.
func (s *Session) firstVisibleCol(cols int) int {
	line := s.buf.Line(s.pos.Y)
	x, used := s.pos.X, 0
	for x > s.xOffset {
		w := 1
		if line[x-1] == '\t' {
			w = s.tabWidth
		}
		if used+w >= cols {
			break
		}
		used += w
		x--
	}
	return x
}

// CalcRenderX maps a byte column of line to a rendered column: each tab
// occupies tabWidth cells, every other byte one cell.
func CalcRenderX(line string, fileCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	fileCol = clampInt(fileCol, 0, len(line))

	rx := 0
	for i := 0; i < fileCol; i++ {
		if line[i] == '\t' {
			rx += tabWidth
			continue
		}
		rx++
	}
	return rx
}

// FileColForRenderX is the inverse of CalcRenderX: it returns the byte column
// whose cells contain renderX. Cells past the end of line map to len(line).
func FileColForRenderX(line string, renderX, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if renderX <= 0 {
		return 0
	}

	rx := 0
	for i := 0; i < len(line); i++ {
		w := 1
		if line[i] == '\t' {
			w = tabWidth
		}
		if renderX < rx+w {
			return i
		}
		rx += w
	}
	return len(line)
}
