package buffer

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, starts or extends the selection; if false clears it
}

// Move moves the cursor. Vertical moves aim for the sticky column (MaxX) and
// keep it; every other move makes the new column the sticky one.
func (s *Session) Move(m Move) {
	prev := s.pos
	prevSelecting := s.sel.IsSelecting()

	next := ClampPoint(s.moveCursor(prev, m), s.buf.Len(), s.buf.lineLen)

	if rs, ok := s.rangeSelector(); ok && m.Extend {
		if !prevSelecting {
			rs.StartSelection(prev)
		}
		rs.ExtendSelection(next)
	} else if prevSelecting {
		s.sel.CancelSelection()
	}

	s.moveCursorTo(next)
	if !isVertical(m) {
		s.maxX = s.pos.X
	}

	if prev != s.pos || prevSelecting != s.sel.IsSelecting() {
		s.version++
	}
}

func isVertical(m Move) bool {
	return m.Unit != MoveDoc && (m.Dir == DirUp || m.Dir == DirDown)
}

func (s *Session) moveCursor(p Point, m Move) Point {
	switch m.Unit {
	case MoveChar:
		return s.moveChar(p, m.Dir)
	case MoveWord:
		return s.moveWord(p, m.Dir)
	case MoveLine:
		return s.moveLine(p, m.Dir)
	case MoveDoc:
		return s.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (s *Session) moveChar(p Point, dir MoveDir) Point {
	row, col := p.Y, p.X
	lastRow := s.buf.Len() - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Point{X: col - 1, Y: row}
		}
		return Point{X: s.buf.lineLen(row - 1), Y: row - 1}
	case DirRight:
		if row == lastRow && col == s.buf.lineLen(lastRow) {
			return p
		}
		if col < s.buf.lineLen(row) {
			return Point{X: col + 1, Y: row}
		}
		return Point{X: 0, Y: row + 1}
	default:
		return s.moveLine(p, dir)
	}
}

func (s *Session) moveWord(p Point, dir MoveDir) Point {
	row, col := p.Y, p.X
	line := s.buf.Line(row)

	switch dir {
	case DirLeft:
		if col == 0 && row > 0 {
			return Point{X: s.buf.lineLen(row - 1), Y: row - 1}
		}
		return Point{X: prevWordBoundary(line, col), Y: row}
	case DirRight:
		if col >= len(line) && row < s.buf.Len()-1 {
			return Point{X: 0, Y: row + 1}
		}
		return Point{X: nextWordBoundary(line, col), Y: row}
	default:
		return s.moveLine(p, dir)
	}
}

func (s *Session) moveLine(p Point, dir MoveDir) Point {
	row := p.Y
	lastRow := s.buf.Len() - 1

	switch dir {
	case DirHome:
		return Point{X: 0, Y: row}
	case DirEnd:
		return Point{X: s.buf.lineLen(row), Y: row}
	case DirUp:
		if row == 0 {
			return Point{X: 0, Y: 0}
		}
		nr := row - 1
		return Point{X: minInt(s.maxX, s.buf.lineLen(nr)), Y: nr}
	case DirDown:
		if row == lastRow {
			return Point{X: s.buf.lineLen(row), Y: row}
		}
		nr := row + 1
		return Point{X: minInt(s.maxX, s.buf.lineLen(nr)), Y: nr}
	default:
		return p
	}
}

func (s *Session) moveDoc(p Point, dir MoveDir) Point {
	lastRow := s.buf.Len() - 1

	switch dir {
	case DirHome, DirUp:
		return Point{X: 0, Y: 0}
	case DirEnd, DirDown:
		return Point{X: s.buf.lineLen(lastRow), Y: lastRow}
	default:
		return p
	}
}

// Word boundary rules:
// - skip blanks, then skip non-blanks
// - the line break is a hard boundary (handled by the caller)
func prevWordBoundary(line string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && isBlank(line[i-1]) {
		i--
	}
	for i > 0 && !isBlank(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && isBlank(line[i]) {
		i++
	}
	for i < len(line) && !isBlank(line[i]) {
		i++
	}
	return i
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
