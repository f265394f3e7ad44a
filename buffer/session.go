package buffer

import "github.com/iw2rmb/linedit/clipboard"

// DefaultTabWidth is the render width of '\t' when SessionOptions.TabWidth is
// not set.
const DefaultTabWidth = 4

// SessionOptions configures a Session.
type SessionOptions struct {
	MaxLines  int       // default: DefaultMaxLines
	TabWidth  int       // render width of '\t', default: DefaultTabWidth
	Selector  Selector  // default: NewSelection()
	Clipboard Clipboard // default: in-memory holder
}

// Session is the editor state: the line store, the cursor and viewport
// origin, the selection and the clipboard.
//
// Operations run one at a time and leave every part consistent before
// returning: margin, line count, cursor bounds and selection are re-derived
// together. A Session is not safe for concurrent use.
type Session struct {
	buf  *Buffer
	sel  Selector
	clip Clipboard

	// pos is the cursor in file coordinates. The exported Cursor is derived
	// from it so a margin change never shifts the file column.
	pos     Point
	xOffset int
	yOffset int
	maxX    int

	tabWidth int

	version     uint64
	textVersion uint64
}

// NewSession builds a Session over lines with the cursor at the start of the
// document.
func NewSession(lines []string, opt SessionOptions) (*Session, error) {
	buf, err := New(lines, Options{MaxLines: opt.MaxLines})
	if err != nil {
		return nil, err
	}
	if opt.TabWidth <= 0 {
		opt.TabWidth = DefaultTabWidth
	}
	if opt.Selector == nil {
		opt.Selector = NewSelection()
	}
	if opt.Clipboard == nil {
		opt.Clipboard = &clipboard.Memory{}
	}
	return &Session{
		buf:      buf,
		sel:      opt.Selector,
		clip:     opt.Clipboard,
		tabWidth: opt.TabWidth,
	}, nil
}

// Buffer exposes the line store for rendering and persistence. Callers that
// mutate it directly must call ClampCursor afterwards.
func (s *Session) Buffer() *Buffer { return s.buf }

func (s *Session) Selector() Selector { return s.sel }

func (s *Session) Clipboard() Clipboard { return s.clip }

func (s *Session) TabWidth() int { return s.tabWidth }

// Version increments on every observable change: text, cursor or selection.
func (s *Session) Version() uint64 { return s.version }

// TextVersion increments only when the text changes.
func (s *Session) TextVersion() uint64 { return s.textVersion }

// Lines returns a copy of the document lines.
func (s *Session) Lines() []string { return s.buf.Lines() }

func (s *Session) Text() string { return s.buf.Text() }

// rangeSelector returns the selection as a RangeSelector when the configured
// Selector supports ranges.
func (s *Session) rangeSelector() (RangeSelector, bool) {
	rs, ok := s.sel.(RangeSelector)
	return rs, ok
}

// SelectionRange returns the active selection as a half-open range.
func (s *Session) SelectionRange() (start, end Point, ok bool) {
	rs, ok := s.rangeSelector()
	if !ok {
		return Point{}, Point{}, false
	}
	return rs.SelectionRange()
}

// CancelSelection drops the selection, if any.
func (s *Session) CancelSelection() {
	if !s.sel.IsSelecting() {
		s.sel.CancelSelection()
		return
	}
	s.sel.CancelSelection()
	s.version++
}

// SelectAll selects the whole document and moves the cursor to its end.
func (s *Session) SelectAll() {
	rs, ok := s.rangeSelector()
	if !ok {
		return
	}
	last := s.buf.Len() - 1
	end := Point{X: s.buf.lineLen(last), Y: last}
	rs.StartSelection(Point{})
	rs.ExtendSelection(end)
	s.moveCursorTo(end)
	s.maxX = s.pos.X
	s.version++
}

// SelectTo moves the cursor to p and extends the selection to it, starting a
// selection at the current cursor when none is active. Without range support
// it only moves the cursor.
func (s *Session) SelectTo(p Point) {
	rs, ok := s.rangeSelector()
	if !ok {
		s.SetCursorFile(p)
		return
	}
	if !s.sel.IsSelecting() {
		rs.StartSelection(s.pos)
	}
	s.moveCursorTo(p)
	rs.ExtendSelection(s.pos)
	s.maxX = s.pos.X
	s.version++
}

func (s *Session) touch(text bool) {
	s.version++
	if text {
		s.textVersion++
	}
}
