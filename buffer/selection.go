package buffer

// Selector is what edit operations need to know about the selection.
type Selector interface {
	IsSelecting() bool
	IsSelected(row, col int) bool
	CancelSelection()
}

// RangeSelector is a Selector that can be driven by cursor movement.
//
// SelectionRange reports the selected half-open range [start, end) in
// document order.
type RangeSelector interface {
	Selector
	StartSelection(anchor Point)
	ExtendSelection(to Point)
	SelectionRange() (start, end Point, ok bool)
}

// Selection is the default RangeSelector: an anchor and a moving end.
// An empty range does not count as selecting.
type Selection struct {
	active bool
	anchor Point
	end    Point
}

func NewSelection() *Selection { return &Selection{} }

func (s *Selection) StartSelection(anchor Point) {
	s.active = true
	s.anchor = anchor
	s.end = anchor
}

func (s *Selection) ExtendSelection(to Point) {
	if !s.active {
		s.StartSelection(to)
		return
	}
	s.end = to
}

func (s *Selection) CancelSelection() {
	*s = Selection{}
}

func (s *Selection) IsSelecting() bool {
	return s.active && s.anchor != s.end
}

// Anchor returns the point the selection was started from.
func (s *Selection) Anchor() (Point, bool) {
	return s.anchor, s.active
}

func (s *Selection) SelectionRange() (start, end Point, ok bool) {
	if !s.IsSelecting() {
		return Point{}, Point{}, false
	}
	start, end = OrderPoints(s.anchor, s.end)
	return start, end, true
}

// IsSelected reports whether the cell at (row, col) lies in the selection.
// Column len(line) stands for the line break and is selected when the
// selection continues onto the next line.
func (s *Selection) IsSelected(row, col int) bool {
	start, end, ok := s.SelectionRange()
	if !ok {
		return false
	}
	p := Point{X: col, Y: row}
	return ComparePoints(p, start) >= 0 && ComparePoints(p, end) < 0
}
