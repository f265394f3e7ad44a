package editor

import "github.com/iw2rmb/linedit/buffer"

// ScreenToDoc maps editor-local screen coordinates to a document position.
//
// Coordinates are in terminal cells; (0,0) is the top-left of the text area,
// gutter included. Gutter clicks map to column 0, cells past the end of a
// line to its end, and rows past the document to the last line. Cells inside
// a tab map to the tab.
func (m Model) ScreenToDoc(x, y int) buffer.Point {
	c := m.sess.Cursor()
	b := m.sess.Buffer()

	row := clampInt(c.YOffset+max(y, 0), 0, b.Len()-1)
	line := b.Line(row)

	vx := x - b.Margin()
	if vx < 0 {
		return buffer.Point{X: 0, Y: row}
	}
	renderX := vx + buffer.CalcRenderX(line, c.XOffset, m.sess.TabWidth())
	return buffer.Point{X: buffer.FileColForRenderX(line, renderX, m.sess.TabWidth()), Y: row}
}

// DocToScreen maps a document position to editor-local screen coordinates.
//
// ok is false when the position is outside the visible text area.
func (m Model) DocToScreen(p buffer.Point) (x, y int, ok bool) {
	c := m.sess.Cursor()
	b := m.sess.Buffer()

	p = buffer.ClampPoint(p, b.Len(), func(row int) int { return len(b.Line(row)) })
	line := b.Line(p.Y)
	tw := m.sess.TabWidth()

	x = b.Margin() + buffer.CalcRenderX(line, p.X, tw) - buffer.CalcRenderX(line, c.XOffset, tw)
	y = p.Y - c.YOffset

	if y < 0 || y >= m.textRows() {
		return x, y, false
	}
	if x < b.Margin() || x >= m.width {
		return x, y, false
	}
	return x, y, true
}
