package editor

import "fmt"

// gutterText returns the line-number cell for row: the 1-based number right
// aligned between one blank on each side, margin cells wide.
func gutterText(row, margin int) string {
	digits := max(margin-2, 1)
	return fmt.Sprintf(" %*d ", digits, row+1)
}

func (m Model) renderGutter(row int) string {
	st := m.cfg.Style.LineNum
	if row == m.sess.CursorPoint().Y {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(gutterText(row, m.sess.Buffer().Margin()))
}
