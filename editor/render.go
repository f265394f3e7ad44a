package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellClass int

const (
	cellText cellClass = iota
	cellSelected
	cellCursor
)

// renderRows renders the visible part of the document, one string per text
// row, starting at the viewport's top line.
func (m Model) renderRows() []string {
	rows := m.textRows()
	cols := m.textCols()
	top := m.sess.Cursor().YOffset
	total := m.sess.Buffer().Len()

	out := make([]string, 0, rows)
	for row := top; row < top+rows && row < total; row++ {
		out = append(out, m.renderGutter(row)+m.renderLine(row, cols))
	}
	return out
}

// renderLine renders row from the horizontal offset, at most cols cells wide.
// The cell after the last byte stands for the line break: it shows the
// cursor at end of line and the selection running onto the next line.
func (m Model) renderLine(row, cols int) string {
	line := m.sess.Buffer().Line(row)
	cur := m.sess.CursorPoint()
	sel := m.sess.Selector()
	tabWidth := m.sess.TabWidth()

	var (
		sb    strings.Builder
		run   strings.Builder
		class cellClass
		used  int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(class).Render(run.String()))
		run.Reset()
	}

	for col := m.sess.Cursor().XOffset; col <= len(line) && used < cols; col++ {
		c := cellText
		switch {
		case m.focused && row == cur.Y && col == cur.X:
			c = cellCursor
		case sel.IsSelected(row, col):
			c = cellSelected
		}
		if col == len(line) && c == cellText {
			break
		}

		cells := " "
		if col < len(line) {
			cells = cellsForByte(line[col], tabWidth)
		}
		if used+len(cells) > cols {
			cells = cells[:cols-used]
		}

		if c != class {
			flush()
			class = c
		}
		run.WriteString(cells)
		used += len(cells)
	}
	flush()
	return sb.String()
}

func (m Model) styleFor(c cellClass) lipgloss.Style {
	switch c {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}

// cellsForByte returns the cells a byte occupies on screen. Bytes that are
// not printable ASCII render as '?' so every column stays one cell wide.
func cellsForByte(c byte, tabWidth int) string {
	switch {
	case c == '\t':
		return strings.Repeat(" ", tabWidth)
	case c < 0x20 || c >= 0x7f:
		return "?"
	default:
		return string(c)
	}
}
