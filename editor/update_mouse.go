package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linedit/buffer"
)

// wheelLines is how many lines one wheel notch moves the cursor.
const wheelLines = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.prompt.active {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.scrollLines(buffer.DirUp)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollLines(buffer.DirDown)
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		if !m.mouseInText(msg.X, msg.Y) {
			return m, nil
		}

		p := m.ScreenToDoc(msg.X, msg.Y)
		if msg.Shift {
			m.sess.SelectTo(p)
		} else {
			m.sess.CancelSelection()
			m.sess.SetCursorFile(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToText(msg.X, msg.Y)
		m.sess.SelectTo(m.ScreenToDoc(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func (m Model) scrollLines(dir buffer.MoveDir) {
	for i := 0; i < wheelLines; i++ {
		m.sess.Move(buffer.Move{Unit: buffer.MoveLine, Dir: dir})
	}
}

func (m Model) mouseInText(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.textRows()
}

func (m Model) clampMouseToText(x, y int) (int, int) {
	return clampInt(x, 0, max(m.width-1, 0)), clampInt(y, 0, max(m.textRows()-1, 0))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
