package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

const noNameLabel = "[No Name]"

func (m Model) statusLeft() string {
	name := noNameLabel
	if m.cfg.Filename != "" {
		name = filepath.Base(m.cfg.Filename)
	}
	if m.Modified() {
		return " " + name + " [+]"
	}
	return " " + name
}

func (m Model) statusRight() string {
	p := m.sess.CursorPoint()
	return fmt.Sprintf("Ln %d, Col %d", p.Y+1, p.X+1)
}

// renderStatusBar lays out the file name on the left and the cursor position
// on the right of a full-width bar. The file name is truncated first when
// the bar is too narrow.
func (m Model) renderStatusBar() string {
	return m.cfg.Style.StatusBar.Render(statusLine(m.statusLeft(), m.statusRight(), m.width))
}

func statusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}

	rw := runewidth.StringWidth(right)
	if rw > width {
		return runewidth.Truncate(right, width, "")
	}
	if runewidth.StringWidth(left)+rw > width {
		if avail := width - rw; avail > 0 {
			left = runewidth.Truncate(left, avail, "…")
		} else {
			left = ""
		}
	}

	pad := width - runewidth.StringWidth(left) - rw
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) renderMessageLine() string {
	if m.prompt.active || m.message == "" {
		return ""
	}
	return m.cfg.Style.Message.Render(runewidth.Truncate(m.message, m.width, "…"))
}
