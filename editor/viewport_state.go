package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the line index rendered at text row 0.
	TopRow int
	// LeftCol is the file column rendered at the first text cell.
	LeftCol int
	// VisibleRows and VisibleCols size the text area, margin excluded.
	VisibleRows int
	VisibleCols int
	// Margin is the gutter width.
	Margin int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	c := m.sess.Cursor()
	return ViewportState{
		TopRow:      c.YOffset,
		LeftCol:     c.XOffset,
		VisibleRows: m.textRows(),
		VisibleCols: m.textCols(),
		Margin:      m.sess.Buffer().Margin(),
	}
}
