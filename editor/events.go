package editor

import "github.com/iw2rmb/linedit/buffer"

// ChangeEvent describes the document after a text change.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Point
	LineCount   int
	Modified    bool
}

func (m Model) changeEvent() ChangeEvent {
	return ChangeEvent{
		Version:     m.sess.Version(),
		TextVersion: m.sess.TextVersion(),
		Cursor:      m.sess.CursorPoint(),
		LineCount:   m.sess.Buffer().Len(),
		Modified:    m.Modified(),
	}
}
