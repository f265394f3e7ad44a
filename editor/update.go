package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linedit/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.message = ""

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.report(m.insertText(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	s := m.sess

	switch {
	case key.Matches(msg, km.Save):
		m.report(m.save())
	case key.Matches(msg, km.Quit):
		return m.requestQuit()

	case key.Matches(msg, km.Left):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		s.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		s.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		s.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		s.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		s.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.SelectAll):
		s.SelectAll()
	case key.Matches(msg, km.Cancel):
		s.CancelSelection()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.report(s.DeleteBackward())
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.report(s.DeleteForward())
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.report(s.NewLine())
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			m.report(s.AddTab())
		}

	case key.Matches(msg, km.Copy):
		m.report(s.CopySelection())
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.report(s.CutSelection())
		} else {
			m.report(s.CopySelection())
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.report(s.PasteText())
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.report(m.insertText(string(msg.Runes)))
			}
		}
	}

	return m, nil
}

// insertText types s byte by byte. Line breaks split the line; NUL bytes are
// dropped. Text that would take the document past its line limit is
// rejected before any of it is inserted.
func (m Model) insertText(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	b := m.sess.Buffer()
	if b.Len()+strings.Count(s, "\n") > b.Cap() {
		return buffer.ErrCapacityExceeded
	}

	for i := 0; i < len(s); i++ {
		var err error
		switch c := s[i]; c {
		case 0:
			continue
		case '\n':
			err = m.sess.NewLine()
		default:
			err = m.sess.InsertChar(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) save() error {
	if m.cfg.OnSave == nil {
		return ErrNoSaveTarget
	}
	lines := m.sess.Lines()
	if err := m.cfg.OnSave(lines); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	m.savedTextVersion = m.sess.TextVersion()
	m.message = fmt.Sprintf("Saved %d lines", len(lines))
	log.Printf("saved %q (%d lines)", m.cfg.Filename, len(lines))
	return nil
}

func (m Model) requestQuit() (Model, tea.Cmd) {
	if !m.Modified() {
		return m, quit
	}
	m.prompt = savePrompt{active: true}
	m.message = ""
	return m, nil
}

// report turns an edit error into the bottom-line message. Edits that fail
// leave the document unchanged.
func (m *Model) report(err error) {
	if err == nil {
		return
	}
	log.Printf("edit: %v", err)

	switch {
	case errors.Is(err, buffer.ErrEmptyClipboard):
		m.message = "Nothing to paste"
	case errors.Is(err, buffer.ErrCapacityExceeded):
		m.message = fmt.Sprintf("Line limit of %d reached", m.sess.Buffer().Cap())
	case errors.Is(err, buffer.ErrInvalidChar):
		m.message = "Invalid character"
	default:
		m.message = "Error: " + err.Error()
	}
}
