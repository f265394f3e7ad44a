// Package clipboard provides the buffer.Clipboard implementations.
//
// Memory keeps the content inside the process. System mirrors it to the
// operating system clipboard and falls back to memory when the OS clipboard
// is unavailable (no X11/Wayland helper, headless sessions).
package clipboard

import (
	"log"
	"strings"

	sysclip "github.com/atotto/clipboard"
)

// Memory is a process-local clipboard. The zero value is empty and ready to
// use.
type Memory struct {
	text string
	ok   bool
}

func (c *Memory) Get() (string, bool) { return c.text, c.ok }

func (c *Memory) Set(text string) {
	c.text = text
	c.ok = true
}

// Clear drops the content; Get reports false until the next Set.
func (c *Memory) Clear() {
	c.text = ""
	c.ok = false
}

// System writes through to the OS clipboard and reads it back on Get. The
// zero value keeps the content in memory only; NewSystem attaches the OS
// clipboard.
type System struct {
	mem Memory

	read  func() (string, error)
	write func(string) error

	// warned limits the unavailable-clipboard log line to one per direction.
	warnedRead, warnedWrite bool
}

// NewSystem returns a System clipboard. When the platform has no clipboard
// support it still works, backed by memory only.
func NewSystem() *System {
	s := &System{}
	if !sysclip.Unsupported {
		s.read = sysclip.ReadAll
		s.write = sysclip.WriteAll
	} else {
		log.Printf("clipboard: system clipboard unsupported, using memory")
	}
	return s
}

// Get returns the OS clipboard content with line endings normalised to '\n'.
// It falls back to the last Set value when the OS clipboard cannot be read
// or is empty.
func (s *System) Get() (string, bool) {
	if s.read != nil {
		text, err := s.read()
		switch {
		case err != nil:
			if !s.warnedRead {
				log.Printf("clipboard: read: %v", err)
				s.warnedRead = true
			}
		case text != "":
			return normalizeNewlines(text), true
		}
	}
	return s.mem.Get()
}

// Set stores text in memory and copies it to the OS clipboard.
func (s *System) Set(text string) {
	s.mem.Set(text)
	if s.write == nil {
		return
	}
	if err := s.write(text); err != nil && !s.warnedWrite {
		log.Printf("clipboard: write: %v", err)
		s.warnedWrite = true
	}
}

// Clear drops the content from memory and empties the OS clipboard, so a
// later Get reports false.
func (s *System) Clear() {
	s.mem.Clear()
	if s.write == nil {
		return
	}
	if err := s.write(""); err != nil && !s.warnedWrite {
		log.Printf("clipboard: clear: %v", err)
		s.warnedWrite = true
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
