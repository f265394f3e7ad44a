package buffer

import (
	"slices"
	"strings"
)

// DefaultMaxLines is the line capacity used when Options.MaxLines is not set.
const DefaultMaxLines = 1_000_000

type Options struct {
	MaxLines int // default: DefaultMaxLines
}

// Buffer is the line store: an ordered sequence of lines with a fixed
// capacity and the margin derived from the line count.
//
// A Buffer always holds at least one line. Stored lines never contain '\n',
// '\r' or NUL bytes.
type Buffer struct {
	lines  []string
	max    int
	margin int
}

// New builds a Buffer from lines. An empty input yields a single empty line.
func New(lines []string, opt Options) (*Buffer, error) {
	if opt.MaxLines <= 0 {
		opt.MaxLines = DefaultMaxLines
	}
	if len(lines) > opt.MaxLines {
		return nil, ErrCapacityExceeded
	}

	b := &Buffer{
		lines: make([]string, 0, max(len(lines), 1)),
		max:   opt.MaxLines,
	}
	for _, line := range lines {
		b.lines = append(b.lines, sanitizeLine(line))
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
	b.margin = MarginFor(len(b.lines))
	return b, nil
}

// NewFromText builds a Buffer from newline-joined text.
func NewFromText(text string, opt Options) (*Buffer, error) {
	return New(splitLines(text), opt)
}

// Len returns the number of lines (total_lines).
func (b *Buffer) Len() int { return len(b.lines) }

// Cap returns the line capacity.
func (b *Buffer) Cap() int { return b.max }

// Margin returns the gutter width for the current line count.
func (b *Buffer) Margin() int { return b.margin }

// Line returns the line at index, or "" when index is out of range.
func (b *Buffer) Line(index int) string {
	if index < 0 || index >= len(b.lines) {
		return ""
	}
	return b.lines[index]
}

// Lines returns a copy of every line in order.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// InsertLine stores content at index and shifts the lines at >= index down by
// one. index may equal Len() to append.
func (b *Buffer) InsertLine(index int, content string) error {
	if index < 0 || index > len(b.lines) {
		return ErrOutOfBounds
	}
	return b.splice(index, index, []string{content})
}

// RemoveLine drops the line at index and shifts the following lines up.
// Removing the only line leaves a single empty line.
func (b *Buffer) RemoveLine(index int) error {
	if index < 0 || index >= len(b.lines) {
		return ErrOutOfBounds
	}
	return b.splice(index, index+1, nil)
}

// ReplaceLine swaps the line at index for content.
func (b *Buffer) ReplaceLine(index int, content string) error {
	if index < 0 || index >= len(b.lines) {
		return ErrOutOfBounds
	}
	return b.splice(index, index+1, []string{content})
}

// splice replaces the lines in [from, to) with repl. It is the single
// mutation path of the store: bounds and capacity are checked before anything
// changes, and the margin is recomputed afterwards.
func (b *Buffer) splice(from, to int, repl []string) error {
	if from < 0 || to < from || to > len(b.lines) {
		return ErrOutOfBounds
	}
	if len(b.lines)-(to-from)+len(repl) > b.max {
		return ErrCapacityExceeded
	}

	clean := make([]string, len(repl))
	for i, line := range repl {
		clean[i] = sanitizeLine(line)
	}

	// slices.Delete zeroes the vacated tail, so dropped lines are released.
	b.lines = slices.Delete(b.lines, from, to)
	b.lines = slices.Insert(b.lines, from, clean...)
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
	b.margin = MarginFor(len(b.lines))
	return nil
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func sanitizeLine(s string) string {
	if strings.IndexAny(s, "\n\r\x00") < 0 {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n', '\r', 0:
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
