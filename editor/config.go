package editor

import "github.com/iw2rmb/linedit/buffer"

// Config configures the editor Model.
type Config struct {
	// Initial document lines. Nil or empty starts with one empty line.
	Lines []string

	// Filename is shown in the status bar. It is not opened or written by the
	// editor; hosts persist through OnSave.
	Filename string

	// Style is used as-is; the zero value renders without decoration.
	Style  Style
	KeyMap KeyMap // default: DefaultKeyMap()

	// Clipboard receives copies and feeds pastes. Nil uses an in-memory holder.
	Clipboard buffer.Clipboard

	// Forwarded to buffer.SessionOptions.
	TabWidth int
	MaxLines int

	ReadOnly bool

	// OnSave persists the document. The editor marks the text as saved only
	// when it returns nil.
	OnSave func(lines []string) error

	// OnChange is called after every text change.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
