package buffer

import "github.com/iw2rmb/linedit/clipboard"

// Clipboard holds at most one text blob, lines joined by '\n'.
//
// Set replaces any previous content. Get reports false when nothing is
// stored. Clear drops the content; PasteText calls it once the blob has been
// inserted.
type Clipboard interface {
	Get() (string, bool)
	Set(text string)
	Clear()
}

var (
	_ Clipboard = (*clipboard.Memory)(nil)
	_ Clipboard = (*clipboard.System)(nil)
)
