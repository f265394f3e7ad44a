package buffer

import "errors"

// Errors returned by buffer operations. An operation that returns one of
// these has not mutated any state.
var (
	// ErrOutOfBounds indicates a row outside the current document.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrCapacityExceeded indicates the document would grow past its line capacity.
	ErrCapacityExceeded = errors.New("line capacity exceeded")

	// ErrEmptyClipboard indicates a paste with nothing to paste.
	ErrEmptyClipboard = errors.New("clipboard is empty")

	// ErrInvalidChar indicates a character that cannot be stored inside a line.
	ErrInvalidChar = errors.New("invalid character")
)
