// Package editor provides a Bubble Tea line editor component backed by the
// buffer package.
//
// The package is responsible for key and mouse dispatch, the line-number
// margin, tab-expanded rendering with selection highlighting, the status bar,
// the bottom message line and the save-on-quit prompt. All text state lives
// in a buffer.Session.
package editor
