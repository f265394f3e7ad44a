// Package buffer implements the byte-oriented document model for linedit.
//
// A Buffer is an ordered store of lines. A Session owns one Buffer together
// with the cursor, a Selector and a Clipboard, and carries every edit
// operation.
//
// Coordinates are 0-based file coordinates: Point.Y is the line index and
// Point.X is a byte column. One byte is one column; tabs only widen when a
// column is mapped to a rendered cell (see CalcRenderX).
package buffer
