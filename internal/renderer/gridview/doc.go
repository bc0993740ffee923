// Package gridview draws the grid on a backend and resolves screen positions
// back to cell addresses.
//
// The screen area of a view is split into a header row, a filter row and the
// data rows below them, with a row-number gutter on the left. Frozen columns
// and rows are drawn at the start of the data area and never scroll. Every
// column reserves its last screen cell for a border, which is also the handle
// for mouse resizing.
package gridview
