// Package core provides the value types shared by the grid view and the
// terminal backends: colors, styles, screen cells and rectangles.
//
// It has no dependencies on the rest of the renderer so that backends and
// views can both import it.
package core
