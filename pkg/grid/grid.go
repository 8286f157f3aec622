// Package grid converts a 0-based linear index into 2D screen cell
// coordinates, used by cmd/bidiview to place one glyph per terminal-style
// grid cell.
package grid

// GetGridCoords returns the (x, y) cell coordinates of the cols-wide,
// row-major grid position index lands on.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}
