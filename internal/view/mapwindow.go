package view

import "github.com/samdwyer/wayfarer/internal/world"

const (
	// MapSize is the edge length of the visible map window.
	MapSize = 5
	// mapReach is how far the window extends from the center in each direction.
	mapReach = MapSize / 2
)

// Cell describes one map window cell for the renderer.
type Cell struct {
	Glyph   rune
	Color   string // Hex color from content, empty for default
	Present bool   // A location exists at this cell
	Player  bool   // This is the player's cell
}

// MapWindow computes the 5×5 window of cells centered on (cx, cy). The result
// is row-major: the outer index walks y from cy-2 to cy+2, the inner index
// walks x from cx-2 to cx+2. Consumers index into it positionally, so this
// ordering is part of the contract. The center cell is always marked as the
// player's, even when no location exists there.
func MapWindow(w *world.World, cx, cy int) [MapSize][MapSize]Cell {
	var grid [MapSize][MapSize]Cell
	for dy := -mapReach; dy <= mapReach; dy++ {
		for dx := -mapReach; dx <= mapReach; dx++ {
			cell := Cell{}
			if loc, ok := w.LocationAt(cx+dx, cy+dy); ok {
				cell.Glyph = loc.MapGlyph
				cell.Color = loc.Color
				cell.Present = true
			}
			if dx == 0 && dy == 0 {
				cell.Player = true
			}
			grid[dy+mapReach][dx+mapReach] = cell
		}
	}
	return grid
}
