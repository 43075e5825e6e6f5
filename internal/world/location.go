package world

// Location is a node in the spatial graph, addressed both by id and by
// integer grid coordinates.
type Location struct {
	ID          string
	Name        string
	Description string
	MapGlyph    rune   // Display glyph on the map window
	Color       string // Hex color for the glyph, empty for default
	X, Y        int

	// Connections maps a direction to the id of the neighboring location.
	// Partial: directions without an exit are simply absent.
	Connections map[Direction]string

	// Characters lists the ids of characters present here, in display order.
	Characters []string
}

// Connection returns the neighboring location id in the given direction.
func (l *Location) Connection(dir Direction) (string, bool) {
	id, ok := l.Connections[dir]
	return id, ok
}

// HasCharacters reports whether anyone can be talked to here.
func (l *Location) HasCharacters() bool {
	return len(l.Characters) > 0
}
