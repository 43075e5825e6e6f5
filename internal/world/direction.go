// Package world provides the immutable location graph and character catalog.
package world

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists all directions in display order.
var Directions = [4]Direction{North, South, East, West}

// String returns the lowercase direction name as used in content files.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the grid offset of a single step in this direction.
// North is up on screen, so it decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection converts a content-file direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north":
		return North, true
	case "south":
		return South, true
	case "east":
		return East, true
	case "west":
		return West, true
	default:
		return 0, false
	}
}
