package world

import (
	"fmt"

	"github.com/samdwyer/wayfarer/internal/gamedata"
)

// point keys the coordinate index.
type point struct {
	x, y int
}

// World is the immutable catalog of locations and characters, built once at
// load time. All queries are total: a miss returns ok=false, never a panic.
type World struct {
	locations  map[string]*Location
	characters map[string]*Character
	byCoord    map[point]*Location
}

// Build constructs and validates a World from loaded definitions. Every id
// referenced by a connection, a character roster, or a dialogue choice must
// resolve, so malformed content is caught here instead of mid-session.
func Build(locs []gamedata.LocationDef, chars []gamedata.CharacterDef) (*World, error) {
	w := &World{
		locations:  make(map[string]*Location, len(locs)),
		characters: make(map[string]*Character, len(chars)),
		byCoord:    make(map[point]*Location, len(locs)),
	}

	for _, def := range chars {
		if def.ID == "" {
			return nil, fmt.Errorf("character %q: missing id", def.Name)
		}
		if _, exists := w.characters[def.ID]; exists {
			return nil, fmt.Errorf("character %q: duplicate id", def.ID)
		}
		c := &Character{
			ID:       def.ID,
			Name:     def.Name,
			Icon:     def.IconRune(),
			Color:    def.Color,
			Dialogue: make(map[string]*DialogueNode, len(def.Dialogue)),
		}
		for name, nodeDef := range def.Dialogue {
			node := &DialogueNode{
				Text:    nodeDef.Text,
				Choices: make([]Choice, 0, len(nodeDef.Choices)),
			}
			for _, choiceDef := range nodeDef.Choices {
				node.Choices = append(node.Choices, Choice{
					Text: choiceDef.Text,
					Next: choiceDef.Next,
				})
			}
			c.Dialogue[name] = node
		}
		if _, ok := c.Dialogue[StartNode]; !ok {
			return nil, fmt.Errorf("character %q: dialogue has no %q node", def.ID, StartNode)
		}
		for name, node := range c.Dialogue {
			for _, choice := range node.Choices {
				if choice.Next == EndSentinel {
					continue
				}
				if _, ok := c.Dialogue[choice.Next]; !ok {
					return nil, fmt.Errorf("character %q: node %q: choice %q targets unknown node %q",
						def.ID, name, choice.Text, choice.Next)
				}
			}
		}
		w.characters[def.ID] = c
	}

	for _, def := range locs {
		if def.ID == "" {
			return nil, fmt.Errorf("location %q: missing id", def.Name)
		}
		if _, exists := w.locations[def.ID]; exists {
			return nil, fmt.Errorf("location %q: duplicate id", def.ID)
		}
		l := &Location{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			MapGlyph:    def.GlyphRune(),
			Color:       def.Color,
			X:           def.X,
			Y:           def.Y,
			Connections: make(map[Direction]string, len(def.Connections)),
			Characters:  append([]string(nil), def.Characters...),
		}
		for dirName, targetID := range def.Connections {
			dir, ok := ParseDirection(dirName)
			if !ok {
				return nil, fmt.Errorf("location %q: unknown direction %q", def.ID, dirName)
			}
			l.Connections[dir] = targetID
		}
		p := point{def.X, def.Y}
		if other, occupied := w.byCoord[p]; occupied {
			return nil, fmt.Errorf("location %q: coordinates (%d,%d) already used by %q",
				def.ID, def.X, def.Y, other.ID)
		}
		w.locations[def.ID] = l
		w.byCoord[p] = l
	}

	// Cross-references can only be checked once both catalogs are complete.
	for _, l := range w.locations {
		for dir, targetID := range l.Connections {
			if _, ok := w.locations[targetID]; !ok {
				return nil, fmt.Errorf("location %q: %s connects to unknown location %q",
					l.ID, dir, targetID)
			}
		}
		for _, charID := range l.Characters {
			if _, ok := w.characters[charID]; !ok {
				return nil, fmt.Errorf("location %q: lists unknown character %q", l.ID, charID)
			}
		}
	}

	return w, nil
}

// FindLocation returns the location with the given id.
func (w *World) FindLocation(id string) (*Location, bool) {
	l, ok := w.locations[id]
	return l, ok
}

// FindCharacter returns the character with the given id.
func (w *World) FindCharacter(id string) (*Character, bool) {
	c, ok := w.characters[id]
	return c, ok
}

// LocationAt returns the location occupying the given grid coordinates.
func (w *World) LocationAt(x, y int) (*Location, bool) {
	l, ok := w.byCoord[point{x, y}]
	return l, ok
}

// Step resolves a single move from loc in the given direction. A missing
// connection, or a connection whose target id does not resolve, is a
// no-move rather than an error.
func (w *World) Step(loc *Location, dir Direction) (*Location, bool) {
	if loc == nil {
		return nil, false
	}
	targetID, ok := loc.Connections[dir]
	if !ok {
		return nil, false
	}
	target, ok := w.locations[targetID]
	if !ok {
		return nil, false
	}
	return target, true
}

// LocationCount returns the number of locations in the catalog.
func (w *World) LocationCount() int {
	return len(w.locations)
}

// CharacterCount returns the number of characters in the catalog.
func (w *World) CharacterCount() int {
	return len(w.characters)
}
