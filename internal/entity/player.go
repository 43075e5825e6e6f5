// Package entity provides the player record.
package entity

import "github.com/samdwyer/wayfarer/internal/gamedata"

// Stat is one named integer gauge, kept in display order.
type Stat struct {
	Name  string
	Value int
}

// Player holds the player's session state. LocationID is the only field the
// game mutates during play; everything else is fixed at load for now.
type Player struct {
	Name          string
	Stats         []Stat
	Level         int
	XP            int
	Credits       int
	StatusEffects []string
	LocationID    string
}

// NewPlayer builds a player from the loaded starting record.
func NewPlayer(def gamedata.PlayerDef) *Player {
	stats := make([]Stat, 0, len(def.Stats))
	for _, s := range def.Stats {
		stats = append(stats, Stat{Name: s.Name, Value: s.Value})
	}
	return &Player{
		Name:          def.Name,
		Stats:         stats,
		Level:         def.Level,
		XP:            def.XP,
		Credits:       def.Credits,
		StatusEffects: append([]string(nil), def.StatusEffects...),
		LocationID:    def.Location,
	}
}

// Stat returns the value of the named gauge, or false if the player has no
// such gauge.
func (p *Player) Stat(name string) (int, bool) {
	for _, s := range p.Stats {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}
