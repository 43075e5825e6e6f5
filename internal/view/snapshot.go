package view

import "github.com/samdwyer/wayfarer/internal/entity"

// Snapshot is the full render contract emitted after every accepted command:
// player stats, the current narrative text with its speaker, the map window,
// and the control layout. The renderer consumes nothing else.
type Snapshot struct {
	SessionID string
	Dialogue  bool // True when a conversation is active

	PlayerName    string
	Stats         []entity.Stat
	Level         int
	XP            int
	Credits       int
	StatusEffects []string

	// Speaker is the current location while exploring, or the active
	// character in dialogue.
	SpeakerName  string
	SpeakerIcon  rune
	SpeakerColor string
	Text         string

	Map      [MapSize][MapSize]Cell
	Controls [SlotCount]Button
}
