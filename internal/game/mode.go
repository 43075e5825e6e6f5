// Package game provides the session state machine that arbitrates between
// exploring and dialogue.
package game

// Mode represents the current session mode.
type Mode int

const (
	// ModeExplore is the default mode where the player moves between locations.
	ModeExplore Mode = iota
	// ModeDialogue is active while a conversation with a character is open.
	ModeDialogue
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}
