// Package dialogue provides the conversation tree walk for character
// interactions. It is pure: it never mutates the character or any session
// state, it only resolves transitions.
package dialogue

import "github.com/samdwyer/wayfarer/internal/world"

// Outcome classifies the result of advancing a conversation.
type Outcome int

const (
	// OutcomeNext means the conversation moved to another node.
	OutcomeNext Outcome = iota
	// OutcomeEnd means the player chose a terminating choice.
	OutcomeEnd
	// OutcomeDeadEnd means the current node has no choices to advance with.
	OutcomeDeadEnd
	// OutcomeMissing means the node or choice could not be resolved.
	// Malformed trees degrade to this instead of panicking.
	OutcomeMissing
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNext:
		return "next"
	case OutcomeEnd:
		return "end"
	case OutcomeDeadEnd:
		return "dead_end"
	case OutcomeMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Advance resolves one player choice on the named node of a character's tree.
// On OutcomeNext the returned string is the next node name; for every other
// outcome it is empty. The next node's existence is not checked here: the
// caller resolves it on the following render and treats a miss defensively.
func Advance(char *world.Character, node string, choiceIndex int) (string, Outcome) {
	if char == nil {
		return "", OutcomeMissing
	}
	current, ok := char.Node(node)
	if !ok {
		return "", OutcomeMissing
	}
	if len(current.Choices) == 0 {
		return "", OutcomeDeadEnd
	}
	if choiceIndex < 0 || choiceIndex >= len(current.Choices) {
		return "", OutcomeMissing
	}
	choice := current.Choices[choiceIndex]
	if choice.IsTerminal() {
		return "", OutcomeEnd
	}
	return choice.Next, OutcomeNext
}

// Node resolves the named node of a character's tree.
func Node(char *world.Character, name string) (*world.DialogueNode, bool) {
	if char == nil {
		return nil, false
	}
	return char.Node(name)
}
