package world

// StartNode is the entry node of every dialogue tree.
const StartNode = "start"

// EndSentinel is the reserved choice target that terminates a conversation.
const EndSentinel = "end"

// Character is an NPC with an independent dialogue tree.
type Character struct {
	ID    string
	Name  string
	Icon  rune   // Display glyph in the narrative panel and talk buttons
	Color string // Hex color for the icon, empty for default

	// Dialogue maps node names to nodes. Every character has a "start" node.
	Dialogue map[string]*DialogueNode
}

// DialogueNode is one conversational state: a spoken line plus the player's
// choices out of it. A node with no choices is a dead end.
type DialogueNode struct {
	Text    string
	Choices []Choice
}

// Choice is a player-selectable transition out of a dialogue node. Next names
// another node in the same character's tree, or EndSentinel.
type Choice struct {
	Text string
	Next string
}

// Node returns the named dialogue node, or false if the tree has no such node.
func (c *Character) Node(name string) (*DialogueNode, bool) {
	n, ok := c.Dialogue[name]
	return n, ok
}

// IsTerminal reports whether the choice ends the conversation.
func (ch Choice) IsTerminal() bool {
	return ch.Next == EndSentinel
}
