package view

import "github.com/samdwyer/wayfarer/internal/world"

// SlotCount is the fixed number of control slots.
const SlotCount = 15

// Movement buttons live at fixed slots so the controls never shift around
// underneath the player's muscle memory.
const (
	SlotNorth = 1
	SlotWest  = 5
	SlotSouth = 6
	SlotEast  = 7

	// talkSlotStart is the first slot used for character talk buttons.
	talkSlotStart = 10
)

// ButtonKind classifies a control slot's content.
type ButtonKind int

const (
	ButtonNone ButtonKind = iota
	ButtonMove
	ButtonTalk
	ButtonChoice
	ButtonLeave
)

// Button describes one control slot. A zero Button is an inert placeholder.
type Button struct {
	Kind   ButtonKind
	Label  string
	Action Action
}

// IsEmpty reports whether the slot is an inert placeholder.
func (b Button) IsEmpty() bool {
	return b.Kind == ButtonNone
}

// moveSlot maps a direction to its reserved control slot.
func moveSlot(dir world.Direction) int {
	switch dir {
	case world.North:
		return SlotNorth
	case world.West:
		return SlotWest
	case world.South:
		return SlotSouth
	case world.East:
		return SlotEast
	default:
		return -1
	}
}

// moveLabel returns the button label for a direction.
func moveLabel(dir world.Direction) string {
	switch dir {
	case world.North:
		return "North"
	case world.South:
		return "South"
	case world.East:
		return "East"
	case world.West:
		return "West"
	default:
		return "?"
	}
}

// ExploreControls derives the control layout for exploring mode. Directional
// buttons occupy their reserved slots only when the location has that exit.
// Talk buttons map roster index i to slot talkSlotStart+i; a character id
// that does not resolve leaves its slot empty, an already occupied slot is
// never overwritten, and characters past the last slot are dropped.
func ExploreControls(w *world.World, loc *world.Location) [SlotCount]Button {
	var slots [SlotCount]Button
	if loc == nil {
		return slots
	}

	for _, dir := range world.Directions {
		if _, ok := loc.Connection(dir); !ok {
			continue
		}
		slot := moveSlot(dir)
		slots[slot] = Button{
			Kind:   ButtonMove,
			Label:  moveLabel(dir),
			Action: MoveAction(dir),
		}
	}

	for i, charID := range loc.Characters {
		slot := talkSlotStart + i
		if slot >= SlotCount {
			break
		}
		char, ok := w.FindCharacter(charID)
		if !ok {
			continue
		}
		if !slots[slot].IsEmpty() {
			continue
		}
		slots[slot] = Button{
			Kind:   ButtonTalk,
			Label:  "Talk: " + char.Name,
			Action: TalkAction(char.ID),
		}
	}

	return slots
}

// DialogueControls derives the control layout for dialogue mode. Choices fill
// slots 0..N-1 in order, clamped to the slot count; extra choices are dropped.
// A node with no choices (or an unresolved node) gets a single Leave button so
// the conversation can always be exited.
func DialogueControls(node *world.DialogueNode) [SlotCount]Button {
	var slots [SlotCount]Button
	if node == nil || len(node.Choices) == 0 {
		slots[0] = Button{
			Kind:   ButtonLeave,
			Label:  "Leave",
			Action: LeaveAction(),
		}
		return slots
	}

	for i, choice := range node.Choices {
		if i >= SlotCount {
			break
		}
		slots[i] = Button{
			Kind:   ButtonChoice,
			Label:  choice.Text,
			Action: ChooseAction(i),
		}
	}
	return slots
}
