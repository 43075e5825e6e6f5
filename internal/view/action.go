// Package view derives render-ready descriptors from game state. Everything
// here is pure: the same inputs always produce identical descriptors, so the
// presentation layer can diff them cheaply and tests can compare values.
package view

import "github.com/samdwyer/wayfarer/internal/world"

// ActionKind classifies what activating a control does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionTalk
	ActionChoose
	ActionLeave
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionTalk:
		return "talk"
	case ActionChoose:
		return "choose"
	case ActionLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Action is the abstract command a control carries. Buttons hold data, not
// handlers: the presentation layer turns an Action back into a session call,
// so the core never references anything UI-side.
type Action struct {
	Kind        ActionKind
	Dir         world.Direction // ActionMove
	CharacterID string          // ActionTalk
	Choice      int             // ActionChoose
}

// MoveAction returns the action for a step in the given direction.
func MoveAction(dir world.Direction) Action {
	return Action{Kind: ActionMove, Dir: dir}
}

// TalkAction returns the action that opens a conversation.
func TalkAction(characterID string) Action {
	return Action{Kind: ActionTalk, CharacterID: characterID}
}

// ChooseAction returns the action that selects a dialogue choice by index.
func ChooseAction(index int) Action {
	return Action{Kind: ActionChoose, Choice: index}
}

// LeaveAction returns the action that exits the current conversation.
func LeaveAction() Action {
	return Action{Kind: ActionLeave}
}
