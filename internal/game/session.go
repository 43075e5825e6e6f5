package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/dialogue"
	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/view"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Session is the live game session: the player's position plus the current
// interaction state. All mutation goes through Apply, one action at a time,
// and every accepted action is followed by one Snapshot for the renderer.
// The session owns its state exclusively; the world is shared read-only.
type Session struct {
	id     string
	world  *world.World
	player *entity.Player

	mode     Mode
	location *world.Location

	// Dialogue state, valid only while mode == ModeDialogue.
	activeCharacter *world.Character
	activeNode      string
}

// New creates a session in explore mode at the player's starting location.
func New(w *world.World, p *entity.Player) (*Session, error) {
	loc, ok := w.FindLocation(p.LocationID)
	if !ok {
		return nil, fmt.Errorf("starting location %q not found", p.LocationID)
	}
	return &Session{
		id:       uuid.NewString(),
		world:    w,
		player:   p,
		mode:     ModeExplore,
		location: loc,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Location returns the player's current location.
func (s *Session) Location() *world.Location {
	return s.location
}

// ActiveCharacter returns the conversation partner, or nil while exploring.
func (s *Session) ActiveCharacter() *world.Character {
	return s.activeCharacter
}

// ActiveNode returns the current dialogue node name, or "" while exploring.
func (s *Session) ActiveNode() string {
	return s.activeNode
}

// Apply processes one action against the session. Actions that are invalid
// in the current mode are silently ignored: rapid input can legitimately race
// a mode change, so a locked-out action is a no-op, not an error.
func (s *Session) Apply(ctx context.Context, action view.Action) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.apply")
	defer span.End()

	switch action.Kind {
	case view.ActionMove:
		s.move(action.Dir)
	case view.ActionTalk:
		s.talk(action.CharacterID)
	case view.ActionChoose:
		s.choose(action.Choice)
	case view.ActionLeave:
		s.leave()
	}

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("session.action", action.Kind.String()),
		attribute.String("session.mode", s.mode.String()),
		attribute.String("session.location", s.location.ID),
	)
}

// move steps the player in the given direction. Ignored during dialogue;
// a missing or unresolvable exit leaves the player where they are.
func (s *Session) move(dir world.Direction) {
	if s.mode != ModeExplore {
		return
	}
	next, ok := s.world.Step(s.location, dir)
	if !ok {
		return
	}
	s.location = next
	s.player.LocationID = next.ID
}

// talk opens a conversation with the named character, always at the start
// node. An unknown character id is a no-op: the session stays in explore mode
// rather than entering a conversation with nobody in it.
func (s *Session) talk(characterID string) {
	if s.mode != ModeExplore {
		return
	}
	char, ok := s.world.FindCharacter(characterID)
	if !ok {
		return
	}
	s.mode = ModeDialogue
	s.activeCharacter = char
	s.activeNode = world.StartNode
}

// choose advances the active conversation by the indexed choice.
func (s *Session) choose(index int) {
	if s.mode != ModeDialogue {
		return
	}
	next, outcome := dialogue.Advance(s.activeCharacter, s.activeNode, index)
	switch outcome {
	case dialogue.OutcomeNext:
		s.activeNode = next
	case dialogue.OutcomeEnd, dialogue.OutcomeMissing:
		s.endDialogue()
	case dialogue.OutcomeDeadEnd:
		// Dead ends hold their node; the Leave control is the way out.
	}
}

// leave exits the active conversation regardless of its node.
func (s *Session) leave() {
	if s.mode != ModeDialogue {
		return
	}
	s.endDialogue()
}

func (s *Session) endDialogue() {
	s.mode = ModeExplore
	s.activeCharacter = nil
	s.activeNode = ""
}

// Snapshot derives the full render contract from the current state. It is
// read-only: calling it any number of times yields identical descriptors
// until the next Apply.
func (s *Session) Snapshot() view.Snapshot {
	snap := view.Snapshot{
		SessionID:     s.id,
		Dialogue:      s.mode == ModeDialogue,
		PlayerName:    s.player.Name,
		Stats:         append([]entity.Stat(nil), s.player.Stats...),
		Level:         s.player.Level,
		XP:            s.player.XP,
		Credits:       s.player.Credits,
		StatusEffects: append([]string(nil), s.player.StatusEffects...),
		Map:           view.MapWindow(s.world, s.location.X, s.location.Y),
	}

	if s.mode == ModeDialogue {
		// A node that no longer resolves degrades to an empty line with a
		// Leave control instead of crashing the conversation.
		node, _ := dialogue.Node(s.activeCharacter, s.activeNode)
		snap.SpeakerName = s.activeCharacter.Name
		snap.SpeakerIcon = s.activeCharacter.Icon
		snap.SpeakerColor = s.activeCharacter.Color
		if node != nil {
			snap.Text = node.Text
		}
		snap.Controls = view.DialogueControls(node)
		return snap
	}

	snap.SpeakerName = s.location.Name
	snap.SpeakerIcon = s.location.MapGlyph
	snap.SpeakerColor = s.location.Color
	snap.Text = s.location.Description
	snap.Controls = view.ExploreControls(s.world, s.location)
	return snap
}
