package game

import (
	"context"
	"reflect"
	"testing"

	"github.com/samdwyer/wayfarer/internal/entity"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/view"
	"github.com/samdwyer/wayfarer/internal/world"
)

// newTestSession builds a session over a small fixture world: location alpha
// at (0,0) connects north to beta at (0,-1); beta has no exits. Alpha hosts a
// talkative guide and a silent watcher (whose dialogue is a dead end).
func newTestSession(t *testing.T) *Session {
	t.Helper()

	locs := []gamedata.LocationDef{
		{
			ID: "alpha", Name: "Alpha", Description: "A bright room.", Glyph: "A", X: 0, Y: 0,
			Connections: map[string]string{"north": "beta"},
			Characters:  []string{"guide", "watcher"},
		},
		{
			ID: "beta", Name: "Beta", Description: "A dead end.", Glyph: "B", X: 0, Y: -1,
		},
	}
	chars := []gamedata.CharacterDef{
		{
			ID: "guide", Name: "Guide", Icon: "g",
			Dialogue: map[string]gamedata.DialogueNodeDef{
				"start": {
					Text: "Hi",
					Choices: []gamedata.ChoiceDef{
						{Text: "Bye", Next: "end"},
						{Text: "More", Next: "more"},
					},
				},
				"more": {
					Text:    "Still here.",
					Choices: []gamedata.ChoiceDef{{Text: "Bye", Next: "end"}},
				},
			},
		},
		{
			ID: "watcher", Name: "Watcher", Icon: "w",
			Dialogue: map[string]gamedata.DialogueNodeDef{
				"start": {Text: "..."},
			},
		},
	}

	w, err := world.Build(locs, chars)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	player := entity.NewPlayer(gamedata.PlayerDef{
		Name:     "Tester",
		Stats:    []gamedata.StatDef{{Name: "grit", Value: 3}},
		Level:    1,
		Credits:  10,
		Location: "alpha",
	})

	s, err := New(w, player)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewSessionStartsExploring(t *testing.T) {
	s := newTestSession(t)

	if s.Mode() != ModeExplore {
		t.Errorf("Mode() = %v, want ModeExplore", s.Mode())
	}
	if s.Location().ID != "alpha" {
		t.Errorf("Location() = %q, want alpha", s.Location().ID)
	}
	if s.ID() == "" {
		t.Error("session has no id")
	}
}

func TestNewSessionUnknownStartLocation(t *testing.T) {
	w, err := world.Build(nil, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	player := entity.NewPlayer(gamedata.PlayerDef{Location: "nowhere"})

	if _, err := New(w, player); err == nil {
		t.Error("New should fail for an unresolvable starting location")
	}
}

func TestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("connected exit moves the player", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.MoveAction(world.North))
		if s.Location().ID != "beta" {
			t.Errorf("Location() = %q, want beta", s.Location().ID)
		}
	})

	t.Run("absent exit is a no-op", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.MoveAction(world.East))
		if s.Location().ID != "alpha" {
			t.Errorf("Location() = %q, want alpha", s.Location().ID)
		}
	})

	t.Run("exit-less location strands the walker", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.MoveAction(world.North))
		for _, dir := range world.Directions {
			s.Apply(ctx, view.MoveAction(dir))
		}
		if s.Location().ID != "beta" {
			t.Errorf("Location() = %q, want beta", s.Location().ID)
		}

		// All reserved movement slots are empty here.
		snap := s.Snapshot()
		for _, slot := range []int{view.SlotNorth, view.SlotWest, view.SlotSouth, view.SlotEast} {
			if !snap.Controls[slot].IsEmpty() {
				t.Errorf("slot %d = %+v, want empty", slot, snap.Controls[slot])
			}
		}
	})

	t.Run("ignored during dialogue", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		for _, dir := range world.Directions {
			s.Apply(ctx, view.MoveAction(dir))
		}
		if s.Location().ID != "alpha" {
			t.Errorf("Location() = %q, want alpha", s.Location().ID)
		}
		if s.Mode() != ModeDialogue {
			t.Errorf("Mode() = %v, want ModeDialogue", s.Mode())
		}
	})
}

func TestTalk(t *testing.T) {
	ctx := context.Background()

	t.Run("opens at the start node", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))

		if s.Mode() != ModeDialogue {
			t.Fatalf("Mode() = %v, want ModeDialogue", s.Mode())
		}
		if s.ActiveCharacter() == nil || s.ActiveCharacter().ID != "guide" {
			t.Errorf("ActiveCharacter() = %v, want guide", s.ActiveCharacter())
		}
		if s.ActiveNode() != world.StartNode {
			t.Errorf("ActiveNode() = %q, want %q", s.ActiveNode(), world.StartNode)
		}
	})

	t.Run("unknown character stays exploring", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("nobody"))

		if s.Mode() != ModeExplore {
			t.Errorf("Mode() = %v, want ModeExplore", s.Mode())
		}
		if s.ActiveCharacter() != nil {
			t.Errorf("ActiveCharacter() = %v, want nil", s.ActiveCharacter())
		}
	})

	t.Run("ignored while already in dialogue", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		s.Apply(ctx, view.TalkAction("watcher"))

		if s.ActiveCharacter().ID != "guide" {
			t.Errorf("ActiveCharacter() = %q, want guide", s.ActiveCharacter().ID)
		}
	})

	t.Run("restarts from start after leaving mid-tree", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		s.Apply(ctx, view.ChooseAction(1)) // -> more
		s.Apply(ctx, view.LeaveAction())
		s.Apply(ctx, view.TalkAction("guide"))

		if s.ActiveNode() != world.StartNode {
			t.Errorf("ActiveNode() = %q, want %q", s.ActiveNode(), world.StartNode)
		}
	})
}

func TestChoose(t *testing.T) {
	ctx := context.Background()

	t.Run("terminating choice returns to exploring", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		s.Apply(ctx, view.ChooseAction(0))

		if s.Mode() != ModeExplore {
			t.Errorf("Mode() = %v, want ModeExplore", s.Mode())
		}
		if s.ActiveCharacter() != nil {
			t.Errorf("ActiveCharacter() = %v, want nil", s.ActiveCharacter())
		}
	})

	t.Run("advances to the chosen node", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		s.Apply(ctx, view.ChooseAction(1))

		if s.Mode() != ModeDialogue || s.ActiveNode() != "more" {
			t.Errorf("mode %v node %q, want dialogue at more", s.Mode(), s.ActiveNode())
		}
	})

	t.Run("unresolvable node ends the conversation", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		s.activeNode = "ghost" // malformed tree injected past load validation
		s.Apply(ctx, view.ChooseAction(0))

		if s.Mode() != ModeExplore {
			t.Errorf("Mode() = %v, want ModeExplore", s.Mode())
		}
	})

	t.Run("ignored while exploring", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.ChooseAction(0))

		if s.Mode() != ModeExplore || s.Location().ID != "alpha" {
			t.Errorf("mode %v at %q, want exploring alpha", s.Mode(), s.Location().ID)
		}
	})
}

func TestDeadEndDialogue(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	s.Apply(ctx, view.TalkAction("watcher"))

	// Choosing cannot advance a choiceless node; the session holds.
	s.Apply(ctx, view.ChooseAction(0))
	if s.Mode() != ModeDialogue {
		t.Fatalf("Mode() = %v, want ModeDialogue", s.Mode())
	}

	// The layout offers exactly one way out.
	snap := s.Snapshot()
	if snap.Controls[0].Kind != view.ButtonLeave {
		t.Errorf("slot 0 = %+v, want leave button", snap.Controls[0])
	}

	s.Apply(ctx, snap.Controls[0].Action)
	if s.Mode() != ModeExplore || s.ActiveCharacter() != nil {
		t.Errorf("mode %v char %v, want exploring with no active character",
			s.Mode(), s.ActiveCharacter())
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("exploring speaks for the location", func(t *testing.T) {
		s := newTestSession(t)
		snap := s.Snapshot()

		if snap.Dialogue {
			t.Error("Dialogue = true while exploring")
		}
		if snap.SpeakerName != "Alpha" || snap.Text != "A bright room." {
			t.Errorf("speaker %q text %q, want Alpha / A bright room.", snap.SpeakerName, snap.Text)
		}
		if snap.Controls[view.SlotNorth].Kind != view.ButtonMove {
			t.Errorf("north slot = %+v, want move button", snap.Controls[view.SlotNorth])
		}
	})

	t.Run("dialogue speaks for the character", func(t *testing.T) {
		s := newTestSession(t)
		s.Apply(ctx, view.TalkAction("guide"))
		snap := s.Snapshot()

		if !snap.Dialogue {
			t.Error("Dialogue = false during dialogue")
		}
		if snap.SpeakerName != "Guide" || snap.Text != "Hi" {
			t.Errorf("speaker %q text %q, want Guide / Hi", snap.SpeakerName, snap.Text)
		}
		for _, button := range snap.Controls {
			if button.Kind == view.ButtonMove {
				t.Errorf("dialogue layout contains move button %+v", button)
			}
		}
	})

	t.Run("carries the player record", func(t *testing.T) {
		s := newTestSession(t)
		snap := s.Snapshot()

		if snap.PlayerName != "Tester" || snap.Level != 1 || snap.Credits != 10 {
			t.Errorf("player header = %q lv %d cr %d", snap.PlayerName, snap.Level, snap.Credits)
		}
		if len(snap.Stats) != 1 || snap.Stats[0].Name != "grit" || snap.Stats[0].Value != 3 {
			t.Errorf("Stats = %+v, want [grit 3]", snap.Stats)
		}
	})

	t.Run("marks the player cell on the map", func(t *testing.T) {
		s := newTestSession(t)
		snap := s.Snapshot()

		center := snap.Map[view.MapSize/2][view.MapSize/2]
		if !center.Player || !center.Present || center.Glyph != 'A' {
			t.Errorf("center cell = %+v, want player's A", center)
		}
	})

	t.Run("idempotent on unchanged state", func(t *testing.T) {
		s := newTestSession(t)
		if !reflect.DeepEqual(s.Snapshot(), s.Snapshot()) {
			t.Error("Snapshot not idempotent while exploring")
		}

		s.Apply(ctx, view.TalkAction("guide"))
		if !reflect.DeepEqual(s.Snapshot(), s.Snapshot()) {
			t.Error("Snapshot not idempotent during dialogue")
		}
	})
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeExplore, "explore"},
		{ModeDialogue, "dialogue"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}
