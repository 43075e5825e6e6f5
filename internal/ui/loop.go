package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/view"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Loop drives the session: render one snapshot, wait for input, translate it
// to an action, apply, repeat. One stimulus in, one render out.
type Loop struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	log      *slog.Logger

	snap    view.Snapshot
	running bool
}

// NewLoop creates the game loop with its own screen.
func NewLoop(session *game.Session, log *slog.Logger) (*Loop, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return &Loop{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		log:      log,
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits.
func (l *Loop) Run(ctx context.Context) error {
	defer l.screen.Close()

	for l.running {
		l.snap = l.session.Snapshot()
		l.renderer.Render(l.snap)
		l.handleInput(ctx)
	}

	l.log.Info("session ended",
		"session_id", l.session.ID(),
		"location", l.session.Location().ID)
	return nil
}

// handleInput processes a single terminal event.
func (l *Loop) handleInput(ctx context.Context) {
	switch ev := l.screen.PollEvent().(type) {
	case *tcell.EventKey:
		l.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		l.screen.Sync()
	}
}

// handleKeyEvent maps keyboard input to session actions. Arrows always mean
// movement; slot hotkeys activate whatever their slot currently holds; Escape
// leaves a conversation, or quits when already exploring.
func (l *Loop) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		l.running = false

	case tcell.KeyEscape:
		if l.session.Mode() == game.ModeDialogue {
			l.apply(ctx, view.LeaveAction())
		} else {
			l.running = false
		}

	case tcell.KeyUp:
		l.apply(ctx, view.MoveAction(world.North))
	case tcell.KeyDown:
		l.apply(ctx, view.MoveAction(world.South))
	case tcell.KeyLeft:
		l.apply(ctx, view.MoveAction(world.West))
	case tcell.KeyRight:
		l.apply(ctx, view.MoveAction(world.East))

	case tcell.KeyRune:
		l.handleSlotKey(ctx, ev.Rune())
	}
}

// handleSlotKey activates the control slot bound to the pressed key, if that
// slot currently holds a button.
func (l *Loop) handleSlotKey(ctx context.Context, r rune) {
	for slot, key := range slotKeys {
		if key != r {
			continue
		}
		button := l.snap.Controls[slot]
		if !button.IsEmpty() {
			l.apply(ctx, button.Action)
		}
		return
	}
}

// apply forwards one action to the session.
func (l *Loop) apply(ctx context.Context, action view.Action) {
	l.session.Apply(ctx, action)
	l.log.Debug("action applied",
		"action", action.Kind.String(),
		"mode", l.session.Mode().String())
}
