package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/view"
)

// Layout rows and columns. The map window sits top-left, the narrative panel
// to its right, and the 3×5 control grid underneath.
const (
	statsRow     = 0
	gaugesRow    = 1
	mapTop       = 3
	mapLeft      = 1
	cellWidth    = 2 // One glyph plus one space per map cell
	panelLeft    = mapLeft + view.MapSize*cellWidth + 2
	controlsTop  = mapTop + view.MapSize + 1
	controlCols  = 5
	controlWidth = 24
)

// slotKeys assigns one hotkey per control slot, in slot order.
var slotKeys = []rune("1234567890qwert")

// Renderer draws render snapshots to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one snapshot. The renderer reads nothing but the snapshot, so
// a redraw of an unchanged snapshot produces identical output.
func (r *Renderer) Render(snap view.Snapshot) {
	r.screen.Clear()

	r.drawStats(snap)
	r.drawMap(snap)
	r.drawNarrative(snap)
	r.drawControls(snap)

	r.screen.Show()
}

// drawStats draws the player header: identity line plus gauges.
func (r *Renderer) drawStats(snap view.Snapshot) {
	bold := tcell.StyleDefault.Bold(true)
	header := fmt.Sprintf("%s  Lv %d  XP %d  Cr %d", snap.PlayerName, snap.Level, snap.XP, snap.Credits)
	r.screen.Print(mapLeft, statsRow, header, bold)

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := mapLeft
	for _, stat := range snap.Stats {
		x = r.screen.Print(x, gaugesRow, fmt.Sprintf("%s %d  ", stat.Name, stat.Value), dim)
	}
	if len(snap.StatusEffects) > 0 {
		effects := "[" + strings.Join(snap.StatusEffects, ", ") + "]"
		r.screen.Print(x, gaugesRow, effects, dim.Foreground(tcell.ColorRed))
	}
}

// drawMap draws the 5×5 map window. The player's cell renders in reverse
// video so it reads as "you are here" even over an empty cell.
func (r *Renderer) drawMap(snap view.Snapshot) {
	for row := 0; row < view.MapSize; row++ {
		for col := 0; col < view.MapSize; col++ {
			cell := snap.Map[row][col]

			glyph := '.'
			style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			if cell.Present {
				glyph = cell.Glyph
				style = tcell.StyleDefault.
					Foreground(gamedata.ColorOrDefault(cell.Color, tcell.ColorWhite))
			}
			if cell.Player {
				style = style.Reverse(true).Bold(true)
			}
			r.screen.SetContent(mapLeft+col*cellWidth, mapTop+row, glyph, style)
		}
	}
}

// drawNarrative draws the speaker line and the wrapped narrative text.
func (r *Renderer) drawNarrative(snap view.Snapshot) {
	width, _ := r.screen.Size()
	panelWidth := width - panelLeft - 1
	if panelWidth < 10 {
		panelWidth = 10
	}

	speakerStyle := tcell.StyleDefault.
		Foreground(gamedata.ColorOrDefault(snap.SpeakerColor, tcell.ColorYellow)).
		Bold(true)
	x := r.screen.Print(panelLeft, mapTop, string(snap.SpeakerIcon)+" ", speakerStyle)
	r.screen.Print(x, mapTop, snap.SpeakerName, speakerStyle)

	textStyle := tcell.StyleDefault
	for i, line := range wrapText(snap.Text, panelWidth) {
		r.screen.Print(panelLeft, mapTop+2+i, line, textStyle)
	}
}

// drawControls draws the 15 control slots as a 3×5 grid with hotkeys.
func (r *Renderer) drawControls(snap view.Snapshot) {
	for slot, button := range snap.Controls {
		row := controlsTop + slot/controlCols
		col := mapLeft + (slot%controlCols)*controlWidth

		if button.IsEmpty() {
			r.screen.Print(col, row, "[ ] --", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
			continue
		}

		keyStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		x := r.screen.Print(col, row, fmt.Sprintf("[%c] ", slotKeys[slot]), keyStyle)
		r.screen.Print(x, row, truncate(button.Label, controlWidth-5), buttonStyle(button.Kind))
	}
}

// buttonStyle picks a color per button kind so control types read at a glance.
func buttonStyle(kind view.ButtonKind) tcell.Style {
	switch kind {
	case view.ButtonMove:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case view.ButtonTalk:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case view.ButtonChoice:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case view.ButtonLeave:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}

// wrapText breaks text into lines at word boundaries no wider than width.
func wrapText(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
