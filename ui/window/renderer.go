// Package window is the raylib frontend.
package window

import (
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight = 48 // status strip under the board
	fontSize  = 20
	smallFont = 14
	padding   = 6
)

// WindowSize is the window needed for a board of cols x rows cells.
func WindowSize(cols, rows, cellSize int) (width, height int32) {
	return int32(cols * cellSize), int32(rows*cellSize + hudHeight)
}

type Renderer struct {
	hud    *ui.HUD
	themes *ui.Themes
}

func NewRenderer(hud *ui.HUD, themes *ui.Themes) *Renderer {
	return &Renderer{hud: hud, themes: themes}
}

func rlColor(c ui.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Draw renders one frame. It must run on the thread that opened the window.
func (r *Renderer) Draw(s game.Snapshot) {
	th := r.themes.Current()
	cell := int32(s.CellSize)
	boardW := cell * int32(s.Grid.Width)
	boardH := cell * int32(s.Grid.Height)

	rl.BeginDrawing()
	rl.ClearBackground(rlColor(th.Background))

	for kind := entity.Primary; kind < entity.FoodKinds; kind++ {
		slot := s.Food[kind]
		if !slot.Present {
			continue
		}
		rl.DrawRectangle(int32(slot.Pos.X)*cell, int32(slot.Pos.Y)*cell, cell, cell, rlColor(th.Food(kind)))
	}

	// Tail first so the head stays on top.
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		c := th.Snake
		if i == 0 {
			c = th.Head
		}
		rl.DrawRectangle(int32(p.X)*cell, int32(p.Y)*cell, cell, cell, rlColor(c))
	}
	if len(s.Body) > 0 {
		r.drawDirection(s, cell, rlColor(th.Background))
	}

	rl.DrawRectangleLines(0, 0, boardW, boardH, rlColor(th.Border))
	r.drawHUD(s, boardW, boardH, th)

	if s.Paused {
		r.drawCentered("PAUSED", boardW, boardH/2-fontSize, fontSize, rlColor(th.Text))
	}
	if msg, ok := r.hud.Notice(); ok {
		w := rl.MeasureText(msg, smallFont)
		y := boardH/2 + padding
		rl.DrawRectangle((boardW-w)/2-padding, y-padding, w+2*padding, smallFont+2*padding, rl.Fade(rlColor(th.Background), 0.85))
		r.drawCentered(msg, boardW, y, smallFont, rlColor(th.Text))
	}

	rl.EndDrawing()
}

// drawDirection marks the side of the head the snake is moving towards.
func (r *Renderer) drawDirection(s game.Snapshot, cell int32, c rl.Color) {
	head := s.Body[0]
	x := int32(head.X) * cell
	y := int32(head.Y) * cell
	half := cell / 2
	mark := cell / 5
	switch {
	case s.Direction.X > 0:
		rl.DrawRectangle(x+cell-mark-1, y+half-mark/2, mark, mark, c)
	case s.Direction.X < 0:
		rl.DrawRectangle(x+1, y+half-mark/2, mark, mark, c)
	case s.Direction.Y > 0:
		rl.DrawRectangle(x+half-mark/2, y+cell-mark-1, mark, mark, c)
	default:
		rl.DrawRectangle(x+half-mark/2, y+1, mark, mark, c)
	}
}

func (r *Renderer) drawHUD(s game.Snapshot, boardW, boardH int32, th ui.Theme) {
	text := rlColor(th.Text)
	y := boardH + padding
	rl.DrawText(r.hud.ScoreText(), padding, y, fontSize, text)
	timeText := r.hud.TimeText()
	rl.DrawText(timeText, boardW-rl.MeasureText(timeText, fontSize)-padding, y, fontSize, text)
	rl.DrawText(r.hud.StatsText(s), padding, y+fontSize+2, smallFont, rlColor(th.Border))
}

func (r *Renderer) drawCentered(msg string, width, y, size int32, c rl.Color) {
	rl.DrawText(msg, (width-rl.MeasureText(msg, size))/2, y, size, c)
}

var keyActions = []struct {
	key    int32
	action ui.Action
}{
	{rl.KeyUp, ui.ActionUp},
	{rl.KeyW, ui.ActionUp},
	{rl.KeyDown, ui.ActionDown},
	{rl.KeyS, ui.ActionDown},
	{rl.KeyLeft, ui.ActionLeft},
	{rl.KeyA, ui.ActionLeft},
	{rl.KeyRight, ui.ActionRight},
	{rl.KeyD, ui.ActionRight},
	{rl.KeySpace, ui.ActionPause},
	{rl.KeyP, ui.ActionPause},
	{rl.KeyT, ui.ActionTheme},
	{rl.KeyQ, ui.ActionQuit},
	{rl.KeyEscape, ui.ActionQuit},
}

// PollActions returns the actions whose keys were pressed this frame, in
// keymap order.
func PollActions() []ui.Action {
	var out []ui.Action
	for _, ka := range keyActions {
		if rl.IsKeyPressed(ka.key) {
			out = append(out, ka.action)
		}
	}
	return out
}
