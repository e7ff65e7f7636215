package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	cellCols   = 2 // terminal columns per grid cell
	blockGlyph = '█'
	foodGlyph  = '●'
)

// Terminal draws snapshots on a tcell screen. The board sits inside a
// one-character border with the HUD lines underneath.
type Terminal struct {
	screen tcell.Screen
	hud    *HUD
	themes *Themes
}

func NewTerminal(screen tcell.Screen, hud *HUD, themes *Themes) *Terminal {
	return &Terminal{screen: screen, hud: hud, themes: themes}
}

func style(fg, bg Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// CellOrigin is the screen column and row of grid cell p.
func CellOrigin(p types.Point) (x, y int) {
	return 1 + p.X*cellCols, 1 + p.Y
}

func (t *Terminal) Draw(s game.Snapshot) {
	th := t.themes.Current()
	base := style(th.Text, th.Background)
	t.screen.SetStyle(base)
	t.screen.Clear()

	t.drawBorder(s.Grid, style(th.Border, th.Background))

	for kind := entity.Primary; kind < entity.FoodKinds; kind++ {
		slot := s.Food[kind]
		if !slot.Present {
			continue
		}
		t.fillCell(slot.Pos, foodGlyph, ' ', style(th.Food(kind), th.Background))
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		c := th.Snake
		if i == 0 {
			c = th.Head
		}
		t.fillCell(s.Body[i], blockGlyph, blockGlyph, style(c, th.Background))
	}

	boardW := s.Grid.Width*cellCols + 2
	hudY := s.Grid.Height + 2
	t.drawText(0, hudY, t.hud.ScoreText(), base)
	timeText := t.hud.TimeText()
	t.drawText(boardW-runewidth.StringWidth(timeText), hudY, timeText, base)
	t.drawText(0, hudY+1, t.hud.StatsText(s), style(th.Border, th.Background))

	mid := 1 + s.Grid.Height/2
	if s.Paused {
		t.drawCentered(boardW, mid, "PAUSED", base.Reverse(true))
	}
	if msg, ok := t.hud.Notice(); ok {
		t.drawCentered(boardW, mid+1, msg, base.Bold(true))
	}

	t.screen.Show()
}

func (t *Terminal) fillCell(p types.Point, left, right rune, st tcell.Style) {
	x, y := CellOrigin(p)
	t.screen.SetContent(x, y, left, nil, st)
	t.screen.SetContent(x+1, y, right, nil, st)
}

func (t *Terminal) drawBorder(g types.Grid, st tcell.Style) {
	right := g.Width*cellCols + 1
	bottom := g.Height + 1
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, '─', nil, st)
		t.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, '│', nil, st)
		t.screen.SetContent(right, y, '│', nil, st)
	}
	t.screen.SetContent(0, 0, '┌', nil, st)
	t.screen.SetContent(right, 0, '┐', nil, st)
	t.screen.SetContent(0, bottom, '└', nil, st)
	t.screen.SetContent(right, bottom, '┘', nil, st)
}

func (t *Terminal) drawText(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) drawCentered(width, y int, s string, st tcell.Style) {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	t.drawText(x, y, s, st)
}

// KeyAction maps a tcell key event to an Action.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		return RuneAction(ev.Rune())
	}
	return ActionNone
}
