package game

import "snake-arcade/game/types"

// Command is an input forwarded by a frontend.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdPause:
		return "pause"
	default:
		return "none"
	}
}

// Apply dispatches cmd and reports whether the state changed.
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case CmdUp:
		return g.SetDirection(types.UP.ToPoint())
	case CmdDown:
		return g.SetDirection(types.DOWN.ToPoint())
	case CmdLeft:
		return g.SetDirection(types.LEFT.ToPoint())
	case CmdRight:
		return g.SetDirection(types.RIGHT.ToPoint())
	case CmdPause:
		g.TogglePause()
		return true
	default:
		return false
	}
}
