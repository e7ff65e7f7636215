package ui

import "snake-arcade/game"

// Action is a frontend-level input. Theme and Quit never reach the engine.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionTheme
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionTheme:
		return "theme"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Command maps a to an engine command. ok is false for UI-only actions.
func (a Action) Command() (cmd game.Command, ok bool) {
	switch a {
	case ActionUp:
		return game.CmdUp, true
	case ActionDown:
		return game.CmdDown, true
	case ActionLeft:
		return game.CmdLeft, true
	case ActionRight:
		return game.CmdRight, true
	case ActionPause:
		return game.CmdPause, true
	default:
		return game.CmdNone, false
	}
}

// RuneAction maps the letter keys shared by both frontends.
func RuneAction(r rune) Action {
	switch r {
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case 'p', 'P', ' ':
		return ActionPause
	case 't', 'T':
		return ActionTheme
	case 'q', 'Q':
		return ActionQuit
	default:
		return ActionNone
	}
}
