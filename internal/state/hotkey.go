package state

import "strings"

// Action is an editing intent recognised from a key chord.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
)

func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	default:
		return "none"
	}
}

// Chord is a key press together with the platform modifiers held.
// Meta is the command key on macOS.
type Chord struct {
	Key  string
	Ctrl bool
	Meta bool
}

// HotkeyFor maps ctrl/cmd+z to undo and ctrl/cmd+y to redo.
func HotkeyFor(c Chord) Action {
	if !c.Ctrl && !c.Meta {
		return ActionNone
	}
	switch strings.ToLower(c.Key) {
	case "z":
		return ActionUndo
	case "y":
		return ActionRedo
	}
	return ActionNone
}
