package input

import "lifeview/internal/core"

// Modifiers is a bit set of keys held during a click.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
)

// Action is what a click does to the engine.
type Action int

const (
	ActionToggle Action = iota
	ActionGlider
	ActionPulsar
)

func (a Action) String() string {
	switch a {
	case ActionGlider:
		return "glider"
	case ActionPulsar:
		return "pulsar"
	default:
		return "toggle"
	}
}

// Classify picks the action for a set of modifiers. Ctrl wins over Shift.
func Classify(mods Modifiers) Action {
	switch {
	case mods&ModCtrl != 0:
		return ActionGlider
	case mods&ModShift != 0:
		return ActionPulsar
	default:
		return ActionToggle
	}
}

// Apply performs a on e at cell c.
func Apply(e core.Engine, a Action, c Cell) {
	switch a {
	case ActionGlider:
		e.SeedGliderAt(c.Row, c.Col)
	case ActionPulsar:
		e.SeedPulsarAt(c.Row, c.Col)
	default:
		e.ToggleCell(c.Row, c.Col)
	}
}
