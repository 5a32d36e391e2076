package app

import "lifeview/internal/core"

// TicksKey is the HUD parameter key for ticks per frame.
const TicksKey = "ticks_per_frame"

// TickSource supplies the number of ticks to run per frame. The driver reads
// it fresh every frame.
type TickSource interface {
	TicksPerFrame() int
}

// Ticks is the user-adjustable ticks-per-frame control.
type Ticks struct {
	n int
}

// NewTicks returns a control starting at n.
func NewTicks(n int) *Ticks {
	return &Ticks{n: ticksControl.Clamp(n)}
}

var ticksControl = core.ParameterControl{
	Key:    TicksKey,
	Label:  "Ticks / frame",
	Step:   1,
	Min:    0,
	Max:    64,
	HasMin: true,
	HasMax: true,
}

// TicksPerFrame returns the current value.
func (t *Ticks) TicksPerFrame() int { return t.n }

// Adjust moves the value by delta within its bounds.
func (t *Ticks) Adjust(delta int) {
	t.n = ticksControl.Clamp(t.n + delta)
}

// ParameterControls exposes the control to the HUD.
func (t *Ticks) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{ticksControl}
}

// IntParameter reads a parameter by key.
func (t *Ticks) IntParameter(key string) (int, bool) {
	if key != TicksKey {
		return 0, false
	}
	return t.n, true
}

// SetIntParameter updates a parameter by key.
func (t *Ticks) SetIntParameter(key string, value int) bool {
	if key != TicksKey {
		return false
	}
	t.n = ticksControl.Clamp(value)
	return true
}
