// Package playback holds the play/pause state machine that decides whether
// the driver loop has a frame scheduled.
package playback

import "lifeview/internal/sched"

// State is the observable playback state.
type State int

const (
	// Paused means no frame callback is armed.
	Paused State = iota
	// Playing means exactly one frame callback is armed.
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Affordance labels for the play/pause control. While playing the control
// offers to pause, and vice versa.
const (
	LabelPlaying = "⏸"
	LabelPaused  = "▶"
)

// phase is the internal tagged state: playing carries the armed handle,
// paused carries nothing.
type phase interface {
	state() State
}

type playing struct {
	handle sched.Handle
}

type paused struct{}

func (playing) state() State { return Playing }
func (paused) state() State  { return Paused }

// Controller arms and cancels the driver's frame callback.
type Controller struct {
	sched   sched.Scheduler
	frame   func()
	onLabel func(string)
	phase   phase
}

// New returns a paused controller that will schedule frame on s. onLabel, if
// non-nil, receives the affordance label on every transition.
func New(s sched.Scheduler, frame func(), onLabel func(string)) *Controller {
	return &Controller{sched: s, frame: frame, onLabel: onLabel, phase: paused{}}
}

// State reports the current state.
func (c *Controller) State() State { return c.phase.state() }

// IsPlaying reports whether a frame is armed.
func (c *Controller) IsPlaying() bool { return c.State() == Playing }

// Handle returns the armed handle, or false while paused.
func (c *Controller) Handle() (sched.Handle, bool) {
	p, ok := c.phase.(playing)
	return p.handle, ok
}

// Label returns the affordance label for the current state.
func (c *Controller) Label() string {
	if c.IsPlaying() {
		return LabelPlaying
	}
	return LabelPaused
}

// Play schedules the first frame. It does nothing while already playing.
func (c *Controller) Play() {
	if c.IsPlaying() {
		return
	}
	c.phase = playing{handle: c.sched.Schedule(c.frame)}
	c.publish()
}

// Pause cancels the armed frame. It does nothing while already paused.
func (c *Controller) Pause() {
	p, ok := c.phase.(playing)
	if !ok {
		return
	}
	c.sched.Cancel(p.handle)
	c.phase = paused{}
	c.publish()
}

// Toggle alternates between Playing and Paused.
func (c *Controller) Toggle() {
	if c.IsPlaying() {
		c.Pause()
		return
	}
	c.Play()
}

// Rearm schedules the next frame in place of the armed one. The driver calls
// it once at the end of every frame; while paused it does nothing.
func (c *Controller) Rearm() {
	p, ok := c.phase.(playing)
	if !ok {
		return
	}
	// A fired handle is already gone; a live one means the frame ran outside
	// the queue and must not stay armed alongside the new one.
	c.sched.Cancel(p.handle)
	c.phase = playing{handle: c.sched.Schedule(c.frame)}
}

func (c *Controller) publish() {
	if c.onLabel != nil {
		c.onLabel(c.Label())
	}
}
