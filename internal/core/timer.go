package core

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// SampleWindow bounds the number of frame-rate samples kept by a FramePacer.
const SampleWindow = 100

// FrameStats summarises the current sample window.
type FrameStats struct {
	Latest  float64
	Mean    float64
	Min     float64
	Max     float64
	Samples int
}

// FramePacer tracks instantaneous frame rates over a rolling window.
type FramePacer struct {
	clock  func() time.Time
	last   time.Time
	frames []float64
	stats  FrameStats
}

// NewFramePacer constructs a pacer reading time from clock. A nil clock uses
// time.Now. The first Tick measures from construction.
func NewFramePacer(clock func() time.Time) *FramePacer {
	if clock == nil {
		clock = time.Now
	}
	return &FramePacer{
		clock:  clock,
		last:   clock(),
		frames: make([]float64, 0, SampleWindow+1),
	}
}

// Tick records one rendered frame and returns its instantaneous rate in
// frames per second. Two ticks at the same instant yield +Inf.
func (p *FramePacer) Tick() float64 {
	now := p.clock()
	delta := float64(now.Sub(p.last)) / float64(time.Millisecond)
	p.last = now
	fps := 1000 / delta

	p.frames = append(p.frames, fps)
	if len(p.frames) > SampleWindow {
		p.frames = append(p.frames[:0], p.frames[1:]...)
	}

	min, max, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, f := range p.frames {
		sum += f
		min = math.Min(min, f)
		max = math.Max(max, f)
	}
	p.stats = FrameStats{
		Latest:  fps,
		Mean:    sum / float64(len(p.frames)),
		Min:     min,
		Max:     max,
		Samples: len(p.frames),
	}
	return fps
}

// Stats returns the summary computed by the last Tick.
func (p *FramePacer) Stats() FrameStats { return p.stats }

// Samples returns a copy of the window, oldest first.
func (p *FramePacer) Samples() []float64 {
	return append([]float64(nil), p.frames...)
}

// Clear empties the window. The timestamp of the last tick is kept.
func (p *FramePacer) Clear() {
	p.frames = p.frames[:0]
	p.stats = FrameStats{}
}

// Report formats the statistics as the multi-line block shown next to the
// grid.
func (p *FramePacer) Report() string {
	var b strings.Builder
	b.WriteString("Frames per Second:\n")
	fmt.Fprintf(&b, "         latest = %s\n", roundFPS(p.stats.Latest))
	fmt.Fprintf(&b, "avg of last %d = %s\n", SampleWindow, roundFPS(p.stats.Mean))
	fmt.Fprintf(&b, "min of last %d = %s\n", SampleWindow, roundFPS(p.stats.Min))
	fmt.Fprintf(&b, "max of last %d = %s", SampleWindow, roundFPS(p.stats.Max))
	return b.String()
}

func roundFPS(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}
