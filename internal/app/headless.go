package app

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/sched"
)

// Headless is a driver drawing into an in-memory raster surface, with frames
// fired explicitly through its queue.
type Headless struct {
	Driver  *Driver
	Queue   *sched.Queue
	Surface *render.RasterSurface
	Ticks   *Ticks
}

// NewHeadless builds a headless driver from cfg.
func NewHeadless(cfg *Config, opts ...Option) (*Headless, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, f, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	h := &Headless{
		Queue: sched.NewQueue(),
		Ticks: NewTicks(cfg.TicksPerFrame),
	}
	h.Surface = render.NewRasterSurface(render.SurfaceSize(core.SizeOf(engine)))
	base := []Option{
		WithTicks(h.Ticks),
		WithFactory(f, cfg.EngineConfig()),
		WithDebug(cfg.Debug),
		WithResize(func(size core.Size) render.Surface {
			h.Surface = render.NewRasterSurface(render.SurfaceSize(size))
			return h.Surface
		}),
	}
	h.Driver = NewDriver(engine, h.Surface, h.Queue, nil, append(base, opts...)...)
	return h, nil
}

// BenchResult summarises a headless run.
type BenchResult struct {
	Frames  int
	Elapsed time.Duration
	Stats   core.FrameStats
	Samples []float64
	Report  string
}

// Bench plays frames back to back and collects frame-rate statistics.
func Bench(cfg *Config, frames int) (*BenchResult, error) {
	h, err := NewHeadless(cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	h.Driver.Start()
	for h.Driver.Frames() < frames {
		if h.Queue.RunFrame() == 0 {
			break
		}
	}
	pacer := h.Driver.Pacer()
	return &BenchResult{
		Frames:  h.Driver.Frames(),
		Elapsed: time.Since(start),
		Stats:   pacer.Stats(),
		Samples: pacer.Samples(),
		Report:  pacer.Report(),
	}, nil
}

var (
	benchHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	benchBox    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	benchGraph  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// FormatBench renders a bench result as a styled report with a plot of the
// sample window.
func FormatBench(cfg *Config, res *BenchResult) string {
	var b strings.Builder
	b.WriteString(benchHeader.Render(fmt.Sprintf("lifeview bench: %s %dx%d, %d ticks/frame",
		cfg.Engine, cfg.Width, cfg.Height, cfg.TicksPerFrame)))
	b.WriteString("\n")
	summary := fmt.Sprintf("%s\n\nframes  %d\nelapsed %s", res.Report, res.Frames, res.Elapsed.Round(time.Millisecond))
	b.WriteString(benchBox.Render(summary))

	if plot := plotSamples(res.Samples); plot != "" {
		b.WriteString("\n")
		b.WriteString(benchGraph.Render(plot))
	}
	return b.String()
}

// plotSamples graphs the finite samples; non-finite rates cannot be plotted.
func plotSamples(samples []float64) string {
	finite := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !math.IsInf(s, 0) && !math.IsNaN(s) {
			finite = append(finite, s)
		}
	}
	if len(finite) < 2 {
		return ""
	}
	return asciigraph.Plot(finite, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("fps per frame"))
}

// Snapshot advances a fresh engine by generations steps and writes the
// rendered grid as PNG.
func Snapshot(cfg *Config, generations int, w io.Writer) error {
	h, err := NewHeadless(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		h.Driver.Engine().Step()
	}
	h.Driver.Redraw()
	return h.Surface.WritePNG(w)
}
