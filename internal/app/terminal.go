package app

import (
	"image"
	"image/color"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/render"
	"lifeview/internal/sched"
)

// Each grid cell takes two terminal columns so cells look roughly square.
const termCellWidth = 2

// TermSurface draws filled cells as terminal character pairs. Gridlines have
// no terminal counterpart, so path and stroke calls are accepted and dropped.
type TermSurface struct {
	screen tcell.Screen
	size   core.Size
	left   int
	top    int
}

// NewTermSurface maps a grid of size onto screen with its top-left at
// (left, top).
func NewTermSurface(screen tcell.Screen, size core.Size, left, top int) *TermSurface {
	return &TermSurface{screen: screen, size: size, left: left, top: top}
}

// Bounds returns the logical pixel bounds of the grid.
func (s *TermSurface) Bounds() image.Rectangle {
	w, h := render.SurfaceSize(s.size)
	return image.Rect(0, 0, w, h)
}

// Geometry describes where the surface sits on the terminal for pointer
// mapping.
func (s *TermSurface) Geometry() input.Geometry {
	w, h := render.SurfaceSize(s.size)
	return input.Geometry{
		Left:     float64(s.left),
		Top:      float64(s.top),
		DisplayW: float64(s.size.W * termCellWidth),
		DisplayH: float64(s.size.H),
		SurfaceW: float64(w),
		SurfaceH: float64(h),
	}
}

func (s *TermSurface) BeginPath()           {}
func (s *TermSurface) MoveTo(x, y float64)  {}
func (s *TermSurface) LineTo(x, y float64)  {}
func (s *TermSurface) Stroke(c color.Color) {}

// FillRect paints the terminal cell pair holding the pixel at (x, y).
func (s *TermSurface) FillRect(x, y, w, h float64, c color.Color) {
	col := int(x) / (render.CellSize + 1)
	row := int(y) / (render.CellSize + 1)
	r, g, b, _ := c.RGBA()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
	ch := ' '
	if c == render.AliveColor {
		ch = '█'
		style = style.Foreground(tcell.ColorWhite)
	}
	for i := 0; i < termCellWidth; i++ {
		s.screen.SetContent(s.left+col*termCellWidth+i, s.top+row, ch, nil, style)
	}
}

// Terminal hosts the driver in a tcell screen. Events and frames are handled
// on the Run goroutine only.
type Terminal struct {
	screen  tcell.Screen
	queue   *sched.Queue
	driver  *Driver
	surface *TermSurface
	ticks   *Ticks
	tps     int

	stats   string
	label   string
	buttons tcell.ButtonMask
}

// NewTerminal builds the terminal host around an initialised screen.
func NewTerminal(screen tcell.Screen, cfg *Config, engine core.Engine, f core.Factory) *Terminal {
	t := &Terminal{
		screen: screen,
		queue:  sched.NewQueue(),
		ticks:  NewTicks(cfg.TicksPerFrame),
		tps:    cfg.TPS,
	}
	t.surface = NewTermSurface(screen, core.SizeOf(engine), 0, 0)
	t.driver = NewDriver(engine, t.surface, t.queue, func(l string) { t.label = l },
		WithTicks(t.ticks),
		WithFactory(f, cfg.EngineConfig()),
		WithDebug(cfg.Debug),
		WithStats(func(s string) { t.stats = s }),
		WithResize(func(size core.Size) render.Surface {
			t.surface = NewTermSurface(screen, size, 0, 0)
			t.screen.Clear()
			return t.surface
		}),
	)
	return t
}

// Driver exposes the hosted driver.
func (t *Terminal) Driver() *Driver { return t.driver }

// Run starts playback and processes events and frames until the user quits.
func (t *Terminal) Run() error {
	t.screen.EnableMouse()
	t.screen.Clear()
	t.driver.Start()
	t.drawPanel()
	t.screen.Show()

	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.RunFrame()
		}
	}
}

// RunFrame fires the pending frame callback, if any, and refreshes the screen.
func (t *Terminal) RunFrame() {
	t.queue.RunFrame()
	t.drawPanel()
	t.screen.Show()
}

// HandleEvent applies one input event. It returns false when the user quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.driver.TogglePlayPause()
		case 'r':
			t.driver.Randomize()
		case 'x':
			t.driver.Reset()
		case 'c':
			t.driver.Clear()
		case 'd':
			t.driver.ToggleDebug()
			log.Printf("debug mode %v", t.driver.Debug())
		case 'n':
			t.driver.StepOnce()
		case '+', '=':
			t.ticks.Adjust(1)
		case '-':
			t.ticks.Adjust(-1)
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = buttons
		if !pressed {
			return true
		}
		x, y := ev.Position()
		if !t.onGrid(x, y) {
			return true
		}
		p := input.Pointer{X: float64(x), Y: float64(y), Mods: termModifiers(ev.Modifiers())}
		t.driver.Click(p, t.surface.Geometry())
	case *tcell.EventResize:
		t.screen.Sync()
		t.driver.Redraw()
	}
	t.drawPanel()
	t.screen.Show()
	return true
}

func (t *Terminal) onGrid(x, y int) bool {
	size := t.driver.Size()
	return x >= t.surface.left && x < t.surface.left+size.W*termCellWidth &&
		y >= t.surface.top && y < t.surface.top+size.H
}

func termModifiers(m tcell.ModMask) input.Modifiers {
	var mods input.Modifiers
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	return mods
}

// drawPanel writes the status text to the right of the grid.
func (t *Terminal) drawPanel() {
	size := t.driver.Size()
	x := t.surface.left + size.W*termCellWidth + 2
	lines := []string{
		"lifeview " + t.label,
		"ticks/frame " + strconv.Itoa(t.ticks.TicksPerFrame()),
		"debug " + strconv.FormatBool(t.driver.Debug()),
		"",
	}
	lines = append(lines, strings.Split(t.stats, "\n")...)
	lines = append(lines, "",
		"space play/pause  n step",
		"r random  x reset  c clear",
		"d debug  +/- ticks  q quit",
		"click toggle",
		"ctrl+click glider",
		"shift+click pulsar",
	)
	style := tcell.StyleDefault
	w, _ := t.screen.Size()
	for i, line := range lines {
		col := x
		for _, r := range line {
			t.screen.SetContent(col, t.surface.top+i, r, nil, style)
			col++
		}
		for ; col < w; col++ {
			t.screen.SetContent(col, t.surface.top+i, ' ', nil, style)
		}
	}
}
