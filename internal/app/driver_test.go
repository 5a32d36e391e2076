package app

import (
	"strings"
	"testing"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/playback"
	"lifeview/internal/render"
	"lifeview/internal/sched"
	"lifeview/pkg/sims/life"
)

type countingEngine struct {
	*life.Life
	steps int
}

func (c *countingEngine) Step() {
	c.steps++
	c.Life.Step()
}

func newTestDriver(t *testing.T, e core.Engine, opts ...Option) (*Driver, *sched.Queue, *render.RasterSurface) {
	t.Helper()
	q := sched.NewQueue()
	surface := render.NewRasterSurface(render.SurfaceSize(core.SizeOf(e)))
	return NewDriver(e, surface, q, nil, opts...), q, surface
}

func TestFrameStepsTicksPlusOne(t *testing.T) {
	cases := []struct {
		ticks int
		want  int
	}{
		{0, 1},
		{1, 2},
		{3, 4},
		{-2, 1},
	}
	for _, tc := range cases {
		e := &countingEngine{Life: life.Empty(8, 8)}
		d, _, _ := newTestDriver(t, e, WithTicks(fixedTicks(tc.ticks)))
		d.Frame()
		if e.steps != tc.want {
			t.Errorf("ticks=%d: %d steps, want %d", tc.ticks, e.steps, tc.want)
		}
	}
}

func TestTicksReadEveryFrame(t *testing.T) {
	e := &countingEngine{Life: life.Empty(8, 8)}
	ticks := NewTicks(0)
	d, q, _ := newTestDriver(t, e, WithTicks(ticks))
	d.Start()
	q.RunFrame()
	ticks.Adjust(2)
	q.RunFrame()
	if e.steps != 1+3 {
		t.Fatalf("%d steps over two frames, want 4", e.steps)
	}
}

func TestFrameRearmsWhilePlaying(t *testing.T) {
	e := life.Empty(8, 8)
	d, q, _ := newTestDriver(t, e)

	if d.Playback().IsPlaying() || q.Pending() != 0 {
		t.Fatal("driver must not schedule anything before Start")
	}
	d.Start()
	if !d.Playback().IsPlaying() || q.Pending() != 1 {
		t.Fatalf("after Start: playing=%v pending=%d", d.Playback().IsPlaying(), q.Pending())
	}
	for i := 0; i < 3; i++ {
		q.RunFrame()
		if q.Pending() != 1 {
			t.Fatalf("frame %d left %d callbacks pending", i, q.Pending())
		}
	}
	if d.Frames() != 3 {
		t.Fatalf("Frames=%d, want 3", d.Frames())
	}

	d.TogglePlayPause()
	if q.Pending() != 0 {
		t.Fatalf("pause left %d callbacks pending", q.Pending())
	}
	q.RunFrame()
	if d.Frames() != 3 {
		t.Fatal("a frame ran after pausing")
	}

	d.TogglePlayPause()
	q.RunFrame()
	if d.Frames() != 4 || q.Pending() != 1 {
		t.Fatalf("after resume: frames=%d pending=%d", d.Frames(), q.Pending())
	}
}

func TestDirectFrameKeepsOneArmedCallback(t *testing.T) {
	d, q, _ := newTestDriver(t, life.Empty(4, 4))
	d.Start()
	d.Frame()
	if q.Pending() != 1 {
		t.Fatalf("frame outside the queue left %d callbacks pending, want 1", q.Pending())
	}

	d.TogglePlayPause()
	if q.Pending() != 0 {
		t.Fatalf("pause left %d callbacks pending", q.Pending())
	}
	frames := d.Frames()
	q.RunFrame()
	if d.Frames() != frames {
		t.Fatalf("%d frames ran after pausing", d.Frames()-frames)
	}
}

func TestStepOnce(t *testing.T) {
	e := &countingEngine{Life: life.Empty(8, 8)}
	d, q, _ := newTestDriver(t, e)

	d.StepOnce()
	if e.steps != 1 || q.Pending() != 0 {
		t.Fatalf("paused StepOnce: steps=%d pending=%d", e.steps, q.Pending())
	}
	d.Start()
	d.StepOnce()
	if e.steps != 1 || q.Pending() != 1 {
		t.Fatalf("StepOnce while playing must do nothing: steps=%d pending=%d", e.steps, q.Pending())
	}
}

func TestStatsPublished(t *testing.T) {
	now := time.Unix(100, 0)
	clock := func() time.Time { return now }
	var report string
	d, q, _ := newTestDriver(t, life.Empty(4, 4),
		WithClock(clock),
		WithStats(func(s string) { report = s }),
	)
	d.Start()
	now = now.Add(20 * time.Millisecond)
	q.RunFrame()
	if !strings.Contains(report, "latest = 50") {
		t.Fatalf("report missing latest rate:\n%s", report)
	}
	if d.Pacer().Stats().Samples != 1 {
		t.Fatalf("pacer holds %d samples, want 1", d.Pacer().Stats().Samples)
	}
}

func TestLabelsFollowPlayback(t *testing.T) {
	var label string
	q := sched.NewQueue()
	e := life.Empty(4, 4)
	d := NewDriver(e, render.NewRasterSurface(render.SurfaceSize(core.SizeOf(e))), q, func(l string) { label = l })
	d.Start()
	if label != playback.LabelPlaying {
		t.Fatalf("label after start %q", label)
	}
	d.TogglePlayPause()
	if label != playback.LabelPaused {
		t.Fatalf("label after pause %q", label)
	}
}

func TestEndToEndSingleCell(t *testing.T) {
	e := life.Empty(4, 4)
	if len(e.Cells()) != 2 {
		t.Fatalf("buffer is %d bytes, want 2", len(e.Cells()))
	}
	d, _, surface := newTestDriver(t, e)
	d.Redraw()

	w, h := render.SurfaceSize(d.Size())
	cell, action := d.Click(input.Pointer{X: 5, Y: 5}, input.Unscaled(w, h))
	if cell != (input.Cell{}) || action != input.ActionToggle {
		t.Fatalf("click mapped to %+v %v", cell, action)
	}

	view := d.Engine().Cells()
	if !core.Alive(view, 0) {
		t.Fatal("cell 0 should be alive after toggling (0,0)")
	}
	for n := 1; n < 16; n++ {
		if core.Alive(view, n) {
			t.Fatalf("cell %d should still be dead", n)
		}
	}

	img := surface.Image()
	alive := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.RGBAAt(x, y) == render.AliveColor {
				alive++
				if x < 1 || x > 10 || y < 1 || y > 10 {
					t.Fatalf("alive pixel at (%d,%d) outside the 10x10 cell at (1,1)", x, y)
				}
			}
		}
	}
	if alive != 100 {
		t.Fatalf("%d alive pixels, want 100", alive)
	}
}

func TestClickModifiers(t *testing.T) {
	cases := []struct {
		mods input.Modifiers
		want int
	}{
		{0, 1},
		{input.ModCtrl, 5},
		{input.ModShift, 48},
		{input.ModCtrl | input.ModShift, 5},
	}
	for _, tc := range cases {
		e := life.Empty(20, 20)
		d, _, _ := newTestDriver(t, e)
		w, h := render.SurfaceSize(d.Size())
		d.Click(input.Pointer{X: 10*11 + 5, Y: 10*11 + 5, Mods: tc.mods}, input.Unscaled(w, h))
		if got := e.Population(); got != tc.want {
			t.Errorf("mods=%b: population %d, want %d", tc.mods, got, tc.want)
		}
	}
}

func TestRandomizeAndResetReplaceEngine(t *testing.T) {
	f, err := core.Lookup("life")
	if err != nil {
		t.Fatal(err)
	}
	first := life.Empty(4, 4)
	d, _, _ := newTestDriver(t, first,
		WithFactory(f, map[string]string{"w": "4", "h": "4"}),
		WithSeed(func() int64 { return 11 }),
	)
	d.ToggleDebug()
	if !first.Debug() {
		t.Fatal("ToggleDebug must reach the engine")
	}

	d.Randomize()
	second, ok := d.Engine().(*life.Life)
	if !ok || second == first {
		t.Fatal("Randomize must install a new engine")
	}
	if !second.Debug() {
		t.Fatal("debug flag must carry over to the replacement engine")
	}
	want := life.NewRandom(4, 4, 11)
	if string(second.Cells()) != string(want.Cells()) {
		t.Fatal("Randomize must use the configured seed")
	}

	d.ToggleDebug()
	d.Reset()
	third := d.Engine().(*life.Life)
	if third.Debug() {
		t.Fatal("debug off must not be sent to the new engine as on")
	}
	if string(third.Cells()) != string(life.New(4, 4).Cells()) {
		t.Fatal("Reset must install the default pattern")
	}

	d.Clear()
	if third.Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestReplaceResizesSurface(t *testing.T) {
	var resized core.Size
	d, _, _ := newTestDriver(t, life.Empty(4, 4), WithResize(func(size core.Size) render.Surface {
		resized = size
		return render.NewRasterSurface(render.SurfaceSize(size))
	}))
	d.Replace(life.Empty(6, 3))
	if d.Size() != (core.Size{W: 6, H: 3}) || resized != d.Size() {
		t.Fatalf("size=%+v resized=%+v", d.Size(), resized)
	}
	if got := d.Surface().Bounds().Dx(); got != 67 {
		t.Fatalf("surface width %d, want 67", got)
	}
}
