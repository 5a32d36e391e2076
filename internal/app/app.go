//go:build ebiten

package app

import (
	"errors"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/render"
	"lifeview/internal/sched"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the driver to the ebiten.Game interface. ebiten calls Update
// once per tick; the frame queue is drained there after input, so handlers
// and frames never interleave.
type Game struct {
	driver  *Driver
	queue   *sched.Queue
	surface *render.RasterSurface
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticks   *Ticks

	scale int
}

// New constructs a Game for the provided engine.
func New(cfg *Config, engine core.Engine, f core.Factory) *Game {
	g := &Game{
		queue: sched.NewQueue(),
		ticks: NewTicks(cfg.TicksPerFrame),
		scale: cfg.Scale,
	}
	w, h := render.SurfaceSize(core.SizeOf(engine))
	g.surface = render.NewRasterSurface(w, h)
	g.painter = render.NewGridPainter(w, h)
	g.hud = ui.NewHUD(g.ticks, hudWidth)
	g.driver = NewDriver(engine, g.surface, g.queue, g.hud.SetLabel,
		WithTicks(g.ticks),
		WithFactory(f, cfg.EngineConfig()),
		WithDebug(cfg.Debug),
		WithStats(g.hud.SetStats),
		WithResize(func(size core.Size) render.Surface {
			g.surface = render.NewRasterSurface(render.SurfaceSize(size))
			return g.surface
		}),
	)
	g.overlay = ui.NewOverlay(g.driver.Size, g.geometry)
	g.driver.Start()
	return g
}

// geometry describes the surface as shown on screen, scaled by g.scale.
func (g *Game) geometry() input.Geometry {
	b := g.surface.Bounds()
	return input.Geometry{
		DisplayW: float64(b.Dx() * g.scale),
		DisplayH: float64(b.Dy() * g.scale),
		SurfaceW: float64(b.Dx()),
		SurfaceH: float64(b.Dy()),
	}
}

// Update handles input and fires the pending frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePlayPause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.driver.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.driver.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.driver.ToggleDebug()
		g.hud.SetDebug(g.driver.Debug())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.ticks.Adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.ticks.Adjust(-1)
	}

	gridW := g.surface.Bounds().Dx() * g.scale
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < gridW {
			g.driver.Click(input.Pointer{X: float64(mx), Y: float64(my), Mods: heldModifiers()}, g.geometry())
		}
	}

	g.hud.Update(gridW)
	if g.hud.PlayPressed() {
		g.driver.TogglePlayPause()
	}

	g.queue.RunFrame()
	return nil
}

func heldModifiers() input.Modifiers {
	var mods input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	return mods
}

// Draw renders the last frame, the hover overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.surface, 0, 0, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.surface.Bounds().Dx()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.surface.Bounds()
	h := b.Dy() * g.scale
	if h < ui.MinHeight {
		h = ui.MinHeight
	}
	return b.Dx()*g.scale + hudWidth, h
}

// RunGUI opens a window and runs the driver until the user quits.
func RunGUI(cfg *Config, engine core.Engine, f core.Factory) error {
	game := New(cfg, engine, f)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeview: " + cfg.Engine)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
