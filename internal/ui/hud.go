//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"lifeview/internal/core"
	"lifeview/internal/playback"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MinHeight is the smallest window height that fits the HUD.
const MinHeight = controlsTop + lineHeight + 7*statsLineHeight + 2*panelPadding + 96

// HUD renders the control panel to the right of the grid: play/pause button,
// ticks-per-frame control, debug state and frame-rate statistics.
type HUD struct {
	params   core.IntParameters
	controls []hudControlState

	width        int
	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	pixel        *ebiten.Image

	label string
	stats string
	debug bool

	playRect    image.Rectangle
	playPressed bool
}

// NewHUD constructs a HUD for the provided parameters and panel width.
func NewHUD(params core.IntParameters, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{params: params, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := params.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	h.layoutControls()
	return h
}

// SetLabel updates the play/pause button label.
func (h *HUD) SetLabel(label string) { h.label = label }

// SetStats updates the frame-rate report.
func (h *HUD) SetStats(stats string) { h.stats = stats }

// SetDebug updates the debug indicator.
func (h *HUD) SetDebug(on bool) { h.debug = on }

// PlayPressed reports whether the play/pause button was clicked during the
// last Update and clears the flag.
func (h *HUD) PlayPressed() bool {
	p := h.playPressed
	h.playPressed = false
	return p
}

// Update refreshes control values and handles HUD clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		v, ok := h.params.IntParameter(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = v
		state.value = strconv.Itoa(v)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	if pointInRect(px, my, h.playRect) {
		h.playPressed = true
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if h.params.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin && direction < 0 && target < state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max {
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, textColor)

	// basicfont has no glyphs for the affordance symbols, so the button is
	// captioned with words.
	caption, playState := "play", "paused"
	if h.label == playback.LabelPlaying {
		caption, playState = "pause", "playing"
	}
	h.drawButton(h.playRect, caption, true)
	text.Draw(h.panel, playState, face, h.playRect.Max.X+buttonGap, h.playRect.Min.Y+labelBaseline-6, dimColor)

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}

	y := controlsTop + len(h.controls)*lineHeight + statsLineHeight
	debug := "debug: off"
	if h.debug {
		debug = "debug: on"
	}
	text.Draw(h.panel, debug, face, panelPadding, y, dimColor)
	y += 2 * statsLineHeight
	for _, line := range strings.Split(h.stats, "\n") {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += statsLineHeight
	}
	y += statsLineHeight
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statsLineHeight
	}
}

var helpLines = []string{
	"space play/pause   n step",
	"r random  x reset  c clear",
	"d debug   +/- ticks",
	"click toggle  ctrl glider",
	"shift pulsar",
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	top := panelPadding + headerBaseline + 14
	h.playRect = image.Rect(panelPadding, top, panelPadding+2*buttonSize, top+buttonSize)
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	textColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding    = 12
	lineHeight      = 36
	buttonSize      = 24
	buttonGap       = 6
	headerBaseline  = 18
	labelBaseline   = 24
	statsLineHeight = 16
	controlsTop     = panelPadding + headerBaseline + 14 + buttonSize + 12
)
