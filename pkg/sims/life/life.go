package life

import (
	"log"
	"strconv"
	"strings"

	"lifeview/internal/core"
	pcore "lifeview/pkg/core"
)

// Config holds the grid dimensions for a Life universe.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard 64x64 universe.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life on a toroidal bit-packed grid.
type Life struct {
	w, h   int
	cur    *core.BitGrid
	nxt    *core.BitGrid
	debug  bool
	logger *log.Logger
}

var glider = [][2]int{{-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}

var pulsar = buildPulsar()

// buildPulsar lists the 48 cells of a period-3 pulsar relative to its centre.
func buildPulsar() [][2]int {
	var cells [][2]int
	for _, a := range []int{1, 6} {
		for _, b := range []int{2, 3, 4} {
			for _, sa := range []int{-1, 1} {
				for _, sb := range []int{-1, 1} {
					cells = append(cells, [2]int{sa * a, sb * b}, [2]int{sb * b, sa * a})
				}
			}
		}
	}
	return cells
}

// Empty returns a universe with every cell dead.
func Empty(w, h int) *Life {
	cur := core.NewBitGrid(w, h)
	return &Life{
		w:      cur.W,
		h:      cur.H,
		cur:    cur,
		nxt:    core.NewBitGrid(cur.W, cur.H),
		logger: log.Default(),
	}
}

// New returns a universe seeded with the default interference pattern.
func New(w, h int) *Life {
	l := Empty(w, h)
	for i := 0; i < l.w*l.h; i++ {
		l.cur.Set(i, i%2 == 0 || i%7 == 0)
	}
	return l
}

// NewRandom returns a universe where each cell is alive with probability 1/2.
func NewRandom(w, h int, seed int64) *Life {
	l := Empty(w, h)
	rng := pcore.NewRNG(seed)
	for i := 0; i < l.w*l.h; i++ {
		l.cur.Set(i, rng.Chance(0.5))
	}
	return l
}

// SetLogger replaces the logger used in debug mode.
func (l *Life) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	l.logger = logger
}

// Width returns the number of columns.
func (l *Life) Width() int { return l.w }

// Height returns the number of rows.
func (l *Life) Height() int { return l.h }

// Cells exposes the packed cell bits. The slice is reused by Step.
func (l *Life) Cells() []byte { return l.cur.Bytes() }

// Alive reports whether (row, col) is alive.
func (l *Life) Alive(row, col int) bool { return l.cur.Get(l.cur.Index(row, col)) }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// SetCells marks each (row, col) pair alive.
func (l *Life) SetCells(cells [][2]int) {
	for _, c := range cells {
		l.cur.Set(l.cur.Index(c[0], c[1]), true)
	}
}

// ToggleCell flips a single cell.
func (l *Life) ToggleCell(row, col int) {
	l.cur.Toggle(l.cur.Index(row, col))
}

// SeedGliderAt stamps a glider centred on (row, col), wrapping at the edges.
func (l *Life) SeedGliderAt(row, col int) { l.stamp(row, col, glider) }

// SeedPulsarAt stamps a pulsar centred on (row, col), wrapping at the edges.
func (l *Life) SeedPulsarAt(row, col int) { l.stamp(row, col, pulsar) }

func (l *Life) stamp(row, col int, pattern [][2]int) {
	for _, off := range pattern {
		r, c := l.cur.Wrap(row+off[0], col+off[1])
		l.cur.Set(l.cur.Index(r, c), true)
	}
}

// ClearAll kills every cell.
func (l *Life) ClearAll() { l.cur.Clear() }

// SetDebugMode toggles logging of every cell transition during Step.
func (l *Life) SetDebugMode(enabled bool) { l.debug = enabled }

// Debug reports whether debug mode is on.
func (l *Life) Debug() bool { return l.debug }

func (l *Life) liveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := l.cur.Wrap(row+dr, col+dc)
			if l.cur.Get(l.cur.Index(r, c)) {
				count++
			}
		}
	}
	return count
}

// Step advances the universe by one generation.
func (l *Life) Step() {
	for row := 0; row < l.h; row++ {
		for col := 0; col < l.w; col++ {
			idx := l.cur.Index(row, col)
			alive := l.cur.Get(idx)
			neighbors := l.liveNeighbors(row, col)
			next := (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
			if l.debug && next != alive {
				l.logger.Printf("cell[%d, %d] %s -> %s (%d live neighbors)", row, col, state(alive), state(next), neighbors)
			}
			l.nxt.Set(idx, next)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func state(alive bool) string {
	if alive {
		return "alive"
	}
	return "dead"
}

// String renders the universe one row per line, ◻ for alive and ◼ for dead.
func (l *Life) String() string {
	var b strings.Builder
	for row := 0; row < l.h; row++ {
		for col := 0; col < l.w; col++ {
			if l.Alive(row, col) {
				b.WriteRune('◻')
			} else {
				b.WriteRune('◼')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("life", core.Factory{
		Create: func(cfg map[string]string) core.Engine {
			c := FromMap(cfg)
			return New(c.Width, c.Height)
		},
		CreateRandom: func(cfg map[string]string, seed int64) core.Engine {
			c := FromMap(cfg)
			return NewRandom(c.Width, c.Height, seed)
		},
	})
}
