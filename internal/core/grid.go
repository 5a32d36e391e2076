package core

// BitGrid stores a 2D grid of boolean cells packed eight to a byte in
// row-major order, in the layout Alive decodes.
type BitGrid struct {
	W, H int
	data []byte
}

// NewBitGrid allocates a cleared grid with the given dimensions.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BitGrid{W: w, H: h, data: make([]byte, PackedLen(w, h))}
}

// Bytes exposes the packed backing slice.
func (g *BitGrid) Bytes() []byte { return g.data }

// Index returns the linear cell index for (row, col).
func (g *BitGrid) Index(row, col int) int { return row*g.W + col }

// Get reports whether cell n is set.
func (g *BitGrid) Get(n int) bool { return Alive(g.data, n) }

// Set writes cell n.
func (g *BitGrid) Set(n int, alive bool) {
	if alive {
		g.data[n/8] |= 1 << (n % 8)
		return
	}
	g.data[n/8] &^= 1 << (n % 8)
}

// Toggle flips cell n.
func (g *BitGrid) Toggle(n int) {
	g.data[n/8] ^= 1 << (n % 8)
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Count returns the number of set cells.
func (g *BitGrid) Count() int {
	n := 0
	for i := 0; i < g.W*g.H; i++ {
		if g.Get(i) {
			n++
		}
	}
	return n
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *BitGrid) CopyFrom(src *BitGrid) {
	copy(g.data, src.data)
}

// Clear sets every cell dead.
func (g *BitGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
