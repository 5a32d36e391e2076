package core

// PackedLen is the number of bytes needed to hold w*h cells at one bit each.
func PackedLen(w, h int) int {
	return (w*h + 7) / 8
}

// Index returns the linear cell index for (row, col) in a grid of width w.
func Index(row, col, w int) int { return row*w + col }

// Alive reports whether bit n of the packed view is set. Bits are numbered
// least-significant first within each byte. n must be below the grid's cell
// count; the view must be at least PackedLen bytes long.
func Alive(view []byte, n int) bool {
	return view[n/8]&(1<<(n%8)) != 0
}
