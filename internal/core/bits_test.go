package core

import "testing"

func TestAliveSingleBit(t *testing.T) {
	sizes := []Size{{W: 1, H: 1}, {W: 4, H: 4}, {W: 5, H: 3}, {W: 13, H: 7}}
	for _, size := range sizes {
		total := size.Cells()
		for n := 0; n < total; n++ {
			view := make([]byte, PackedLen(size.W, size.H))
			view[n/8] = 1 << (n % 8)
			for m := 0; m < total; m++ {
				if got := Alive(view, m); got != (m == n) {
					t.Fatalf("%dx%d bit %d set: Alive(%d)=%v", size.W, size.H, n, m, got)
				}
			}
		}
	}
}

func TestPackedLen(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1, 1, 1},
		{4, 4, 2},
		{3, 3, 2},
		{8, 8, 8},
		{64, 64, 512},
		{5, 5, 4},
	}
	for _, tc := range cases {
		if got := PackedLen(tc.w, tc.h); got != tc.want {
			t.Errorf("PackedLen(%d,%d)=%d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestBitGridSetToggleClear(t *testing.T) {
	g := NewBitGrid(5, 3)
	n := g.Index(2, 4)
	if n != 14 {
		t.Fatalf("Index(2,4)=%d, want 14", n)
	}
	g.Set(n, true)
	if !Alive(g.Bytes(), n) {
		t.Fatal("Set cell must decode as alive")
	}
	g.Toggle(n)
	if g.Get(n) {
		t.Fatal("Toggle must clear a set cell")
	}
	g.Toggle(0)
	g.Set(7, true)
	if g.Count() != 2 {
		t.Fatalf("Count=%d, want 2", g.Count())
	}
	g.Set(7, false)
	if g.Get(7) {
		t.Fatal("Set(false) must clear the cell")
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestBitGridWrap(t *testing.T) {
	g := NewBitGrid(4, 3)
	row, col := g.Wrap(-1, 4)
	if row != 2 || col != 0 {
		t.Fatalf("Wrap(-1,4)=(%d,%d), want (2,0)", row, col)
	}
	row, col = g.Wrap(3, -5)
	if row != 0 || col != 3 {
		t.Fatalf("Wrap(3,-5)=(%d,%d), want (0,3)", row, col)
	}
}
