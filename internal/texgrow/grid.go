package texgrow

import "fmt"

// Grid is a square N x N array of colors stored row-major in Buf.
type Grid struct {
	N   int
	Buf []Color
}

// NewGrid allocates an N x N grid of black cells.
func NewGrid(n int) *Grid {
	if n < 1 {
		panic(fmt.Sprintf("texgrow: grid size must be >= 1, got %d", n))
	}
	return &Grid{N: n, Buf: make([]Color, n*n)}
}

// NewSeedGrid returns the 1x1 mid-gray grid every synthesis starts from.
func NewSeedGrid() *Grid {
	g := NewGrid(1)
	g.Buf[0] = Color{SeedGray, SeedGray, SeedGray}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.N }

func (g *Grid) idx(r, c int) int { return r*g.N + c }

// At returns the color at row r, column c.
func (g *Grid) At(r, c int) Color { return g.Buf[g.idx(r, c)] }

// Set stores col at row r, column c.
func (g *Grid) Set(r, c int, col Color) { g.Buf[g.idx(r, c)] = col }

// Swap exchanges the colors of two cells.
func (g *Grid) Swap(a, b Pixel) {
	i, j := g.idx(a.R, a.C), g.idx(b.R, b.C)
	g.Buf[i], g.Buf[j] = g.Buf[j], g.Buf[i]
}

// Colors returns a copy of all cell colors in row-major order.
func (g *Grid) Colors() []Color {
	out := make([]Color, len(g.Buf))
	copy(out, g.Buf)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{N: g.N, Buf: g.Colors()}
}

// square reports whether the backing buffer matches an N x N layout.
func (g *Grid) square() bool {
	return g != nil && g.N > 0 && len(g.Buf) == g.N*g.N
}
