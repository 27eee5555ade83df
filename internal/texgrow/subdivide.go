package texgrow

import "fmt"

// quadrant offsets of the 2x2 block a source cell expands into.
var quadrant = [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// Subdivide returns a new grid of twice the side length. Every source cell
// (r,c) becomes the block (2r..2r+1, 2c..2c+1); each of the four new cells
// gets its own Gaussian perturbation (stddev sigma) per channel, clamped to
// [0,255]. Draws 12 values from rng per source cell. The input is not modified.
func Subdivide(g *Grid, sigma float64, rng *Rng) *Grid {
	if !g.square() {
		panic(fmt.Sprintf("texgrow: subdivide needs a square grid, got N=%d with %d cells", g.N, len(g.Buf)))
	}
	out := NewGrid(g.N * 2)
	noise := rng.normal(sigma)
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			src := g.At(r, c)
			for _, q := range quadrant {
				var col Color
				for ch := range col {
					col[ch] = clampChannel(src[ch] + noise.Rand())
				}
				out.Set(2*r+q[0], 2*c+q[1], col)
			}
		}
	}
	return out
}
