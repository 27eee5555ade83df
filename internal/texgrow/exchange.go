package texgrow

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ExchangeStats counts what one optimizer pass did.
type ExchangeStats struct {
	Trials   int
	Accepted int
}

// energyAt is the energy color col would have at the cell whose neighbors are
// nbrs: the sum over neighbors of squared channel distance raised to outerp.
func energyAt(g *Grid, col Color, nbrs [4]Pixel, outerp float64) float64 {
	e := 0.0
	for _, n := range nbrs {
		e += math.Pow(dist2(col, g.At(n.R, n.C)), outerp)
	}
	return e
}

// Energy returns the local energy of cell p in its current state.
func Energy(g *Grid, p Pixel, outerp float64) float64 {
	return energyAt(g, g.At(p.R, p.C), Neighbors(p, g.N), outerp)
}

// swapScores returns the summed energy of p1 and p2 as they are, and the
// summed energy they would have with their colors exchanged.
func swapScores(g *Grid, p1, p2 Pixel, outerp float64) (self, swapped float64) {
	c1, c2 := g.At(p1.R, p1.C), g.At(p2.R, p2.C)
	n1, n2 := Neighbors(p1, g.N), Neighbors(p2, g.N)
	self = energyAt(g, c1, n1, outerp) + energyAt(g, c2, n2, outerp)
	swapped = energyAt(g, c2, n1, outerp) + energyAt(g, c1, n2, outerp)
	return self, swapped
}

// tryExchange swaps p1 and p2 if that strictly lowers their combined local
// energy and reports whether it did.
func tryExchange(g *Grid, p1, p2 Pixel, outerp float64) bool {
	self, swapped := swapScores(g, p1, p2, outerp)
	if swapped < self {
		g.Swap(p1, p2)
		return true
	}
	return false
}

// Exchange runs attemptsPerPixel*N*N trials on g. Each trial picks two
// uniformly random cells and swaps their colors only if that strictly lowers
// their combined local energy. Colors are only moved, never changed, so the
// multiset of colors in g is preserved.
func Exchange(g *Grid, attemptsPerPixel int, outerp float64, rng *Rng) ExchangeStats {
	n := g.N
	st := ExchangeStats{Trials: attemptsPerPixel * n * n}
	for t := 0; t < st.Trials; t++ {
		p1 := Pixel{R: rng.IntN(n), C: rng.IntN(n)}
		p2 := Pixel{R: rng.IntN(n), C: rng.IntN(n)}
		if tryExchange(g, p1, p2, outerp) {
			st.Accepted++
		}
	}
	return st
}

// cellEnergies returns the local energy of every cell in row-major order.
func cellEnergies(g *Grid, outerp float64) []float64 {
	out := make([]float64, 0, len(g.Buf))
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			out = append(out, Energy(g, Pixel{R: r, C: c}, outerp))
		}
	}
	return out
}

// TotalEnergy sums the local energy of every cell. Each adjacent pair is
// counted twice, once from each side.
func TotalEnergy(g *Grid, outerp float64) float64 {
	return floats.Sum(cellEnergies(g, outerp))
}
