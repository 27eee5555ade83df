package texgrow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Params fully determines a synthesis run.
type Params struct {
	InitialNoise float64 // sigma of the first subdivision
	FinalNoise   float64 // sigma of the last subdivision, <= InitialNoise
	Rounds       int     // number of subdivisions; output side is 2^Rounds
	Outerp       float64 // energy exponent applied to squared color distance
	ExchangeRate int     // exchanges per pixel in the last round
	Seed         uint64
}

// Validate reports the first parameter that cannot produce a texture.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"initialNoise", p.InitialNoise},
		{"finalNoise", p.FinalNoise},
		{"outerp", p.Outerp},
	} {
		if !isFinite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	switch {
	case p.InitialNoise <= 0:
		return fmt.Errorf("%w: initialNoise must be > 0, got %v", ErrInvalidParams, p.InitialNoise)
	case p.FinalNoise <= 0:
		return fmt.Errorf("%w: finalNoise must be > 0, got %v", ErrInvalidParams, p.FinalNoise)
	case p.FinalNoise > p.InitialNoise:
		return fmt.Errorf("%w: finalNoise (%v) must not exceed initialNoise (%v)", ErrInvalidParams, p.FinalNoise, p.InitialNoise)
	case p.Rounds < 1:
		return fmt.Errorf("%w: rounds must be >= 1, got %d", ErrInvalidParams, p.Rounds)
	case p.Rounds > MaxRounds:
		return fmt.Errorf("%w: rounds must be <= %d, got %d", ErrInvalidParams, MaxRounds, p.Rounds)
	case p.ExchangeRate < 0:
		return fmt.Errorf("%w: exchangeRate must be >= 0, got %d", ErrInvalidParams, p.ExchangeRate)
	}
	return nil
}

// NoiseStep is the per-round multiplier interpolating geometrically from
// InitialNoise to FinalNoise. A single round has nothing to interpolate and
// uses 1.
func (p Params) NoiseStep() float64 {
	if p.Rounds <= 1 {
		return 1
	}
	return math.Pow(p.FinalNoise/p.InitialNoise, 1/float64(p.Rounds-1))
}

// NoiseSchedule returns the noise sigma of every round.
func (p Params) NoiseSchedule() []float64 {
	step := p.NoiseStep()
	out := make([]float64, p.Rounds)
	for i := range out {
		out[i] = p.InitialNoise * math.Pow(step, float64(i))
	}
	return out
}

// ExchangeBudget returns exchanges per pixel for round i: the rate doubles
// for every round still to come, so coarse rounds are optimized harder.
func (p Params) ExchangeBudget(i int) int {
	return p.ExchangeRate << uint(p.Rounds-1-i)
}

// RoundStats describes the grid at the end of one round.
type RoundStats struct {
	Round             int
	Size              int
	Noise             float64
	ExchangesPerPixel int
	Trials            int
	Accepted          int
	Energy            float64 // total energy after optimization
	EnergyMean        float64 // mean per-cell energy
	EnergyStdDev      float64
}

// AcceptRatio is the fraction of trials that swapped.
func (s RoundStats) AcceptRatio() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Trials)
}

// Synthesize grows a 2^Rounds square texture from a single mid-gray cell.
// Each round subdivides with the scheduled noise and then runs the exchange
// optimizer. All randomness comes from one stream seeded with p.Seed, so equal
// params give equal grids. Panics if FinalNoise > InitialNoise or Rounds < 1;
// call Validate first for a recoverable check.
func Synthesize(p Params) (*Grid, []RoundStats) {
	return SynthesizeObserved(p, nil)
}

// RoundObserver sees the grid at the end of every round. It must not modify
// or retain g.
type RoundObserver func(round int, g *Grid)

// SynthesizeObserved is Synthesize with a callback after each round's
// optimization. A nil observer is allowed.
func SynthesizeObserved(p Params, observe RoundObserver) (*Grid, []RoundStats) {
	if p.FinalNoise > p.InitialNoise {
		panic(fmt.Sprintf("texgrow: noise schedule must not increase: finalNoise=%v > initialNoise=%v", p.FinalNoise, p.InitialNoise))
	}
	if p.Rounds < 1 {
		panic(fmt.Sprintf("texgrow: rounds must be >= 1, got %d", p.Rounds))
	}
	rng := NewRng(p.Seed)
	g := NewSeedGrid()
	stats := make([]RoundStats, 0, p.Rounds)
	for i, noise := range p.NoiseSchedule() {
		g = Subdivide(g, noise, rng)
		budget := p.ExchangeBudget(i)
		ex := Exchange(g, budget, p.Outerp, rng)

		energies := cellEnergies(g, p.Outerp)
		mean, std := stat.MeanStdDev(energies, nil)
		rs := RoundStats{
			Round:             i,
			Size:              g.N,
			Noise:             noise,
			ExchangesPerPixel: budget,
			Trials:            ex.Trials,
			Accepted:          ex.Accepted,
			Energy:            floats.Sum(energies),
			EnergyMean:        mean,
			EnergyStdDev:      std,
		}
		stats = append(stats, rs)
		Logger().Info("round done",
			"round", i, "size", rs.Size, "noise", noise,
			"exchanges_per_pixel", budget, "trials", rs.Trials,
			"accepted", rs.Accepted, "energy", rs.Energy)
		Logger().Debug("round energy spread", "round", i, "mean", mean, "stddev", std)
		if observe != nil {
			observe(i, g)
		}
	}
	return g, stats
}
