package texgrow

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream is the fixed PCG increment; the seed alone selects the state.
const pcgStream = 0x9e3779b97f4a7c15

// Rng is the single pseudo-random stream a synthesis run draws from.
// Uniform and Gaussian draws share one PCG source, so the whole run is
// reproducible from the seed. Not safe for concurrent use.
type Rng struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRng seeds a new stream.
func NewRng(seed uint64) *Rng {
	src := rand.NewPCG(seed, pcgStream)
	return &Rng{src: src, r: rand.New(src)}
}

// IntN returns a uniform int in [0,n).
func (g *Rng) IntN(n int) int { return g.r.IntN(n) }

// normal returns a zero-mean Gaussian sampler with standard deviation sigma
// that draws from this stream.
func (g *Rng) normal(sigma float64) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: g.src}
}

// Normal draws one zero-mean Gaussian value with standard deviation sigma.
func (g *Rng) Normal(sigma float64) float64 { return g.normal(sigma).Rand() }
