// Package posterior samples the width parameter of a Gaussian-shaped
// likelihood with a discretized Metropolis chain.
package posterior

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidArgument reports a malformed grid, sample count or chain length.
var ErrInvalidArgument = errors.New("invalid argument")

// Config controls a posterior run.
type Config struct {
	Samples    int
	Lo, Hi     float64
	Points     int
	Iterations int
	BurnIn     int
}

// DefaultConfig returns the grid [1, 4] with 1000 points, 1000 samples and a
// 5000-link chain of which the first 2000 are discarded.
func DefaultConfig() Config {
	return Config{Samples: 1000, Lo: 1, Hi: 4, Points: 1000, Iterations: 5000, BurnIn: 2000}
}

// Validate checks cfg for usable values.
func (c Config) Validate() error {
	switch {
	case c.Samples < 0:
		return fmt.Errorf("%w: samples %d", ErrInvalidArgument, c.Samples)
	case c.Points < 2:
		return fmt.Errorf("%w: grid needs at least 2 points, got %d", ErrInvalidArgument, c.Points)
	case !(c.Lo > 0) || c.Hi <= c.Lo:
		return fmt.Errorf("%w: grid [%g, %g]", ErrInvalidArgument, c.Lo, c.Hi)
	case c.Iterations < 0 || c.BurnIn < 0 || c.BurnIn > c.Iterations+1:
		return fmt.Errorf("%w: iterations %d burn-in %d", ErrInvalidArgument, c.Iterations, c.BurnIn)
	}
	return nil
}

// Dataset draws n samples from the standard normal distribution.
func Dataset(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.NormFloat64()
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Likelihood is p(x|a) = sqrt(ln a / 2π) · a^(-x²/2), a normal density with
// variance 1/ln a. It is zero for a <= 1.
func Likelihood(x, a float64) float64 {
	if a <= 1 {
		return 0
	}
	return math.Sqrt(math.Log(a)/(2*math.Pi)) * math.Pow(a, -x*x/2)
}

func logLikelihood(x, a float64) float64 {
	if a <= 1 {
		return math.Inf(-1)
	}
	la := math.Log(a)
	return 0.5*math.Log(la/(2*math.Pi)) - x*x/2*la
}

// Posterior evaluates p(a|samples) on grid under a uniform prior. The product
// of likelihoods is accumulated in log space and the result sums to 1.
func Posterior(samples, grid []float64) ([]float64, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidArgument)
	}
	logs := make([]float64, len(grid))
	best := math.Inf(-1)
	for i, a := range grid {
		var sum float64
		for _, x := range samples {
			sum += logLikelihood(x, a)
		}
		logs[i] = sum
		if sum > best {
			best = sum
		}
	}
	if math.IsInf(best, -1) {
		return nil, fmt.Errorf("%w: likelihood vanishes on the whole grid", ErrInvalidArgument)
	}
	out := make([]float64, len(grid))
	var total float64
	for i, l := range logs {
		out[i] = math.Exp(l - best)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out, nil
}

// Metropolis proposes a uniformly random grid index and accepts it with
// probability min(1, posterior[proposal]/posterior[current]).
func Metropolis(r *rand.Rand, current int, posterior []float64) int {
	proposal := r.IntN(len(posterior))
	u := r.Float64()
	if posterior[current] == 0 {
		return proposal
	}
	ratio := posterior[proposal] / posterior[current]
	if ratio >= 1 || u < ratio {
		return proposal
	}
	return current
}

// Chain runs iterations Metropolis steps from a random start and returns the
// visited grid values with the first burnIn links dropped. The start counts as
// the first link.
func Chain(r *rand.Rand, posterior, grid []float64, iterations, burnIn int) ([]float64, error) {
	if len(posterior) == 0 || len(posterior) != len(grid) {
		return nil, fmt.Errorf("%w: posterior has %d points, grid %d", ErrInvalidArgument, len(posterior), len(grid))
	}
	if iterations < 0 || burnIn < 0 || burnIn > iterations+1 {
		return nil, fmt.Errorf("%w: iterations %d burn-in %d", ErrInvalidArgument, iterations, burnIn)
	}
	current := r.IntN(len(grid))
	links := make([]float64, 0, iterations+1)
	links = append(links, grid[current])
	for i := 0; i < iterations; i++ {
		current = Metropolis(r, current, posterior)
		links = append(links, grid[current])
	}
	return links[burnIn:], nil
}

// Summary describes a posterior run.
type Summary struct {
	Grid      []float64
	Posterior []float64
	Chain     []float64
	MAP       float64
	Mean      float64
	StdDev    float64
}

// Run draws a dataset, evaluates the posterior and samples it.
func Run(r *rand.Rand, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	grid := Linspace(cfg.Lo, cfg.Hi, cfg.Points)
	post, err := Posterior(Dataset(r, cfg.Samples), grid)
	if err != nil {
		return Summary{}, err
	}
	chain, err := Chain(r, post, grid, cfg.Iterations, cfg.BurnIn)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Grid: grid, Posterior: post, Chain: chain}
	best := 0
	for i, p := range post {
		if p > post[best] {
			best = i
		}
	}
	s.MAP = grid[best]
	s.Mean, s.StdDev = meanStd(chain)
	return s, nil
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

// Histogram counts values into bins equal-width buckets over [lo, hi].
// Values outside the range are ignored; hi falls in the last bucket.
func Histogram(values []float64, lo, hi float64, bins int) []int {
	if bins <= 0 || hi <= lo {
		return nil
	}
	out := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i]++
	}
	return out
}
