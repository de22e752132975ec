package eca

import "fmt"

type options struct {
	workers int
}

// Option tunes Evolve.
type Option func(*options)

// WithWorkers splits each step across n goroutines. Values below 2 evolve
// serially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Evolve runs the propagator for numSteps synchronous steps starting from
// initial. The returned history owns its rows; initial is never aliased.
func Evolve(initial Configuration, p *Propagator, numSteps, numStates int, opts ...Option) (History, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil propagator", ErrInvalidArgument)
	}
	if numStates != p.numStates {
		return nil, fmt.Errorf("%w: propagator has %d states, got %d", ErrInvalidArgument, p.numStates, numStates)
	}
	if numSteps < 0 {
		return nil, fmt.Errorf("%w: negative step count %d", ErrInvalidArgument, numSteps)
	}
	if err := initial.Validate(numStates); err != nil {
		return nil, err
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	history := make(History, 0, numSteps+1)
	cur := initial.Clone()
	history = append(history, cur)
	scratch := make(Configuration, len(cur))
	for t := 0; t < numSteps; t++ {
		if err := p.step(scratch, cur, o.workers); err != nil {
			return nil, fmt.Errorf("step %d: %w", t+1, err)
		}
		cur = scratch.Clone()
		history = append(history, cur)
	}
	return history, nil
}

// Step writes the successor of src into dst. Both must have the same length
// and must not overlap.
func (p *Propagator) Step(dst, src Configuration) error {
	return p.step(dst, src, 1)
}

func (p *Propagator) step(dst, src Configuration, workers int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: buffer length %d, want %d", ErrInvalidArgument, len(dst), len(src))
	}
	if workers > 1 {
		return p.stepParallel(dst, src, workers)
	}
	return p.stepRange(dst, src, 0, len(src))
}

// stepRange updates dst[lo:hi] reading only from src, with periodic
// boundaries over the whole of src.
func (p *Propagator) stepRange(dst, src Configuration, lo, hi int) error {
	n := len(src)
	s := p.numStates
	for x := lo; x < hi; x++ {
		left := int(src[(x-1+n)%n])
		self := int(src[x])
		if self >= s {
			return fmt.Errorf("%w: cell %d has value %d", ErrUnknownNeighborhood, x, self)
		}
		idx := left*s + self
		if p.arity == 3 {
			idx = idx*s + int(src[(x+1)%n])
		}
		if idx >= len(p.table) {
			return fmt.Errorf("%w: index %d at cell %d", ErrUnknownNeighborhood, idx, x)
		}
		dst[x] = p.table[idx]
	}
	return nil
}
