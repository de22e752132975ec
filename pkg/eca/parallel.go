package eca

import "golang.org/x/sync/errgroup"

type span struct{ lo, hi int }

// divideCells partitions n cells into at most parts contiguous spans of
// near-equal size.
func divideCells(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return nil
	}
	out := make([]span, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		out = append(out, span{lo: lo, hi: hi})
		lo = hi
	}
	return out
}

// stepParallel is the same update as stepRange over the whole lattice. Each
// goroutine writes a disjoint span of dst and reads src only.
func (p *Propagator) stepParallel(dst, src Configuration, workers int) error {
	var g errgroup.Group
	for _, sp := range divideCells(len(src), workers) {
		sp := sp
		g.Go(func() error {
			return p.stepRange(dst, src, sp.lo, sp.hi)
		})
	}
	return g.Wait()
}
