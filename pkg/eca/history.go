package eca

// History is the space-time record of an evolution. Row 0 is the initial
// configuration and row t is the lattice after t steps.
type History []Configuration

// Steps returns the number of evolution steps recorded.
func (h History) Steps() int {
	if len(h) == 0 {
		return 0
	}
	return len(h) - 1
}

// Width returns the lattice length.
func (h History) Width() int {
	if len(h) == 0 {
		return 0
	}
	return len(h[0])
}

// Final returns the last recorded configuration.
func (h History) Final() Configuration {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Grid copies the history into a (Steps()+1) x Width() array.
func (h History) Grid() [][]uint8 {
	out := make([][]uint8, len(h))
	for t, row := range h {
		out[t] = append([]uint8(nil), row...)
	}
	return out
}
