// Package eca compiles Wolfram-numbered rules for binary and ternary
// one-dimensional cellular automata and evolves them on a periodic lattice.
package eca

import "fmt"

const (
	// Binary automata use two states and a (left, self, right) neighborhood.
	Binary = 2
	// Ternary automata use three states and a (left, self) neighborhood.
	Ternary = 3
)

// Arity returns the neighborhood size for the given state count.
func Arity(numStates int) (int, error) {
	switch numStates {
	case Binary:
		return 3, nil
	case Ternary:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: unsupported state count %d", ErrInvalidRule, numStates)
}

// NumNeighborhoods returns numStates^arity, the size of a propagator table.
func NumNeighborhoods(numStates int) (int, error) {
	arity, err := Arity(numStates)
	if err != nil {
		return 0, err
	}
	return pow(numStates, arity), nil
}

// MaxRule returns the exclusive upper bound of the rule space for numStates.
func MaxRule(numStates int) (int, error) {
	n, err := NumNeighborhoods(numStates)
	if err != nil {
		return 0, err
	}
	return pow(numStates, n), nil
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

// Digits decomposes ruleIndex into numNeighborhoods base-numStates digits,
// most significant first.
func Digits(ruleIndex, numStates, numNeighborhoods int) ([]uint8, error) {
	if err := checkRule(ruleIndex, numStates, numNeighborhoods); err != nil {
		return nil, err
	}
	digits := make([]uint8, numNeighborhoods)
	remaining := ruleIndex
	for i := range digits {
		place := pow(numStates, numNeighborhoods-i-1)
		d := remaining / place
		remaining -= d * place
		digits[i] = uint8(d)
	}
	return digits, nil
}

func checkRule(ruleIndex, numStates, numNeighborhoods int) error {
	want, err := NumNeighborhoods(numStates)
	if err != nil {
		return err
	}
	if numNeighborhoods != want {
		return fmt.Errorf("%w: %d-state automata have %d neighborhoods, got %d",
			ErrInvalidArgument, numStates, want, numNeighborhoods)
	}
	limit := pow(numStates, numNeighborhoods)
	if ruleIndex < 0 || ruleIndex >= limit {
		return fmt.Errorf("%w: rule %d outside [0, %d)", ErrInvalidRule, ruleIndex, limit)
	}
	return nil
}

// Neighborhoods enumerates every neighborhood for numStates in ascending
// lexicographic order: (0,0,0)..(1,1,1) for binary, (0,0)..(2,2) for ternary.
// Position i in the result is also the neighborhood's table index.
func Neighborhoods(numStates int) ([][]uint8, error) {
	arity, err := Arity(numStates)
	if err != nil {
		return nil, err
	}
	total := pow(numStates, arity)
	out := make([][]uint8, total)
	for i := range out {
		nbhd := make([]uint8, arity)
		v := i
		for k := arity - 1; k >= 0; k-- {
			nbhd[k] = uint8(v % numStates)
			v /= numStates
		}
		out[i] = nbhd
	}
	return out, nil
}

// Propagator maps every neighborhood to the next state of its center cell.
// The table is indexed by the neighborhood read as a base-numStates number.
type Propagator struct {
	rule      int
	numStates int
	arity     int
	table     []uint8
}

// Compile builds the propagator for ruleIndex.
func Compile(ruleIndex, numStates, numNeighborhoods int) (*Propagator, error) {
	digits, err := Digits(ruleIndex, numStates, numNeighborhoods)
	if err != nil {
		return nil, err
	}
	arity, _ := Arity(numStates)
	table := make([]uint8, numNeighborhoods)
	for i := range table {
		// Digits are most significant first, so the all-zero neighborhood
		// (index 0) takes the last digit.
		table[i] = digits[numNeighborhoods-1-i]
	}
	return &Propagator{rule: ruleIndex, numStates: numStates, arity: arity, table: table}, nil
}

// Rule returns the rule index the propagator was compiled from.
func (p *Propagator) Rule() int { return p.rule }

// NumStates returns the number of cell states.
func (p *Propagator) NumStates() int { return p.numStates }

// Arity returns the neighborhood size.
func (p *Propagator) Arity() int { return p.arity }

// Len returns the number of table entries.
func (p *Propagator) Len() int { return len(p.table) }

// Index returns the table index of nbhd.
func (p *Propagator) Index(nbhd []uint8) (int, error) {
	if len(nbhd) != p.arity {
		return 0, fmt.Errorf("%w: neighborhood %v has arity %d, want %d",
			ErrUnknownNeighborhood, nbhd, len(nbhd), p.arity)
	}
	idx := 0
	for _, v := range nbhd {
		if int(v) >= p.numStates {
			return 0, fmt.Errorf("%w: %v", ErrUnknownNeighborhood, nbhd)
		}
		idx = idx*p.numStates + int(v)
	}
	return idx, nil
}

// Lookup returns the next state for nbhd.
func (p *Propagator) Lookup(nbhd []uint8) (uint8, error) {
	idx, err := p.Index(nbhd)
	if err != nil {
		return 0, err
	}
	return p.table[idx], nil
}

// Digits re-encodes the table as rule digits, most significant first.
func (p *Propagator) Digits() []uint8 {
	n := len(p.table)
	digits := make([]uint8, n)
	for i, v := range p.table {
		digits[n-1-i] = v
	}
	return digits
}

// RuleIndex recomputes the rule index from the table.
func (p *Propagator) RuleIndex() int {
	rule := 0
	for _, d := range p.Digits() {
		rule = rule*p.numStates + int(d)
	}
	return rule
}

// Entry pairs a neighborhood with its next state.
type Entry struct {
	Neighborhood []uint8
	Next         uint8
}

// Entries lists the table in canonical neighborhood order.
func (p *Propagator) Entries() []Entry {
	nbhds, _ := Neighborhoods(p.numStates)
	out := make([]Entry, len(nbhds))
	for i, nbhd := range nbhds {
		out[i] = Entry{Neighborhood: nbhd, Next: p.table[i]}
	}
	return out
}
