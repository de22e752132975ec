package eca

import (
	"fmt"
	"strings"
)

// Configuration is one row of the lattice. Values lie in [0, numStates).
type Configuration []uint8

// Clone returns a deep copy of c.
func (c Configuration) Clone() Configuration {
	return append(Configuration(make([]uint8, 0, len(c))), c...)
}

// Validate checks every cell against numStates.
func (c Configuration) Validate(numStates int) error {
	if _, err := Arity(numStates); err != nil {
		return err
	}
	for i, v := range c {
		if int(v) >= numStates {
			return fmt.Errorf("%w: cell %d has value %d, want [0, %d)", ErrInvalidConfiguration, i, v, numStates)
		}
	}
	return nil
}

// String renders the cells as a digit string, e.g. "0010100".
func (c Configuration) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, v := range c {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// FromInts converts and validates a slice of ints.
func FromInts(values []int, numStates int) (Configuration, error) {
	if _, err := Arity(numStates); err != nil {
		return nil, err
	}
	out := make(Configuration, len(values))
	for i, v := range values {
		if v < 0 || v >= numStates {
			return nil, fmt.Errorf("%w: cell %d has value %d, want [0, %d)", ErrInvalidConfiguration, i, v, numStates)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// ParseConfiguration reads a digit string such as "0001000". Commas and
// whitespace between digits are ignored.
func ParseConfiguration(s string, numStates int) (Configuration, error) {
	values := make([]int, 0, len(s))
	for i, r := range s {
		switch {
		case r == ',' || r == ' ' || r == '\t' || r == '\n':
			continue
		case r >= '0' && r <= '9':
			values = append(values, int(r-'0'))
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidConfiguration, r, i)
		}
	}
	return FromInts(values, numStates)
}
