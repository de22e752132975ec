package eca

import (
	"fmt"
	"math/rand/v2"

	"eca/pkg/core"
)

// RandomConfiguration draws length cells independently and uniformly from
// [0, numStates) using r.
func RandomConfiguration(r *rand.Rand, length, numStates int) (Configuration, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	if _, err := Arity(numStates); err != nil {
		return nil, err
	}
	c := make(Configuration, length)
	core.FillUniform(r, c, numStates)
	return c, nil
}

// SingleSeed returns an all-zero configuration with the middle cell set to 1.
func SingleSeed(length, numStates int) (Configuration, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	if _, err := Arity(numStates); err != nil {
		return nil, err
	}
	c := make(Configuration, length)
	if length > 0 {
		c[length/2] = 1
	}
	return c, nil
}
