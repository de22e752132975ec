package eca

import "errors"

var (
	// ErrInvalidArgument reports a malformed length, step count or option.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRule reports a rule index outside the rule space or an
	// unsupported state count.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidConfiguration reports a cell value outside [0, numStates).
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownNeighborhood reports a propagator lookup miss. A compiled
	// propagator is total, so this signals a broken invariant rather than bad
	// input.
	ErrUnknownNeighborhood = errors.New("unknown neighborhood")
)
