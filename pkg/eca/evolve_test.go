package eca

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, rule, states int) *Propagator {
	t.Helper()
	n, err := NumNeighborhoods(states)
	require.NoError(t, err)
	p, err := Compile(rule, states, n)
	require.NoError(t, err)
	return p
}

func TestEvolveRule90Golden(t *testing.T) {
	p := mustCompile(t, 90, Binary)
	ic := Configuration{0, 0, 0, 1, 0, 0, 0}

	history, err := Evolve(ic, p, 2, Binary)
	require.NoError(t, err)

	want := History{
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0},
	}
	if diff := cmp.Diff(want, history); diff != "" {
		t.Fatalf("rule 90 history mismatch (-want +got):\n%s", diff)
	}
}

func TestEvolveRule90WrapsAround(t *testing.T) {
	p := mustCompile(t, 90, Binary)
	history, err := Evolve(Configuration{1, 0, 0, 0, 0}, p, 1, Binary)
	require.NoError(t, err)
	require.Equal(t, Configuration{0, 1, 0, 0, 1}, history[1])
}

func TestEvolveZeroStepsReturnsInitialOnly(t *testing.T) {
	p := mustCompile(t, 110, Binary)
	ic := Configuration{0, 1, 1, 0}
	history, err := Evolve(ic, p, 0, Binary)
	require.NoError(t, err)
	require.Equal(t, History{ic}, history)
}

func TestEvolveHistoryShape(t *testing.T) {
	p := mustCompile(t, 7625, Ternary)
	ic := Configuration{0, 1, 2, 2, 1, 0, 1, 2, 0, 0, 1}
	history, err := Evolve(ic, p, 17, Ternary)
	require.NoError(t, err)
	require.Len(t, history, 18)
	require.Equal(t, 17, history.Steps())
	require.Equal(t, len(ic), history.Width())
	for _, row := range history {
		require.Len(t, row, len(ic))
		require.NoError(t, row.Validate(Ternary))
	}
	grid := history.Grid()
	require.Len(t, grid, 18)
	require.Equal(t, []uint8(history.Final()), grid[17])
}

func TestEvolveDoesNotAliasInitial(t *testing.T) {
	p := mustCompile(t, 30, Binary)
	ic := Configuration{0, 0, 1, 0, 0}
	history, err := Evolve(ic, p, 3, Binary)
	require.NoError(t, err)

	ic[0] = 1
	require.Equal(t, uint8(0), history[0][0])

	history[1][0] = 1
	again, err := Evolve(Configuration{0, 0, 1, 0, 0}, p, 3, Binary)
	require.NoError(t, err)
	require.Equal(t, again[2], history[2])
}

func TestEvolveDeterministic(t *testing.T) {
	p := mustCompile(t, 110, Binary)
	ic := Configuration{0, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1}
	a, err := Evolve(ic, p, 40, Binary)
	require.NoError(t, err)
	b, err := Evolve(ic, p, 40, Binary)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEvolveSingleCellIsItsOwnNeighbor(t *testing.T) {
	// Rule 1 maps only (0,0,0) to 1, so a lone cell toggles each step.
	p := mustCompile(t, 1, Binary)
	history, err := Evolve(Configuration{0}, p, 3, Binary)
	require.NoError(t, err)
	require.Equal(t, History{{0}, {1}, {0}, {1}}, history)

	// Ternary rule 3 = digits ...0,1,0: (0,1) -> 1 and everything else -> 0.
	// (0,0) maps to 0, so a lone 0 stays 0; a lone 1 sees (1,1) and dies.
	q := mustCompile(t, 3, Ternary)
	history, err = Evolve(Configuration{1}, q, 2, Ternary)
	require.NoError(t, err)
	require.Equal(t, History{{1}, {0}, {0}}, history)
}

func TestEvolveTernaryUsesLeftAndSelfOnly(t *testing.T) {
	// Rule 3^1 = 3 sends only (0,1) to 1.
	p := mustCompile(t, 3, Ternary)
	history, err := Evolve(Configuration{0, 1, 0, 0}, p, 1, Ternary)
	require.NoError(t, err)
	// Cell 1 sees (0,1); cell 2 sees (1,0) and must ignore its right neighbor.
	require.Equal(t, Configuration{0, 1, 0, 0}, history[1])
}

func TestEvolveTernaryRuleZeroClearsLattice(t *testing.T) {
	p := mustCompile(t, 0, Ternary)
	ic := Configuration{2, 1, 0, 2, 2, 1}
	history, err := Evolve(ic, p, 5, Ternary)
	require.NoError(t, err)
	require.Equal(t, ic, history[0])
	for _, row := range history[1:] {
		require.Equal(t, make(Configuration, len(ic)), row)
	}
}

func TestEvolveEmptyLattice(t *testing.T) {
	p := mustCompile(t, 90, Binary)
	history, err := Evolve(Configuration{}, p, 3, Binary)
	require.NoError(t, err)
	require.Len(t, history, 4)
	require.Equal(t, 0, history.Width())
}

func TestEvolveRejectsInvalidInput(t *testing.T) {
	p := mustCompile(t, 90, Binary)

	_, err := Evolve(Configuration{0, 3, 0}, p, 1, Binary)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Evolve(Configuration{0, 1, 0}, p, -1, Binary)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Evolve(Configuration{0, 1, 0}, p, 1, Ternary)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Evolve(Configuration{0, 1, 0}, nil, 1, Binary)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStepRejectsMismatchedBuffers(t *testing.T) {
	p := mustCompile(t, 90, Binary)
	err := p.Step(make(Configuration, 2), Configuration{0, 1, 0})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = p.Step(make(Configuration, 3), Configuration{0, 5, 0})
	require.ErrorIs(t, err, ErrUnknownNeighborhood)
}

func TestEvolveParallelMatchesSerial(t *testing.T) {
	p := mustCompile(t, 110, Binary)
	ic := make(Configuration, 97)
	ic[50] = 1
	ic[3] = 1
	serial, err := Evolve(ic, p, 60, Binary)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 8, 200} {
		parallel, err := Evolve(ic, p, 60, Binary, WithWorkers(workers))
		require.NoError(t, err)
		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Fatalf("workers=%d diverged from serial (-serial +parallel):\n%s", workers, diff)
		}
	}

	q := mustCompile(t, 7625, Ternary)
	tic := Configuration{0, 1, 2, 0, 1, 2, 2, 2, 1, 0, 0, 1, 2}
	serial, err = Evolve(tic, q, 30, Ternary)
	require.NoError(t, err)
	parallel, err := Evolve(tic, q, 30, Ternary, WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestDivideCells(t *testing.T) {
	spans := divideCells(10, 3)
	require.Equal(t, []span{{0, 4}, {4, 7}, {7, 10}}, spans)
	require.Len(t, divideCells(2, 5), 2)
	require.Empty(t, divideCells(0, 4))
}
