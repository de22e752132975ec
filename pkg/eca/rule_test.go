package eca

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDigitsMostSignificantFirst(t *testing.T) {
	digits, err := Digits(90, Binary, 8)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 1, 0, 1, 1, 0, 1, 0}, digits)

	// 5 = 0*3^8 + ... + 1*3^1 + 2*3^0
	digits, err = Digits(5, Ternary, 9)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0, 1, 2}, digits)

	digits, err = Digits(19682, Ternary, 9)
	require.NoError(t, err)
	require.Equal(t, []uint8{2, 2, 2, 2, 2, 2, 2, 2, 2}, digits)
}

func TestNeighborhoodsCanonicalOrder(t *testing.T) {
	bin, err := Neighborhoods(Binary)
	require.NoError(t, err)
	want := [][]uint8{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	if diff := cmp.Diff(want, bin); diff != "" {
		t.Fatalf("binary neighborhoods mismatch (-want +got):\n%s", diff)
	}

	tern, err := Neighborhoods(Ternary)
	require.NoError(t, err)
	want = [][]uint8{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	if diff := cmp.Diff(want, tern); diff != "" {
		t.Fatalf("ternary neighborhoods mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileRule90IsXOR(t *testing.T) {
	p, err := Compile(90, Binary, 8)
	require.NoError(t, err)
	require.Equal(t, 8, p.Len())
	require.Equal(t, 3, p.Arity())

	nbhds, err := Neighborhoods(Binary)
	require.NoError(t, err)
	for _, n := range nbhds {
		got, err := p.Lookup(n)
		require.NoError(t, err)
		require.Equal(t, n[0]^n[2], got, "neighborhood %v", n)
	}
}

func TestCompileAllZeroNeighborhoodTakesLeastSignificantDigit(t *testing.T) {
	p, err := Compile(1, Binary, 8)
	require.NoError(t, err)
	next, err := p.Lookup([]uint8{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, uint8(1), next)
	next, err = p.Lookup([]uint8{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, uint8(0), next)

	p, err = Compile(2, Ternary, 9)
	require.NoError(t, err)
	next, err = p.Lookup([]uint8{0, 0})
	require.NoError(t, err)
	require.Equal(t, uint8(2), next)
}

func TestCompileBinaryRoundTrip(t *testing.T) {
	for rule := 0; rule < 256; rule++ {
		p, err := Compile(rule, Binary, 8)
		require.NoError(t, err)
		require.Equal(t, 8, p.Len())
		for _, e := range p.Entries() {
			require.Len(t, e.Neighborhood, 3)
			require.Less(t, e.Next, uint8(2))
		}
		require.Equal(t, rule, p.RuleIndex())

		// Wolfram encoding: bit k of the rule is the output for the
		// neighborhood whose binary value is k.
		for k, e := range p.Entries() {
			require.Equal(t, uint8((rule>>k)&1), e.Next, "rule %d neighborhood %v", rule, e.Neighborhood)
		}
	}
}

func TestCompileTernaryCoverage(t *testing.T) {
	for _, rule := range []int{0, 1, 2, 3, 100, 7625, 12345, 19682} {
		p, err := Compile(rule, Ternary, 9)
		require.NoError(t, err)
		entries := p.Entries()
		require.Len(t, entries, 9)
		for _, e := range entries {
			require.Len(t, e.Neighborhood, 2)
			require.Less(t, e.Next, uint8(3))
		}
		require.Equal(t, rule, p.RuleIndex())
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	a, err := Compile(7625, Ternary, 9)
	require.NoError(t, err)
	b, err := Compile(7625, Ternary, 9)
	require.NoError(t, err)
	require.Equal(t, a.Entries(), b.Entries())
}

func TestCompileRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name             string
		rule, states, nb int
		want             error
	}{
		{"binary rule too large", 256, Binary, 8, ErrInvalidRule},
		{"negative rule", -1, Binary, 8, ErrInvalidRule},
		{"ternary rule too large", 19683, Ternary, 9, ErrInvalidRule},
		{"unsupported states", 0, 4, 16, ErrInvalidRule},
		{"neighborhood mismatch", 0, Binary, 9, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.rule, tc.states, tc.nb)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLookupRejectsMalformedNeighborhood(t *testing.T) {
	p, err := Compile(30, Binary, 8)
	require.NoError(t, err)
	_, err = p.Lookup([]uint8{0, 1})
	require.ErrorIs(t, err, ErrUnknownNeighborhood)
	_, err = p.Lookup([]uint8{0, 2, 0})
	require.ErrorIs(t, err, ErrUnknownNeighborhood)
}

func TestMaxRule(t *testing.T) {
	n, err := MaxRule(Binary)
	require.NoError(t, err)
	require.Equal(t, 256, n)
	n, err = MaxRule(Ternary)
	require.NoError(t, err)
	require.Equal(t, 19683, n)
	_, err = MaxRule(5)
	require.ErrorIs(t, err, ErrInvalidRule)
}
