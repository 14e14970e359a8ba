package giactest

import (
	"bytes"
	"testing"

	"github.com/giac-go/giacgb/giac"
	"github.com/giac-go/giacgb/ring"
	"github.com/stretchr/testify/require"
)

func qqRing(t *testing.T, order ring.TermOrder, names ...string) *ring.Ring {
	r, err := ring.NewRing(ring.Q(), names, order)
	require.NoError(t, err)
	return r
}

func TestSymbolTable(t *testing.T) {

	e := NewEngine()
	require.Empty(t, e.ListBoundNames())

	e.Bind("x2", "22")
	e.Bind("x4", "whywouldyoudothis")
	require.Equal(t, []string{"x2", "x4"}, e.ListBoundNames())

	require.NoError(t, e.Purge("x2"))
	require.Equal(t, []string{"x4"}, e.ListBoundNames())
	require.Error(t, e.Purge("x2"))
}

func TestGbasisLex(t *testing.T) {

	P := qqRing(t, ring.NewTermOrder(ring.Lex), "x", "y")
	x, y := P.Gen(0), P.Gen(1)

	// <x^2+y^2-1, x-y> has the reduced lex basis {x - y, y^2 - 1/2}.
	gens := []*ring.Poly{
		x.Mul(x).Add(y.Mul(y)).Sub(P.One()),
		x.Sub(y),
	}

	e := NewEngine()
	basis, err := e.Gbasis(gens, P.VariableNames(), giac.OrderPLex)
	require.NoError(t, err)
	require.Len(t, basis, 2)
	require.Equal(t, "x - y", basis[0].String())
	require.Equal(t, "y^2 - 1/2", basis[1].String())
}

func TestGbasisUnivariate(t *testing.T) {

	P := qqRing(t, ring.NewTermOrder(ring.Lex), "x")
	x := P.Gen(0)

	// gcd(x^2-1, x^3-1) = x-1.
	gens := []*ring.Poly{
		x.Mul(x).Sub(P.One()),
		x.Mul(x).Mul(x).Sub(P.One()),
	}

	e := NewEngine()
	basis, err := e.Gbasis(gens, P.VariableNames(), giac.OrderPLex)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	require.Equal(t, "x - 1", basis[0].String())
}

func TestGbasisCyclicRationals(t *testing.T) {

	P := qqRing(t, ring.NewTermOrder(ring.DegRevLex), "x", "y", "z")
	gens := ring.Cyclic(P).Gens()

	require.False(t, IsGroebner(gens))

	e := NewEngine()
	basis, err := e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)

	require.True(t, IsGroebner(basis))
	for _, g := range gens {
		require.True(t, NormalForm(g, basis).IsZero())
	}
}

func TestGbasisCyclicPrimeField(t *testing.T) {

	p, err := ring.PreviousPrime(1 << 31)
	require.NoError(t, err)
	gfp, err := ring.GF(p)
	require.NoError(t, err)

	P, err := ring.NewRing(gfp, []string{"x", "y", "z", "w"}, ring.NewTermOrder(ring.DegRevLex))
	require.NoError(t, err)
	gens := ring.Cyclic(P).Gens()

	e := NewEngine()
	basis, err := e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)

	require.True(t, IsGroebner(basis))
	for _, g := range gens {
		require.True(t, NormalForm(g, basis).IsZero())
	}
}

func TestEliminate(t *testing.T) {

	// x = t, y = t^2 parameterizes y = x^2.
	P := qqRing(t, ring.NewTermOrder(ring.DegRevLex), "t", "x", "y")
	tt, x, y := P.Gen(0), P.Gen(1), P.Gen(2)

	gens := []*ring.Poly{
		x.Sub(tt),
		y.Sub(tt.Mul(tt)),
	}

	e := NewEngine()
	basis, err := e.Eliminate(gens, []string{"t"})
	require.NoError(t, err)
	require.Len(t, basis, 1)
	require.Equal(t, "x^2 - y", basis[0].String())

	_, err = e.Eliminate(gens, []string{"nope"})
	require.Error(t, err)
}

func TestGbasisVariablePrefix(t *testing.T) {

	P := qqRing(t, ring.BlockOrder(
		ring.Block{Name: ring.DegRevLex, N: 1},
		ring.Block{Name: ring.DegRevLex, N: 2},
	), "t", "x", "y")
	tt, x, y := P.Gen(0), P.Gen(1), P.Gen(2)

	gens := []*ring.Poly{
		x.Sub(tt),
		y.Sub(tt.Mul(tt)),
	}

	e := NewEngine()

	// A proper prefix is interpreted as the leading degrevlex block; the
	// basis then contains the eliminant x^2 - y.
	basis, err := e.Gbasis(gens, []string{"t"}, giac.OrderRevLex)
	require.NoError(t, err)

	found := false
	for _, f := range basis {
		if f.String() == "x^2 - y" {
			found = true
		}
	}
	require.True(t, found)

	// Non-prefix subsets and non-revlex subsets are rejected.
	_, err = e.Gbasis(gens, []string{"x"}, giac.OrderRevLex)
	require.Error(t, err)
	_, err = e.Gbasis(gens, []string{"t"}, giac.OrderPLex)
	require.Error(t, err)
	_, err = e.Gbasis(gens, P.VariableNames(), "weird")
	require.Error(t, err)
}

func TestGbasisTrace(t *testing.T) {

	P := qqRing(t, ring.NewTermOrder(ring.DegRevLex), "x", "y", "z")
	gens := ring.Cyclic(P).Gens()

	e := NewEngine()
	buf := new(bytes.Buffer)
	e.SetTrace(buf)

	_, err := e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)
	require.Zero(t, buf.Len())

	e.Settings().SetDebugInfoLevel(2)
	_, err = e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}

func TestVerificationRounds(t *testing.T) {
	require.Equal(t, 1, verificationRounds(0.5))
	require.Equal(t, 1, verificationRounds(1e-9))
	require.Equal(t, 2, verificationRounds(1e-15))
	require.Equal(t, 2, verificationRounds(1e-16))
	require.Equal(t, 4, verificationRounds(1e-30))
}

func TestGbasisProbabilisticEpsilon(t *testing.T) {

	P := qqRing(t, ring.NewTermOrder(ring.DegRevLex), "x", "y", "z")
	gens := ring.Cyclic(P).Gens()

	e := NewEngine()

	e.Settings().SetProbaEpsilon(0)
	exact, err := e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)

	e.Settings().SetProbaEpsilon(1e-16)
	probabilistic, err := e.Gbasis(gens, P.VariableNames(), giac.OrderRevLex)
	require.NoError(t, err)

	require.Equal(t, len(exact), len(probabilistic))
	for i := range exact {
		require.True(t, exact[i].Equal(probabilistic[i]))
	}
}
